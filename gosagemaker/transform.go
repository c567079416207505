package gosagemaker

import (
	"context"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker/types"
	"github.com/ggarcia209/go-sagemaker/goaws"
)

//go:generate mockgen -destination=../mocks/gosagemakermock/transform.go -package=gosagemakermock . TransformLogic
type TransformLogic interface {
	CreateTransformJob(ctx context.Context, req CreateTransformJobRequest) (*CreateTransformJobResponse, error)
	DescribeTransformJob(ctx context.Context, jobName string) (*DescribeTransformJobResponse, error)
	StopTransformJob(ctx context.Context, jobName string) error
	WaitForTransformJob(ctx context.Context, jobName string, cfg *PollConfig) (*DescribeTransformJobResponse, error)
}

// TransformClientAPI defines the interface for the AWS SageMaker client methods used for batch transform jobs.
//
//go:generate mockgen -destination=./transform_client_test.go -package=gosagemaker . TransformClientAPI
type TransformClientAPI interface {
	CreateTransformJob(ctx context.Context, params *sagemaker.CreateTransformJobInput, optFns ...func(*sagemaker.Options)) (*sagemaker.CreateTransformJobOutput, error)
	DescribeTransformJob(ctx context.Context, params *sagemaker.DescribeTransformJobInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DescribeTransformJobOutput, error)
	StopTransformJob(ctx context.Context, params *sagemaker.StopTransformJobInput, optFns ...func(*sagemaker.Options)) (*sagemaker.StopTransformJobOutput, error)
}

type Transform struct {
	svc TransformClientAPI
}

func NewTransform(config goaws.AwsConfig) *Transform {
	return &Transform{svc: sagemaker.NewFromConfig(config.Config)}
}

// CreateTransformJob starts a batch transform job against a
// registered model.
func (s *Transform) CreateTransformJob(ctx context.Context, req CreateTransformJobRequest) (*CreateTransformJobResponse, error) {
	input, err := buildCreateTransformJobInput(req)
	if err != nil {
		return nil, err
	}

	out, err := s.svc.CreateTransformJob(ctx, input)
	if err != nil {
		return nil, classify("s.svc.CreateTransformJob", err)
	}
	return &CreateTransformJobResponse{JobARN: aws.ToString(out.TransformJobArn)}, nil
}

func (s *Transform) DescribeTransformJob(ctx context.Context, jobName string) (*DescribeTransformJobResponse, error) {
	if jobName == "" {
		return nil, NewMissingFieldError("JobName")
	}

	out, err := s.svc.DescribeTransformJob(ctx, &sagemaker.DescribeTransformJobInput{
		TransformJobName: aws.String(jobName),
	})
	if err != nil {
		return nil, classify("s.svc.DescribeTransformJob", err)
	}

	resp := &DescribeTransformJobResponse{
		JobName:            aws.ToString(out.TransformJobName),
		JobARN:             aws.ToString(out.TransformJobArn),
		Status:             string(out.TransformJobStatus),
		FailureReason:      aws.ToString(out.FailureReason),
		ModelName:          aws.ToString(out.ModelName),
		CreationTime:       aws.ToTime(out.CreationTime),
		TransformStartTime: aws.ToTime(out.TransformStartTime),
		TransformEndTime:   aws.ToTime(out.TransformEndTime),
	}
	if out.TransformInput != nil && out.TransformInput.DataSource != nil && out.TransformInput.DataSource.S3DataSource != nil {
		resp.InputS3URI = aws.ToString(out.TransformInput.DataSource.S3DataSource.S3Uri)
	}
	if out.TransformOutput != nil {
		resp.OutputPath = aws.ToString(out.TransformOutput.S3OutputPath)
	}
	return resp, nil
}

func (s *Transform) StopTransformJob(ctx context.Context, jobName string) error {
	if jobName == "" {
		return NewMissingFieldError("JobName")
	}

	if _, err := s.svc.StopTransformJob(ctx, &sagemaker.StopTransformJobInput{
		TransformJobName: aws.String(jobName),
	}); err != nil {
		return classify("s.svc.StopTransformJob", err)
	}
	return nil
}

// WaitForTransformJob polls the job until it completes, stops, or fails.
func (s *Transform) WaitForTransformJob(ctx context.Context, jobName string, cfg *PollConfig) (*DescribeTransformJobResponse, error) {
	logger := log.WithFields(log.Fields{"transform_job": jobName})

	var last *DescribeTransformJobResponse
	err := pollUntil(ctx, cfg, logger, "transform job "+jobName, func(ctx context.Context) (string, bool, error) {
		desc, err := s.DescribeTransformJob(ctx, jobName)
		if err != nil {
			return "", false, err
		}
		last = desc

		switch desc.Status {
		case StatusCompleted, StatusStopped:
			return desc.Status, true, nil
		case StatusFailed:
			return desc.Status, false, NewJobFailedError("transform job", jobName, desc.FailureReason)
		}
		return desc.Status, false, nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithField("status", last.Status).Info("transform job finished")
	return last, nil
}

func buildCreateTransformJobInput(req CreateTransformJobRequest) (*sagemaker.CreateTransformJobInput, error) {
	switch {
	case req.JobName == "":
		return nil, NewMissingFieldError("JobName")
	case req.ModelName == "":
		return nil, NewMissingFieldError("ModelName")
	case req.InputS3URI == "":
		return nil, NewMissingFieldError("InputS3URI")
	case req.OutputPath == "":
		return nil, NewMissingFieldError("OutputPath")
	case req.InstanceType == "":
		return nil, NewMissingFieldError("InstanceType")
	case req.InstanceCount <= 0:
		return nil, NewInvalidRequestError("InstanceCount must be at least 1")
	}

	dataType := req.S3DataType
	if dataType == "" {
		dataType = S3DataTypePrefix
	}
	transformInput := &types.TransformInput{
		DataSource: &types.TransformDataSource{
			S3DataSource: &types.TransformS3DataSource{
				S3DataType: types.S3DataType(dataType),
				S3Uri:      aws.String(req.InputS3URI),
			},
		},
	}
	if req.ContentType != "" {
		transformInput.ContentType = aws.String(req.ContentType)
	}
	if req.CompressionType != "" {
		transformInput.CompressionType = types.CompressionType(req.CompressionType)
	}
	if req.SplitType != "" {
		transformInput.SplitType = types.SplitType(req.SplitType)
	}

	transformOutput := &types.TransformOutput{S3OutputPath: aws.String(req.OutputPath)}
	if req.Accept != "" {
		transformOutput.Accept = aws.String(req.Accept)
	}
	if req.AssembleWith != "" {
		transformOutput.AssembleWith = types.AssemblyType(req.AssembleWith)
	}
	if req.OutputKmsKeyID != "" {
		transformOutput.KmsKeyId = aws.String(req.OutputKmsKeyID)
	}

	resources := &types.TransformResources{
		InstanceType:  types.TransformInstanceType(req.InstanceType),
		InstanceCount: aws.Int32(req.InstanceCount),
	}
	if req.VolumeKmsKeyID != "" {
		resources.VolumeKmsKeyId = aws.String(req.VolumeKmsKeyID)
	}

	input := &sagemaker.CreateTransformJobInput{
		TransformJobName:   aws.String(req.JobName),
		ModelName:          aws.String(req.ModelName),
		TransformInput:     transformInput,
		TransformOutput:    transformOutput,
		TransformResources: resources,
		Environment:        req.Environment,
		Tags:               tagsToSDK(req.Tags),
	}
	if req.Strategy != "" {
		input.BatchStrategy = types.BatchStrategy(req.Strategy)
	}
	if req.MaxConcurrentTransforms > 0 {
		input.MaxConcurrentTransforms = aws.Int32(req.MaxConcurrentTransforms)
	}
	if req.MaxPayloadMB > 0 {
		input.MaxPayloadInMB = aws.Int32(req.MaxPayloadMB)
	}
	if req.InputFilter != "" || req.OutputFilter != "" || req.JoinSource != "" {
		dp := &types.DataProcessing{}
		if req.InputFilter != "" {
			dp.InputFilter = aws.String(req.InputFilter)
		}
		if req.OutputFilter != "" {
			dp.OutputFilter = aws.String(req.OutputFilter)
		}
		if req.JoinSource != "" {
			dp.JoinSource = types.JoinSource(req.JoinSource)
		}
		input.DataProcessing = dp
	}
	return input, nil
}
