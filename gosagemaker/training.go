// gosagemaker wraps the SageMaker control plane. Each concern gets
// its own service object: Training for training jobs, Hosting for
// models and endpoints, Transform for batch transform jobs, Tuning
// for hyperparameter tuning jobs, and AutoML for AutoML jobs.
package gosagemaker

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker/types"
	"github.com/ggarcia209/go-sagemaker/goaws"
)

//go:generate mockgen -destination=../mocks/gosagemakermock/training.go -package=gosagemakermock . TrainingLogic
type TrainingLogic interface {
	CreateTrainingJob(ctx context.Context, req CreateTrainingJobRequest) (*CreateTrainingJobResponse, error)
	DescribeTrainingJob(ctx context.Context, jobName string) (*DescribeTrainingJobResponse, error)
	StopTrainingJob(ctx context.Context, jobName string) error
	WaitForTrainingJob(ctx context.Context, jobName string, cfg *PollConfig) (*DescribeTrainingJobResponse, error)
}

// TrainingClientAPI defines the interface for the AWS SageMaker client methods used for training jobs.
//
//go:generate mockgen -destination=./training_client_test.go -package=gosagemaker . TrainingClientAPI
type TrainingClientAPI interface {
	CreateTrainingJob(ctx context.Context, params *sagemaker.CreateTrainingJobInput, optFns ...func(*sagemaker.Options)) (*sagemaker.CreateTrainingJobOutput, error)
	DescribeTrainingJob(ctx context.Context, params *sagemaker.DescribeTrainingJobInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DescribeTrainingJobOutput, error)
	StopTrainingJob(ctx context.Context, params *sagemaker.StopTrainingJobInput, optFns ...func(*sagemaker.Options)) (*sagemaker.StopTrainingJobOutput, error)
}

type Training struct {
	svc TrainingClientAPI
}

func NewTraining(config goaws.AwsConfig) *Training {
	return &Training{svc: sagemaker.NewFromConfig(config.Config)}
}

// CreateTrainingJob starts a training job. Exactly one of ImageURI or
// AlgorithmName must be set.
func (s *Training) CreateTrainingJob(ctx context.Context, req CreateTrainingJobRequest) (*CreateTrainingJobResponse, error) {
	input, err := buildCreateTrainingJobInput(req)
	if err != nil {
		return nil, err
	}

	out, err := s.svc.CreateTrainingJob(ctx, input)
	if err != nil {
		return nil, classify("s.svc.CreateTrainingJob", err)
	}

	return &CreateTrainingJobResponse{JobARN: aws.ToString(out.TrainingJobArn)}, nil
}

func (s *Training) DescribeTrainingJob(ctx context.Context, jobName string) (*DescribeTrainingJobResponse, error) {
	if jobName == "" {
		return nil, NewMissingFieldError("JobName")
	}

	out, err := s.svc.DescribeTrainingJob(ctx, &sagemaker.DescribeTrainingJobInput{
		TrainingJobName: aws.String(jobName),
	})
	if err != nil {
		return nil, classify("s.svc.DescribeTrainingJob", err)
	}

	resp := &DescribeTrainingJobResponse{
		JobName:           aws.ToString(out.TrainingJobName),
		JobARN:            aws.ToString(out.TrainingJobArn),
		Status:            string(out.TrainingJobStatus),
		SecondaryStatus:   string(out.SecondaryStatus),
		FailureReason:     aws.ToString(out.FailureReason),
		RoleARN:           aws.ToString(out.RoleArn),
		Hyperparameters:   out.HyperParameters,
		Channels:          channelsFromSDK(out.InputDataConfig),
		Resources:         resourcesFromSDK(out.ResourceConfig),
		Stopping:          stoppingFromSDK(out.StoppingCondition),
		EnableManagedSpot: aws.ToBool(out.EnableManagedSpotTraining),
		TrainingSeconds:   aws.ToInt32(out.TrainingTimeInSeconds),
		BillableSeconds:   aws.ToInt32(out.BillableTimeInSeconds),
		CreationTime:      aws.ToTime(out.CreationTime),
		TrainingStartTime: aws.ToTime(out.TrainingStartTime),
		TrainingEndTime:   aws.ToTime(out.TrainingEndTime),
	}
	if out.ModelArtifacts != nil {
		resp.ModelArtifactsS3URI = aws.ToString(out.ModelArtifacts.S3ModelArtifacts)
	}
	if out.AlgorithmSpecification != nil {
		resp.ImageURI = aws.ToString(out.AlgorithmSpecification.TrainingImage)
		resp.AlgorithmName = aws.ToString(out.AlgorithmSpecification.AlgorithmName)
		resp.InputMode = string(out.AlgorithmSpecification.TrainingInputMode)
	}
	if out.OutputDataConfig != nil {
		resp.OutputPath = aws.ToString(out.OutputDataConfig.S3OutputPath)
	}
	return resp, nil
}

func (s *Training) StopTrainingJob(ctx context.Context, jobName string) error {
	if jobName == "" {
		return NewMissingFieldError("JobName")
	}

	if _, err := s.svc.StopTrainingJob(ctx, &sagemaker.StopTrainingJobInput{
		TrainingJobName: aws.String(jobName),
	}); err != nil {
		return classify("s.svc.StopTrainingJob", err)
	}
	return nil
}

// WaitForTrainingJob polls the job until it completes, stops, or
// fails. A Failed status returns a JobFailedError carrying the
// service's failure reason.
func (s *Training) WaitForTrainingJob(ctx context.Context, jobName string, cfg *PollConfig) (*DescribeTrainingJobResponse, error) {
	logger := log.WithFields(log.Fields{"training_job": jobName})

	var last *DescribeTrainingJobResponse
	err := pollUntil(ctx, cfg, logger, "training job "+jobName, func(ctx context.Context) (string, bool, error) {
		desc, err := s.DescribeTrainingJob(ctx, jobName)
		if err != nil {
			return "", false, err
		}
		last = desc

		status := desc.Status
		if desc.SecondaryStatus != "" {
			status = fmt.Sprintf("%s:%s", desc.Status, desc.SecondaryStatus)
		}
		switch desc.Status {
		case StatusCompleted, StatusStopped:
			return status, true, nil
		case StatusFailed:
			return status, false, NewJobFailedError("training job", jobName, desc.FailureReason)
		}
		return status, false, nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithField("status", last.Status).Info("training job finished")
	return last, nil
}

func buildCreateTrainingJobInput(req CreateTrainingJobRequest) (*sagemaker.CreateTrainingJobInput, error) {
	switch {
	case req.JobName == "":
		return nil, NewMissingFieldError("JobName")
	case req.RoleARN == "":
		return nil, NewMissingFieldError("RoleARN")
	case req.OutputPath == "":
		return nil, NewMissingFieldError("OutputPath")
	case req.Resources.InstanceType == "":
		return nil, NewMissingFieldError("Resources.InstanceType")
	case req.Resources.InstanceCount <= 0:
		return nil, NewInvalidRequestError("Resources.InstanceCount must be at least 1")
	case req.ImageURI == "" && req.AlgorithmName == "":
		return nil, NewInvalidRequestError("one of ImageURI or AlgorithmName is required")
	case req.ImageURI != "" && req.AlgorithmName != "":
		return nil, NewInvalidRequestError("ImageURI and AlgorithmName are mutually exclusive")
	case req.EnableManagedSpot && req.Stopping.MaxWaitSeconds <= 0:
		return nil, NewInvalidRequestError("Stopping.MaxWaitSeconds is required for managed spot training")
	}

	inputMode := req.InputMode
	if inputMode == "" {
		inputMode = InputModeFile
	}
	algoSpec := &types.AlgorithmSpecification{
		TrainingInputMode: types.TrainingInputMode(inputMode),
	}
	if req.ImageURI != "" {
		algoSpec.TrainingImage = aws.String(req.ImageURI)
	} else {
		algoSpec.AlgorithmName = aws.String(req.AlgorithmName)
	}
	for _, md := range req.MetricDefinitions {
		algoSpec.MetricDefinitions = append(algoSpec.MetricDefinitions, types.MetricDefinition{
			Name:  aws.String(md.Name),
			Regex: aws.String(md.Regex),
		})
	}

	outputConfig := &types.OutputDataConfig{S3OutputPath: aws.String(req.OutputPath)}
	if req.OutputKmsKeyID != "" {
		outputConfig.KmsKeyId = aws.String(req.OutputKmsKeyID)
	}

	input := &sagemaker.CreateTrainingJobInput{
		TrainingJobName:        aws.String(req.JobName),
		RoleArn:                aws.String(req.RoleARN),
		AlgorithmSpecification: algoSpec,
		InputDataConfig:        channelsToSDK(req.Channels),
		OutputDataConfig:       outputConfig,
		ResourceConfig:         resourcesToSDK(req.Resources),
		StoppingCondition:      stoppingToSDK(req.Stopping),
		HyperParameters:        req.Hyperparameters,
		Environment:            req.Environment,
		VpcConfig:              vpcToSDK(req.Vpc),
		Tags:                   tagsToSDK(req.Tags),

		EnableNetworkIsolation:                aws.Bool(req.EnableNetworkIsolation),
		EnableInterContainerTrafficEncryption: aws.Bool(req.EnableInterContainerEncryption),
		EnableManagedSpotTraining:             aws.Bool(req.EnableManagedSpot),
	}
	if req.CheckpointS3URI != "" {
		input.CheckpointConfig = &types.CheckpointConfig{S3Uri: aws.String(req.CheckpointS3URI)}
		if req.CheckpointLocalPath != "" {
			input.CheckpointConfig.LocalPath = aws.String(req.CheckpointLocalPath)
		}
	}
	return input, nil
}
