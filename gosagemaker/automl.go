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

//go:generate mockgen -destination=../mocks/gosagemakermock/automl.go -package=gosagemakermock . AutoMLLogic
type AutoMLLogic interface {
	CreateAutoMLJob(ctx context.Context, req CreateAutoMLJobRequest) (*CreateAutoMLJobResponse, error)
	DescribeAutoMLJob(ctx context.Context, jobName string) (*DescribeAutoMLJobResponse, error)
	StopAutoMLJob(ctx context.Context, jobName string) error
	WaitForAutoMLJob(ctx context.Context, jobName string, cfg *PollConfig) (*DescribeAutoMLJobResponse, error)
	ListCandidates(ctx context.Context, jobName string) ([]Candidate, error)
	BestCandidate(ctx context.Context, jobName string) (*Candidate, error)
}

// AutoMLClientAPI defines the interface for the AWS SageMaker client methods used for AutoML jobs.
//
//go:generate mockgen -destination=./automl_client_test.go -package=gosagemaker . AutoMLClientAPI
type AutoMLClientAPI interface {
	CreateAutoMLJob(ctx context.Context, params *sagemaker.CreateAutoMLJobInput, optFns ...func(*sagemaker.Options)) (*sagemaker.CreateAutoMLJobOutput, error)
	DescribeAutoMLJob(ctx context.Context, params *sagemaker.DescribeAutoMLJobInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DescribeAutoMLJobOutput, error)
	StopAutoMLJob(ctx context.Context, params *sagemaker.StopAutoMLJobInput, optFns ...func(*sagemaker.Options)) (*sagemaker.StopAutoMLJobOutput, error)
	ListCandidatesForAutoMLJob(ctx context.Context, params *sagemaker.ListCandidatesForAutoMLJobInput, optFns ...func(*sagemaker.Options)) (*sagemaker.ListCandidatesForAutoMLJobOutput, error)
}

type AutoML struct {
	svc AutoMLClientAPI
}

func NewAutoML(config goaws.AwsConfig) *AutoML {
	return &AutoML{svc: sagemaker.NewFromConfig(config.Config)}
}

// CreateAutoMLJob starts an AutoML job over tabular data. ProblemType
// and ObjectiveMetric are inferred by the service when empty.
func (s *AutoML) CreateAutoMLJob(ctx context.Context, req CreateAutoMLJobRequest) (*CreateAutoMLJobResponse, error) {
	input, err := buildCreateAutoMLJobInput(req)
	if err != nil {
		return nil, err
	}

	out, err := s.svc.CreateAutoMLJob(ctx, input)
	if err != nil {
		return nil, classify("s.svc.CreateAutoMLJob", err)
	}
	return &CreateAutoMLJobResponse{JobARN: aws.ToString(out.AutoMLJobArn)}, nil
}

func (s *AutoML) DescribeAutoMLJob(ctx context.Context, jobName string) (*DescribeAutoMLJobResponse, error) {
	if jobName == "" {
		return nil, NewMissingFieldError("JobName")
	}

	out, err := s.svc.DescribeAutoMLJob(ctx, &sagemaker.DescribeAutoMLJobInput{
		AutoMLJobName: aws.String(jobName),
	})
	if err != nil {
		return nil, classify("s.svc.DescribeAutoMLJob", err)
	}

	resp := &DescribeAutoMLJobResponse{
		JobName:         aws.ToString(out.AutoMLJobName),
		JobARN:          aws.ToString(out.AutoMLJobArn),
		Status:          string(out.AutoMLJobStatus),
		SecondaryStatus: string(out.AutoMLJobSecondaryStatus),
		FailureReason:   aws.ToString(out.FailureReason),
	}
	if out.BestCandidate != nil {
		c := candidateFromSDK(*out.BestCandidate)
		resp.Best = &c
	}
	return resp, nil
}

func (s *AutoML) StopAutoMLJob(ctx context.Context, jobName string) error {
	if jobName == "" {
		return NewMissingFieldError("JobName")
	}

	if _, err := s.svc.StopAutoMLJob(ctx, &sagemaker.StopAutoMLJobInput{
		AutoMLJobName: aws.String(jobName),
	}); err != nil {
		return classify("s.svc.StopAutoMLJob", err)
	}
	return nil
}

// WaitForAutoMLJob polls the job until it completes, stops, or fails.
func (s *AutoML) WaitForAutoMLJob(ctx context.Context, jobName string, cfg *PollConfig) (*DescribeAutoMLJobResponse, error) {
	logger := log.WithFields(log.Fields{"automl_job": jobName})

	var last *DescribeAutoMLJobResponse
	err := pollUntil(ctx, cfg, logger, "automl job "+jobName, func(ctx context.Context) (string, bool, error) {
		desc, err := s.DescribeAutoMLJob(ctx, jobName)
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
			return status, false, NewJobFailedError("automl job", jobName, desc.FailureReason)
		}
		return status, false, nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithField("status", last.Status).Info("automl job finished")
	return last, nil
}

// ListCandidates returns every candidate of an AutoML job, following
// pagination.
func (s *AutoML) ListCandidates(ctx context.Context, jobName string) ([]Candidate, error) {
	if jobName == "" {
		return nil, NewMissingFieldError("JobName")
	}

	var candidates []Candidate
	var nextToken *string
	for {
		out, err := s.svc.ListCandidatesForAutoMLJob(ctx, &sagemaker.ListCandidatesForAutoMLJobInput{
			AutoMLJobName: aws.String(jobName),
			NextToken:     nextToken,
		})
		if err != nil {
			return nil, classify("s.svc.ListCandidatesForAutoMLJob", err)
		}
		for _, c := range out.Candidates {
			candidates = append(candidates, candidateFromSDK(c))
		}
		if out.NextToken == nil || *out.NextToken == "" {
			break
		}
		nextToken = out.NextToken
	}
	return candidates, nil
}

// BestCandidate returns the job's best candidate once at least one
// candidate has completed.
func (s *AutoML) BestCandidate(ctx context.Context, jobName string) (*Candidate, error) {
	desc, err := s.DescribeAutoMLJob(ctx, jobName)
	if err != nil {
		return nil, err
	}
	if desc.Best == nil {
		return nil, NewResourceNotFoundError(fmt.Errorf("automl job %s has no best candidate yet", jobName))
	}
	return desc.Best, nil
}

func candidateFromSDK(c types.AutoMLCandidate) Candidate {
	out := Candidate{
		Name:   aws.ToString(c.CandidateName),
		Status: string(c.CandidateStatus),
	}
	if m := c.FinalAutoMLJobObjectiveMetric; m != nil {
		out.ObjectiveMetricName = string(m.MetricName)
		out.ObjectiveMetricValue = aws.ToFloat32(m.Value)
	}
	for _, ic := range c.InferenceContainers {
		out.Containers = append(out.Containers, ContainerDef{
			ImageURI:     aws.ToString(ic.Image),
			ModelDataURL: aws.ToString(ic.ModelDataUrl),
			Environment:  ic.Environment,
		})
	}
	return out
}

func buildCreateAutoMLJobInput(req CreateAutoMLJobRequest) (*sagemaker.CreateAutoMLJobInput, error) {
	switch {
	case req.JobName == "":
		return nil, NewMissingFieldError("JobName")
	case req.RoleARN == "":
		return nil, NewMissingFieldError("RoleARN")
	case req.InputS3URI == "":
		return nil, NewMissingFieldError("InputS3URI")
	case req.TargetAttribute == "":
		return nil, NewMissingFieldError("TargetAttribute")
	case req.OutputPath == "":
		return nil, NewMissingFieldError("OutputPath")
	}

	channel := types.AutoMLChannel{
		TargetAttributeName: aws.String(req.TargetAttribute),
		DataSource: &types.AutoMLDataSource{
			S3DataSource: &types.AutoMLS3DataSource{
				S3DataType: types.AutoMLS3DataType(S3DataTypePrefix),
				S3Uri:      aws.String(req.InputS3URI),
			},
		},
	}
	if req.CompressionType != "" {
		channel.CompressionType = types.CompressionType(req.CompressionType)
	}

	outputConfig := &types.AutoMLOutputDataConfig{S3OutputPath: aws.String(req.OutputPath)}
	if req.OutputKmsKeyID != "" {
		outputConfig.KmsKeyId = aws.String(req.OutputKmsKeyID)
	}

	input := &sagemaker.CreateAutoMLJobInput{
		AutoMLJobName:                    aws.String(req.JobName),
		RoleArn:                          aws.String(req.RoleARN),
		InputDataConfig:                  []types.AutoMLChannel{channel},
		OutputDataConfig:                 outputConfig,
		GenerateCandidateDefinitionsOnly: aws.Bool(req.GenerateDefinitionsOnly),
		Tags:                             tagsToSDK(req.Tags),
	}
	if req.ProblemType != "" {
		input.ProblemType = types.ProblemType(req.ProblemType)
	}
	if req.ObjectiveMetric != "" {
		input.AutoMLJobObjective = &types.AutoMLJobObjective{
			MetricName: types.AutoMLMetricEnum(req.ObjectiveMetric),
		}
	}
	if req.MaxCandidates > 0 || req.MaxRuntimePerJobSecs > 0 || req.TotalJobRuntimeSecs > 0 {
		criteria := &types.AutoMLJobCompletionCriteria{}
		if req.MaxCandidates > 0 {
			criteria.MaxCandidates = aws.Int32(req.MaxCandidates)
		}
		if req.MaxRuntimePerJobSecs > 0 {
			criteria.MaxRuntimePerTrainingJobInSeconds = aws.Int32(req.MaxRuntimePerJobSecs)
		}
		if req.TotalJobRuntimeSecs > 0 {
			criteria.MaxAutoMLJobRuntimeInSeconds = aws.Int32(req.TotalJobRuntimeSecs)
		}
		input.AutoMLJobConfig = &types.AutoMLJobConfig{CompletionCriteria: criteria}
	}
	return input, nil
}
