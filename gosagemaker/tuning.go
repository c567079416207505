package gosagemaker

import (
	"context"
	"strconv"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker/types"
	"github.com/ggarcia209/go-sagemaker/goaws"
)

//go:generate mockgen -destination=../mocks/gosagemakermock/tuning.go -package=gosagemakermock . TuningLogic
type TuningLogic interface {
	CreateTuningJob(ctx context.Context, req CreateTuningJobRequest) (*CreateTuningJobResponse, error)
	DescribeTuningJob(ctx context.Context, jobName string) (*DescribeTuningJobResponse, error)
	StopTuningJob(ctx context.Context, jobName string) error
	WaitForTuningJob(ctx context.Context, jobName string, cfg *PollConfig) (*DescribeTuningJobResponse, error)
	BestTrainingJob(ctx context.Context, jobName string) (*BestTrainingJob, error)
}

// TuningClientAPI defines the interface for the AWS SageMaker client methods used for hyperparameter tuning jobs.
//
//go:generate mockgen -destination=./tuning_client_test.go -package=gosagemaker . TuningClientAPI
type TuningClientAPI interface {
	CreateHyperParameterTuningJob(ctx context.Context, params *sagemaker.CreateHyperParameterTuningJobInput, optFns ...func(*sagemaker.Options)) (*sagemaker.CreateHyperParameterTuningJobOutput, error)
	DescribeHyperParameterTuningJob(ctx context.Context, params *sagemaker.DescribeHyperParameterTuningJobInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DescribeHyperParameterTuningJobOutput, error)
	StopHyperParameterTuningJob(ctx context.Context, params *sagemaker.StopHyperParameterTuningJobInput, optFns ...func(*sagemaker.Options)) (*sagemaker.StopHyperParameterTuningJobOutput, error)
}

type Tuning struct {
	svc TuningClientAPI
}

func NewTuning(config goaws.AwsConfig) *Tuning {
	return &Tuning{svc: sagemaker.NewFromConfig(config.Config)}
}

// CreateTuningJob starts a hyperparameter tuning job. The Training
// request supplies the static training definition shared by every
// candidate; its Hyperparameters become the static set and must not
// overlap with the parameter ranges.
func (s *Tuning) CreateTuningJob(ctx context.Context, req CreateTuningJobRequest) (*CreateTuningJobResponse, error) {
	input, err := buildCreateTuningJobInput(req)
	if err != nil {
		return nil, err
	}

	out, err := s.svc.CreateHyperParameterTuningJob(ctx, input)
	if err != nil {
		return nil, classify("s.svc.CreateHyperParameterTuningJob", err)
	}
	return &CreateTuningJobResponse{JobARN: aws.ToString(out.HyperParameterTuningJobArn)}, nil
}

func (s *Tuning) DescribeTuningJob(ctx context.Context, jobName string) (*DescribeTuningJobResponse, error) {
	if jobName == "" {
		return nil, NewMissingFieldError("JobName")
	}

	out, err := s.svc.DescribeHyperParameterTuningJob(ctx, &sagemaker.DescribeHyperParameterTuningJobInput{
		HyperParameterTuningJobName: aws.String(jobName),
	})
	if err != nil {
		return nil, classify("s.svc.DescribeHyperParameterTuningJob", err)
	}

	resp := &DescribeTuningJobResponse{
		JobName:       aws.ToString(out.HyperParameterTuningJobName),
		JobARN:        aws.ToString(out.HyperParameterTuningJobArn),
		Status:        string(out.HyperParameterTuningJobStatus),
		FailureReason: aws.ToString(out.FailureReason),
	}
	if c := out.TrainingJobStatusCounters; c != nil {
		resp.Counters = TrainingJobCounters{
			Completed:         aws.ToInt32(c.Completed),
			InProgress:        aws.ToInt32(c.InProgress),
			RetryableError:    aws.ToInt32(c.RetryableError),
			NonRetryableError: aws.ToInt32(c.NonRetryableError),
			Stopped:           aws.ToInt32(c.Stopped),
		}
	}
	if b := out.BestTrainingJob; b != nil {
		best := &BestTrainingJob{
			JobName:              aws.ToString(b.TrainingJobName),
			Status:               string(b.TrainingJobStatus),
			TunedHyperparameters: b.TunedHyperParameters,
		}
		if m := b.FinalHyperParameterTuningJobObjectiveMetric; m != nil {
			best.ObjectiveMetricName = aws.ToString(m.MetricName)
			best.ObjectiveMetricValue = aws.ToFloat32(m.Value)
		}
		resp.Best = best
	}
	return resp, nil
}

func (s *Tuning) StopTuningJob(ctx context.Context, jobName string) error {
	if jobName == "" {
		return NewMissingFieldError("JobName")
	}

	if _, err := s.svc.StopHyperParameterTuningJob(ctx, &sagemaker.StopHyperParameterTuningJobInput{
		HyperParameterTuningJobName: aws.String(jobName),
	}); err != nil {
		return classify("s.svc.StopHyperParameterTuningJob", err)
	}
	return nil
}

// WaitForTuningJob polls the tuning job until it completes, stops, or
// fails. Candidate job counters are logged on each transition.
func (s *Tuning) WaitForTuningJob(ctx context.Context, jobName string, cfg *PollConfig) (*DescribeTuningJobResponse, error) {
	logger := log.WithFields(log.Fields{"tuning_job": jobName})

	var last *DescribeTuningJobResponse
	err := pollUntil(ctx, cfg, logger, "tuning job "+jobName, func(ctx context.Context) (string, bool, error) {
		desc, err := s.DescribeTuningJob(ctx, jobName)
		if err != nil {
			return "", false, err
		}
		last = desc

		logger.WithFields(log.Fields{
			"completed":   desc.Counters.Completed,
			"in_progress": desc.Counters.InProgress,
		}).Debug("training job counters")

		switch desc.Status {
		case StatusCompleted, StatusStopped:
			return desc.Status, true, nil
		case StatusFailed:
			return desc.Status, false, NewJobFailedError("tuning job", jobName, desc.FailureReason)
		}
		return desc.Status, false, nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithField("status", last.Status).Info("tuning job finished")
	return last, nil
}

// BestTrainingJob returns the best candidate of a completed or
// in-progress tuning job. The tuning job reports no best candidate
// until at least one training job completes.
func (s *Tuning) BestTrainingJob(ctx context.Context, jobName string) (*BestTrainingJob, error) {
	desc, err := s.DescribeTuningJob(ctx, jobName)
	if err != nil {
		return nil, err
	}
	if desc.Best == nil {
		return nil, NewResourceNotFoundError(
			&noBestCandidateError{job: jobName},
		)
	}
	return desc.Best, nil
}

type noBestCandidateError struct {
	job string
}

func (e *noBestCandidateError) Error() string {
	return "tuning job " + e.job + " has no completed training job yet"
}

func buildCreateTuningJobInput(req CreateTuningJobRequest) (*sagemaker.CreateHyperParameterTuningJobInput, error) {
	switch {
	case req.JobName == "":
		return nil, NewMissingFieldError("JobName")
	case req.ObjectiveType != ObjectiveMaximize && req.ObjectiveType != ObjectiveMinimize:
		return nil, NewInvalidRequestError("ObjectiveType must be Maximize or Minimize")
	case req.ObjectiveMetric == "":
		return nil, NewMissingFieldError("ObjectiveMetric")
	case req.MaxJobs <= 0:
		return nil, NewInvalidRequestError("MaxJobs must be at least 1")
	case req.MaxParallelJobs <= 0:
		return nil, NewInvalidRequestError("MaxParallelJobs must be at least 1")
	case len(req.Ranges.Integer)+len(req.Ranges.Continuous)+len(req.Ranges.Categorical) == 0:
		return nil, NewInvalidRequestError("at least one parameter range is required")
	}

	for name := range req.Training.Hyperparameters {
		if rangesContain(req.Ranges, name) {
			return nil, NewInvalidRequestError("hyperparameter " + name + " is both static and tuned")
		}
	}

	// the training definition reuses the training job request
	// validation, with a placeholder name since candidates are
	// named by the service
	trainingReq := req.Training
	if trainingReq.JobName == "" {
		trainingReq.JobName = req.JobName
	}
	trainingInput, err := buildCreateTrainingJobInput(trainingReq)
	if err != nil {
		return nil, err
	}

	strategy := req.Strategy
	if strategy == "" {
		strategy = StrategyBayesian
	}

	tuningConfig := &types.HyperParameterTuningJobConfig{
		Strategy: types.HyperParameterTuningJobStrategyType(strategy),
		HyperParameterTuningJobObjective: &types.HyperParameterTuningJobObjective{
			Type:       types.HyperParameterTuningJobObjectiveType(req.ObjectiveType),
			MetricName: aws.String(req.ObjectiveMetric),
		},
		ResourceLimits: &types.ResourceLimits{
			MaxNumberOfTrainingJobs: aws.Int32(req.MaxJobs),
			MaxParallelTrainingJobs: aws.Int32(req.MaxParallelJobs),
		},
		ParameterRanges: rangesToSDK(req.Ranges),
	}
	if req.EarlyStopping != "" {
		tuningConfig.TrainingJobEarlyStoppingType = types.TrainingJobEarlyStoppingType(req.EarlyStopping)
	}

	definition := &types.HyperParameterTrainingJobDefinition{
		AlgorithmSpecification: &types.HyperParameterAlgorithmSpecification{
			TrainingImage:     trainingInput.AlgorithmSpecification.TrainingImage,
			AlgorithmName:     trainingInput.AlgorithmSpecification.AlgorithmName,
			TrainingInputMode: trainingInput.AlgorithmSpecification.TrainingInputMode,
			MetricDefinitions: trainingInput.AlgorithmSpecification.MetricDefinitions,
		},
		RoleArn:                trainingInput.RoleArn,
		InputDataConfig:        trainingInput.InputDataConfig,
		OutputDataConfig:       trainingInput.OutputDataConfig,
		ResourceConfig:         trainingInput.ResourceConfig,
		StoppingCondition:      trainingInput.StoppingCondition,
		StaticHyperParameters:  trainingInput.HyperParameters,
		VpcConfig:              trainingInput.VpcConfig,
		EnableNetworkIsolation: trainingInput.EnableNetworkIsolation,
		EnableInterContainerTrafficEncryption: trainingInput.EnableInterContainerTrafficEncryption,
		EnableManagedSpotTraining:             trainingInput.EnableManagedSpotTraining,
		CheckpointConfig:                      trainingInput.CheckpointConfig,
	}

	return &sagemaker.CreateHyperParameterTuningJobInput{
		HyperParameterTuningJobName:   aws.String(req.JobName),
		HyperParameterTuningJobConfig: tuningConfig,
		TrainingJobDefinition:         definition,
		Tags:                          tagsToSDK(req.Tags),
	}, nil
}

func rangesToSDK(r ParameterRanges) *types.ParameterRanges {
	out := &types.ParameterRanges{}
	for _, p := range r.Integer {
		out.IntegerParameterRanges = append(out.IntegerParameterRanges, types.IntegerParameterRange{
			Name:        aws.String(p.Name),
			MinValue:    aws.String(strconv.FormatInt(p.Min, 10)),
			MaxValue:    aws.String(strconv.FormatInt(p.Max, 10)),
			ScalingType: scalingToSDK(p.Scaling),
		})
	}
	for _, p := range r.Continuous {
		out.ContinuousParameterRanges = append(out.ContinuousParameterRanges, types.ContinuousParameterRange{
			Name:        aws.String(p.Name),
			MinValue:    aws.String(strconv.FormatFloat(p.Min, 'g', -1, 64)),
			MaxValue:    aws.String(strconv.FormatFloat(p.Max, 'g', -1, 64)),
			ScalingType: scalingToSDK(p.Scaling),
		})
	}
	for _, p := range r.Categorical {
		out.CategoricalParameterRanges = append(out.CategoricalParameterRanges, types.CategoricalParameterRange{
			Name:   aws.String(p.Name),
			Values: p.Values,
		})
	}
	return out
}

func scalingToSDK(scaling string) types.HyperParameterScalingType {
	if scaling == "" {
		return types.HyperParameterScalingType("Auto")
	}
	return types.HyperParameterScalingType(scaling)
}

func rangesContain(r ParameterRanges, name string) bool {
	for _, p := range r.Integer {
		if p.Name == name {
			return true
		}
	}
	for _, p := range r.Continuous {
		if p.Name == name {
			return true
		}
	}
	for _, p := range r.Categorical {
		if p.Name == name {
			return true
		}
	}
	return false
}
