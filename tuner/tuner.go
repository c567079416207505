// Package tuner runs hyperparameter tuning jobs over an estimator's
// training configuration and deploys the best candidate.
package tuner

import (
	"context"

	"github.com/apex/log"
	"github.com/ggarcia209/go-sagemaker/estimator"
	"github.com/ggarcia209/go-sagemaker/goaws"
	"github.com/ggarcia209/go-sagemaker/gosagemaker"
	"github.com/ggarcia209/go-sagemaker/gosmruntime"
	"github.com/ggarcia209/go-sagemaker/model"
	"github.com/ggarcia209/go-sagemaker/predictor"
)

type Options struct {
	ObjectiveMetricName string
	ObjectiveType       string // Maximize|Minimize
	Ranges              gosagemaker.ParameterRanges

	MaxJobs         int32
	MaxParallelJobs int32
	Strategy        string // default Bayesian
	EarlyStopping   string // Off|Auto

	BaseJobName string
	Tags        []gosagemaker.Tag
	Poll        *gosagemaker.PollConfig
}

type Tuner struct {
	Options

	est      *estimator.Estimator
	tuning   gosagemaker.TuningLogic
	training gosagemaker.TrainingLogic
	hosting  gosagemaker.HostingLogic
	runtime  gosmruntime.RuntimeLogic

	latestJobName string
}

func New(config goaws.AwsConfig, est *estimator.Estimator, opts Options) *Tuner {
	return Bind(opts, est,
		gosagemaker.NewTuning(config),
		gosagemaker.NewTraining(config),
		gosagemaker.NewHosting(config),
		gosmruntime.NewRuntime(config),
	)
}

// Bind builds a Tuner over existing service logic.
func Bind(opts Options, est *estimator.Estimator, tuning gosagemaker.TuningLogic,
	training gosagemaker.TrainingLogic, hosting gosagemaker.HostingLogic, runtime gosmruntime.RuntimeLogic) *Tuner {
	return &Tuner{
		Options:  opts,
		est:      est,
		tuning:   tuning,
		training: training,
		hosting:  hosting,
		runtime:  runtime,
	}
}

type FitRequest struct {
	// Inputs maps channel names to S3 URIs. Channels takes precedence
	// when both are set.
	Inputs   map[string]string     `json:"inputs,omitempty"`
	Channels []gosagemaker.Channel `json:"channels,omitempty"`

	JobName string `json:"job_name,omitempty"`
	Wait    bool   `json:"wait,omitempty"`
}

type FitResponse struct {
	JobName string `json:"job_name"`
	JobARN  string `json:"job_arn"`
}

// Fit starts a tuning job over the estimator's training definition.
// With Wait set it blocks until the job reaches a terminal status.
func (t *Tuner) Fit(ctx context.Context, req FitRequest) (*FitResponse, error) {
	jobName := req.JobName
	if jobName == "" {
		jobName = gosagemaker.JobName(t.baseName(), gosagemaker.MaxTuningJobNameLen)
	}

	channels := req.Channels
	if len(channels) == 0 {
		channels = gosagemaker.ChannelsFromMap(req.Inputs)
	}

	trainingReq, err := t.est.TrainingRequest(ctx, jobName, channels)
	if err != nil {
		return nil, err
	}

	resp, err := t.tuning.CreateTuningJob(ctx, gosagemaker.CreateTuningJobRequest{
		JobName:         jobName,
		Strategy:        t.Strategy,
		ObjectiveType:   t.ObjectiveType,
		ObjectiveMetric: t.ObjectiveMetricName,
		MaxJobs:         t.MaxJobs,
		MaxParallelJobs: t.MaxParallelJobs,
		Ranges:          t.Ranges,
		EarlyStopping:   t.EarlyStopping,
		Training:        trainingReq,
		Tags:            t.Tags,
	})
	if err != nil {
		return nil, err
	}
	t.latestJobName = jobName

	log.WithFields(log.Fields{"tuning_job": jobName}).Info("tuning job started")

	if req.Wait {
		if _, err := t.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return &FitResponse{JobName: jobName, JobARN: resp.JobARN}, nil
}

// Wait blocks until the most recent tuning job reaches a terminal
// status.
func (t *Tuner) Wait(ctx context.Context) (*gosagemaker.DescribeTuningJobResponse, error) {
	if t.latestJobName == "" {
		return nil, gosagemaker.NewInvalidRequestError("no tuning job has been started")
	}
	return t.tuning.WaitForTuningJob(ctx, t.latestJobName, t.Poll)
}

// Describe returns the current state of the most recent tuning job.
func (t *Tuner) Describe(ctx context.Context) (*gosagemaker.DescribeTuningJobResponse, error) {
	if t.latestJobName == "" {
		return nil, gosagemaker.NewInvalidRequestError("no tuning job has been started")
	}
	return t.tuning.DescribeTuningJob(ctx, t.latestJobName)
}

// Stop stops the most recent tuning job. In-flight training jobs are
// stopped by the service.
func (t *Tuner) Stop(ctx context.Context) error {
	if t.latestJobName == "" {
		return gosagemaker.NewInvalidRequestError("no tuning job has been started")
	}
	return t.tuning.StopTuningJob(ctx, t.latestJobName)
}

// BestTrainingJob returns the best candidate of the most recent
// tuning job.
func (t *Tuner) BestTrainingJob(ctx context.Context) (*gosagemaker.BestTrainingJob, error) {
	if t.latestJobName == "" {
		return nil, gosagemaker.NewInvalidRequestError("no tuning job has been started")
	}
	return t.tuning.BestTrainingJob(ctx, t.latestJobName)
}

// LatestTuningJob returns the name of the most recent tuning job.
func (t *Tuner) LatestTuningJob() string {
	return t.latestJobName
}

// DeployBest creates a model from the best candidate's artifacts and
// stands up an endpoint serving it. The endpoint is named after the
// tuning job unless the request names one.
func (t *Tuner) DeployBest(ctx context.Context, req model.DeployRequest) (*predictor.Predictor, error) {
	best, err := t.BestTrainingJob(ctx)
	if err != nil {
		return nil, err
	}

	desc, err := t.training.DescribeTrainingJob(ctx, best.JobName)
	if err != nil {
		return nil, err
	}
	if desc.ModelArtifactsS3URI == "" {
		return nil, gosagemaker.NewInvalidRequestError("best training job has not produced model artifacts")
	}

	imageURI := desc.ImageURI
	if imageURI == "" {
		imageURI = t.est.ImageURI
	}
	roleARN := desc.RoleARN
	if roleARN == "" {
		roleARN = t.est.RoleARN
	}

	m := model.Bind(model.Options{
		Name:             best.JobName,
		ImageURI:         imageURI,
		ModelDataURL:     desc.ModelArtifactsS3URI,
		ExecutionRoleARN: roleARN,
		Tags:             t.Tags,
		Poll:             t.Poll,
	}, t.hosting, nil, t.runtime, nil)

	if req.EndpointName == "" {
		req.EndpointName = t.latestJobName
	}
	return m.Deploy(ctx, req)
}

func (t *Tuner) baseName() string {
	if t.BaseJobName != "" {
		return t.BaseJobName
	}
	if t.est.BaseJobName != "" {
		return t.est.BaseJobName
	}
	if t.est.ImageURI != "" {
		return gosagemaker.BaseName(t.est.ImageURI)
	}
	return t.est.AlgorithmName
}
