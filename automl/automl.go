// Package automl runs AutoML jobs: point the service at tabular data
// in S3, let it search candidate pipelines, and deploy the best one.
package automl

import (
	"context"

	"github.com/apex/log"
	"github.com/ggarcia209/go-sagemaker/goaws"
	"github.com/ggarcia209/go-sagemaker/gos3"
	"github.com/ggarcia209/go-sagemaker/gosagemaker"
	"github.com/ggarcia209/go-sagemaker/gosmruntime"
	"github.com/ggarcia209/go-sagemaker/model"
	"github.com/ggarcia209/go-sagemaker/predictor"
)

type Options struct {
	RoleARN         string
	TargetAttribute string

	ProblemType     string // service infers when empty
	ObjectiveMetric string

	MaxCandidates        int32
	MaxRuntimePerJobSecs int32
	TotalJobRuntimeSecs  int32

	BaseJobName    string
	OutputPath     string // default s3://{default bucket}
	OutputKmsKeyID string

	Tags []gosagemaker.Tag
	Poll *gosagemaker.PollConfig
}

type AutoML struct {
	Options

	automl  gosagemaker.AutoMLLogic
	hosting gosagemaker.HostingLogic
	runtime gosmruntime.RuntimeLogic
	store   gos3.DataStoreLogic

	latestJobName string
}

func New(config goaws.AwsConfig, opts Options) *AutoML {
	return Bind(opts,
		gosagemaker.NewAutoML(config),
		gosagemaker.NewHosting(config),
		gosmruntime.NewRuntime(config),
		gos3.NewDataStore(config),
	)
}

// Bind builds an AutoML runner over existing service logic.
func Bind(opts Options, automl gosagemaker.AutoMLLogic, hosting gosagemaker.HostingLogic,
	runtime gosmruntime.RuntimeLogic, store gos3.DataStoreLogic) *AutoML {
	return &AutoML{
		Options: opts,
		automl:  automl,
		hosting: hosting,
		runtime: runtime,
		store:   store,
	}
}

type FitRequest struct {
	InputS3URI      string `json:"input_s3_uri"`
	CompressionType string `json:"compression_type,omitempty"`

	JobName string `json:"job_name,omitempty"`
	Wait    bool   `json:"wait,omitempty"`
}

type FitResponse struct {
	JobName string `json:"job_name"`
	JobARN  string `json:"job_arn"`
}

// Fit starts an AutoML job over the data at InputS3URI. With Wait set
// it blocks until the job reaches a terminal status.
func (a *AutoML) Fit(ctx context.Context, req FitRequest) (*FitResponse, error) {
	jobName := req.JobName
	if jobName == "" {
		base := a.BaseJobName
		if base == "" {
			base = "automl"
		}
		jobName = gosagemaker.JobName(base, gosagemaker.MaxAutoMLJobNameLen)
	}

	outputPath := a.OutputPath
	if outputPath == "" {
		bucket, err := a.store.DefaultBucket(ctx)
		if err != nil {
			return nil, err
		}
		outputPath = gos3.JoinS3URI(bucket, jobName)
	}

	resp, err := a.automl.CreateAutoMLJob(ctx, gosagemaker.CreateAutoMLJobRequest{
		JobName:         jobName,
		RoleARN:         a.RoleARN,
		InputS3URI:      req.InputS3URI,
		TargetAttribute: a.TargetAttribute,
		CompressionType: req.CompressionType,
		OutputPath:      outputPath,
		OutputKmsKeyID:  a.OutputKmsKeyID,

		ProblemType:     a.ProblemType,
		ObjectiveMetric: a.ObjectiveMetric,

		MaxCandidates:        a.MaxCandidates,
		MaxRuntimePerJobSecs: a.MaxRuntimePerJobSecs,
		TotalJobRuntimeSecs:  a.TotalJobRuntimeSecs,

		Tags: a.Tags,
	})
	if err != nil {
		return nil, err
	}
	a.latestJobName = jobName

	log.WithFields(log.Fields{"automl_job": jobName}).Info("automl job started")

	if req.Wait {
		if _, err := a.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return &FitResponse{JobName: jobName, JobARN: resp.JobARN}, nil
}

// Wait blocks until the most recent AutoML job reaches a terminal
// status.
func (a *AutoML) Wait(ctx context.Context) (*gosagemaker.DescribeAutoMLJobResponse, error) {
	if a.latestJobName == "" {
		return nil, gosagemaker.NewInvalidRequestError("no automl job has been started")
	}
	return a.automl.WaitForAutoMLJob(ctx, a.latestJobName, a.Poll)
}

// Describe returns the current state of the most recent AutoML job.
func (a *AutoML) Describe(ctx context.Context) (*gosagemaker.DescribeAutoMLJobResponse, error) {
	if a.latestJobName == "" {
		return nil, gosagemaker.NewInvalidRequestError("no automl job has been started")
	}
	return a.automl.DescribeAutoMLJob(ctx, a.latestJobName)
}

// Stop stops the most recent AutoML job.
func (a *AutoML) Stop(ctx context.Context) error {
	if a.latestJobName == "" {
		return gosagemaker.NewInvalidRequestError("no automl job has been started")
	}
	return a.automl.StopAutoMLJob(ctx, a.latestJobName)
}

// LatestAutoMLJob returns the name of the most recent AutoML job.
func (a *AutoML) LatestAutoMLJob() string {
	return a.latestJobName
}

// ListCandidates returns every candidate produced by the most recent
// AutoML job.
func (a *AutoML) ListCandidates(ctx context.Context) ([]gosagemaker.Candidate, error) {
	if a.latestJobName == "" {
		return nil, gosagemaker.NewInvalidRequestError("no automl job has been started")
	}
	return a.automl.ListCandidates(ctx, a.latestJobName)
}

// BestCandidate returns the best candidate of the most recent AutoML
// job.
func (a *AutoML) BestCandidate(ctx context.Context) (*gosagemaker.Candidate, error) {
	if a.latestJobName == "" {
		return nil, gosagemaker.NewInvalidRequestError("no automl job has been started")
	}
	return a.automl.BestCandidate(ctx, a.latestJobName)
}

// CreateModel returns a Model backed by a candidate's inference
// containers. AutoML candidates are inference pipelines, so the model
// carries the candidate's full container chain.
func (a *AutoML) CreateModel(ctx context.Context, candidate *gosagemaker.Candidate) (*model.Model, error) {
	if candidate == nil {
		var err error
		candidate, err = a.BestCandidate(ctx)
		if err != nil {
			return nil, err
		}
	}
	if len(candidate.Containers) == 0 {
		return nil, gosagemaker.NewInvalidRequestError("candidate " + candidate.Name + " has no inference containers")
	}

	return model.Bind(model.Options{
		Name:             candidate.Name,
		ExecutionRoleARN: a.RoleARN,
		Containers:       candidate.Containers,
		Tags:             a.Tags,
		Poll:             a.Poll,
	}, a.hosting, nil, a.runtime, a.store), nil
}

// Deploy creates a model from the best candidate and stands up an
// endpoint serving it. The endpoint is named after the AutoML job
// unless the request names one.
func (a *AutoML) Deploy(ctx context.Context, req model.DeployRequest) (*predictor.Predictor, error) {
	m, err := a.CreateModel(ctx, nil)
	if err != nil {
		return nil, err
	}
	if req.EndpointName == "" {
		req.EndpointName = a.latestJobName
	}
	return m.Deploy(ctx, req)
}
