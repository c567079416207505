// Package estimator drives the train-then-deploy workflow: configure
// a training job once, fit it against channels of S3 data, and turn
// the resulting artifacts into a hosted model, an endpoint, or a
// batch transformer.
package estimator

import (
	"context"

	"github.com/apex/log"
	"github.com/ggarcia209/go-sagemaker/goaws"
	"github.com/ggarcia209/go-sagemaker/gos3"
	"github.com/ggarcia209/go-sagemaker/gosagemaker"
	"github.com/ggarcia209/go-sagemaker/gosmruntime"
	"github.com/ggarcia209/go-sagemaker/hyperparams"
	"github.com/ggarcia209/go-sagemaker/imageuris"
	"github.com/ggarcia209/go-sagemaker/model"
	"github.com/ggarcia209/go-sagemaker/predictor"
	"github.com/ggarcia209/go-sagemaker/transformer"
)

type Options struct {
	ImageURI      string
	AlgorithmName string
	RoleARN       string

	// Framework resolves ImageURI through the imageuris tables when no
	// explicit image or algorithm is given.
	Framework        string
	FrameworkVersion string
	PyVersion        string
	Region           string

	InstanceType  string
	InstanceCount int32
	VolumeSizeGB  int32

	MaxRuntimeSeconds int32
	MaxWaitSeconds    int32
	UseSpotInstances  bool

	BaseJobName    string
	OutputPath     string // default s3://{default bucket}
	OutputKmsKeyID string
	InputMode      string

	Hyperparameters   *hyperparams.Set
	Environment       map[string]string
	MetricDefinitions []gosagemaker.MetricDefinition

	Vpc                            *gosagemaker.VpcConfig
	EnableNetworkIsolation         bool
	EnableInterContainerEncryption bool
	CheckpointS3URI                string
	CheckpointLocalPath            string

	Tags []gosagemaker.Tag
	Poll *gosagemaker.PollConfig
}

type Estimator struct {
	Options

	training  gosagemaker.TrainingLogic
	hosting   gosagemaker.HostingLogic
	transform gosagemaker.TransformLogic
	runtime   gosmruntime.RuntimeLogic
	store     gos3.DataStoreLogic

	latestJobName string
	latestJobDesc *gosagemaker.DescribeTrainingJobResponse
}

func New(config goaws.AwsConfig, opts Options) *Estimator {
	e := Bind(opts,
		gosagemaker.NewTraining(config),
		gosagemaker.NewHosting(config),
		gosagemaker.NewTransform(config),
		gosmruntime.NewRuntime(config),
		gos3.NewDataStore(config),
	)
	if e.Region == "" {
		e.Region = config.Config.Region
	}
	return e
}

// Bind builds an Estimator over existing service logic.
func Bind(opts Options, training gosagemaker.TrainingLogic, hosting gosagemaker.HostingLogic,
	transform gosagemaker.TransformLogic, runtime gosmruntime.RuntimeLogic, store gos3.DataStoreLogic) *Estimator {
	return &Estimator{
		Options:   opts,
		training:  training,
		hosting:   hosting,
		transform: transform,
		runtime:   runtime,
		store:     store,
	}
}

// Attach binds an Estimator to a training job that already exists,
// reading its configuration back from the service.
func Attach(ctx context.Context, config goaws.AwsConfig, jobName string) (*Estimator, error) {
	e := New(config, Options{})
	if err := e.attach(ctx, jobName); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Estimator) attach(ctx context.Context, jobName string) error {
	desc, err := e.training.DescribeTrainingJob(ctx, jobName)
	if err != nil {
		return err
	}

	e.ImageURI = desc.ImageURI
	e.AlgorithmName = desc.AlgorithmName
	e.RoleARN = desc.RoleARN
	e.InstanceType = desc.Resources.InstanceType
	e.InstanceCount = desc.Resources.InstanceCount
	e.VolumeSizeGB = desc.Resources.VolumeSizeGB
	e.MaxRuntimeSeconds = desc.Stopping.MaxRuntimeSeconds
	e.MaxWaitSeconds = desc.Stopping.MaxWaitSeconds
	e.UseSpotInstances = desc.EnableManagedSpot
	e.OutputPath = desc.OutputPath
	e.InputMode = desc.InputMode
	if len(desc.Hyperparameters) > 0 {
		set := hyperparams.NewOpenSet()
		if err := set.PutAll(desc.Hyperparameters); err != nil {
			return err
		}
		e.Hyperparameters = set
	}

	e.latestJobName = jobName
	e.latestJobDesc = desc
	return nil
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

// Fit starts a training job over the given inputs. With Wait set it
// blocks until the job reaches a terminal status.
func (e *Estimator) Fit(ctx context.Context, req FitRequest) (*FitResponse, error) {
	if err := e.resolveImage(); err != nil {
		return nil, err
	}

	jobName := req.JobName
	if jobName == "" {
		jobName = gosagemaker.JobName(e.baseName(), gosagemaker.MaxTrainingJobNameLen)
	}

	channels := req.Channels
	if len(channels) == 0 {
		channels = gosagemaker.ChannelsFromMap(req.Inputs)
	}

	trainingReq, err := e.TrainingRequest(ctx, jobName, channels)
	if err != nil {
		return nil, err
	}

	resp, err := e.training.CreateTrainingJob(ctx, trainingReq)
	if err != nil {
		return nil, err
	}
	e.latestJobName = jobName
	e.latestJobDesc = nil

	log.WithFields(log.Fields{"training_job": jobName}).Info("training job started")

	if req.Wait {
		if _, err := e.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return &FitResponse{JobName: jobName, JobARN: resp.JobARN}, nil
}

// TrainingRequest assembles the full training job request for the
// estimator's configuration. Tuning jobs reuse it as the static job
// definition shared by every candidate.
func (e *Estimator) TrainingRequest(ctx context.Context, jobName string, channels []gosagemaker.Channel) (gosagemaker.CreateTrainingJobRequest, error) {
	if err := e.resolveImage(); err != nil {
		return gosagemaker.CreateTrainingJobRequest{}, err
	}

	outputPath := e.OutputPath
	if outputPath == "" {
		bucket, err := e.store.DefaultBucket(ctx)
		if err != nil {
			return gosagemaker.CreateTrainingJobRequest{}, err
		}
		outputPath = gos3.JoinS3URI(bucket)
	}

	var hp map[string]string
	if e.Hyperparameters != nil {
		wired, err := e.Hyperparameters.Wire()
		if err != nil {
			return gosagemaker.CreateTrainingJobRequest{}, err
		}
		hp = wired
	}

	return gosagemaker.CreateTrainingJobRequest{
		JobName:           jobName,
		RoleARN:           e.RoleARN,
		ImageURI:          e.ImageURI,
		AlgorithmName:     e.AlgorithmName,
		InputMode:         e.InputMode,
		MetricDefinitions: e.MetricDefinitions,
		Channels:          channels,
		OutputPath:        outputPath,
		OutputKmsKeyID:    e.OutputKmsKeyID,
		Resources: gosagemaker.ResourceConfig{
			InstanceType:  e.InstanceType,
			InstanceCount: e.InstanceCount,
			VolumeSizeGB:  e.VolumeSizeGB,
		},
		Stopping: gosagemaker.StoppingCondition{
			MaxRuntimeSeconds: e.MaxRuntimeSeconds,
			MaxWaitSeconds:    e.MaxWaitSeconds,
		},
		Hyperparameters: hp,
		Environment:     e.Environment,
		Vpc:             e.Vpc,
		Tags:            e.Tags,

		EnableNetworkIsolation:         e.EnableNetworkIsolation,
		EnableInterContainerEncryption: e.EnableInterContainerEncryption,
		EnableManagedSpot:              e.UseSpotInstances,
		CheckpointS3URI:                e.CheckpointS3URI,
		CheckpointLocalPath:            e.CheckpointLocalPath,
	}, nil
}

// Wait blocks until the most recent training job reaches a terminal
// status.
func (e *Estimator) Wait(ctx context.Context) (*gosagemaker.DescribeTrainingJobResponse, error) {
	if e.latestJobName == "" {
		return nil, gosagemaker.NewInvalidRequestError("no training job has been started")
	}
	desc, err := e.training.WaitForTrainingJob(ctx, e.latestJobName, e.Poll)
	if err != nil {
		return nil, err
	}
	e.latestJobDesc = desc
	return desc, nil
}

// Describe returns the current state of the most recent training job.
func (e *Estimator) Describe(ctx context.Context) (*gosagemaker.DescribeTrainingJobResponse, error) {
	if e.latestJobName == "" {
		return nil, gosagemaker.NewInvalidRequestError("no training job has been started")
	}
	desc, err := e.training.DescribeTrainingJob(ctx, e.latestJobName)
	if err != nil {
		return nil, err
	}
	e.latestJobDesc = desc
	return desc, nil
}

// Stop stops the most recent training job.
func (e *Estimator) Stop(ctx context.Context) error {
	if e.latestJobName == "" {
		return gosagemaker.NewInvalidRequestError("no training job has been started")
	}
	return e.training.StopTrainingJob(ctx, e.latestJobName)
}

// LatestTrainingJob returns the name of the most recent training job.
func (e *Estimator) LatestTrainingJob() string {
	return e.latestJobName
}

// ModelArtifacts returns the S3 URI of the trained model artifacts,
// describing the job if its state is not already cached.
func (e *Estimator) ModelArtifacts(ctx context.Context) (string, error) {
	desc := e.latestJobDesc
	if desc == nil || desc.ModelArtifactsS3URI == "" {
		var err error
		desc, err = e.Describe(ctx)
		if err != nil {
			return "", err
		}
	}
	if desc.ModelArtifactsS3URI == "" {
		return "", gosagemaker.NewInvalidRequestError("training job has not produced model artifacts")
	}
	return desc.ModelArtifactsS3URI, nil
}

// CreateModel returns a Model backed by the artifacts of the most
// recent training job. Overrides on opts take precedence; the image
// and role default to the estimator's.
func (e *Estimator) CreateModel(ctx context.Context, opts model.Options) (*model.Model, error) {
	artifacts, err := e.ModelArtifacts(ctx)
	if err != nil {
		return nil, err
	}

	if opts.ImageURI == "" {
		opts.ImageURI = e.ImageURI
	}
	if opts.ExecutionRoleARN == "" {
		opts.ExecutionRoleARN = e.RoleARN
	}
	if opts.ModelDataURL == "" {
		opts.ModelDataURL = artifacts
	}
	if opts.Tags == nil {
		opts.Tags = e.Tags
	}
	if opts.Poll == nil {
		opts.Poll = e.Poll
	}
	return model.Bind(opts, e.hosting, e.transform, e.runtime, e.store), nil
}

// Deploy creates a model from the latest training job and stands up
// a real-time endpoint serving it.
func (e *Estimator) Deploy(ctx context.Context, req model.DeployRequest) (*predictor.Predictor, error) {
	m, err := e.CreateModel(ctx, model.Options{})
	if err != nil {
		return nil, err
	}
	return m.Deploy(ctx, req)
}

// Transformer creates a model from the latest training job and
// returns a batch transformer bound to it.
func (e *Estimator) Transformer(ctx context.Context, opts transformer.Options) (*transformer.Transformer, error) {
	m, err := e.CreateModel(ctx, model.Options{})
	if err != nil {
		return nil, err
	}
	if opts.InstanceType == "" {
		opts.InstanceType = e.InstanceType
	}
	if opts.InstanceCount == 0 {
		opts.InstanceCount = e.InstanceCount
	}
	return m.Transformer(ctx, opts)
}

func (e *Estimator) baseName() string {
	if e.BaseJobName != "" {
		return e.BaseJobName
	}
	if e.ImageURI != "" {
		return gosagemaker.BaseName(e.ImageURI)
	}
	if e.Framework != "" {
		return e.Framework
	}
	return e.AlgorithmName
}

// resolveImage fills ImageURI from the image tables when only a
// framework is configured.
func (e *Estimator) resolveImage() error {
	if e.ImageURI != "" || e.AlgorithmName != "" || e.Framework == "" {
		return nil
	}

	resolved, err := imageuris.Retrieve(imageuris.RetrieveRequest{
		Framework:    e.Framework,
		Region:       e.Region,
		Version:      e.FrameworkVersion,
		PyVersion:    e.PyVersion,
		InstanceType: e.InstanceType,
		Scope:        imageuris.ScopeTraining,
	})
	if err != nil {
		return err
	}
	e.ImageURI = resolved.URI
	return nil
}
