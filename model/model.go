// Package model represents a deployable model: one or more inference
// containers plus the role they run under. A Model is created in the
// service on demand and can be deployed to a real-time endpoint or
// handed to a batch transformer.
package model

import (
	"context"

	"github.com/apex/log"
	"github.com/ggarcia209/go-sagemaker/goaws"
	"github.com/ggarcia209/go-sagemaker/gos3"
	"github.com/ggarcia209/go-sagemaker/gosagemaker"
	"github.com/ggarcia209/go-sagemaker/gosmruntime"
	"github.com/ggarcia209/go-sagemaker/predictor"
	"github.com/ggarcia209/go-sagemaker/transformer"
)

type Options struct {
	Name             string
	ImageURI         string
	ModelDataURL     string
	ExecutionRoleARN string
	Environment      map[string]string

	// Containers defines an inference pipeline; when set it takes the
	// place of the single-container fields above.
	Containers []gosagemaker.ContainerDef

	Vpc                    *gosagemaker.VpcConfig
	EnableNetworkIsolation bool
	Tags                   []gosagemaker.Tag
	Poll                   *gosagemaker.PollConfig
}

type Model struct {
	Options

	hosting   gosagemaker.HostingLogic
	transform gosagemaker.TransformLogic
	runtime   gosmruntime.RuntimeLogic
	store     gos3.DataStoreLogic
	config    goaws.AwsConfig

	created bool
}

func New(config goaws.AwsConfig, opts Options) *Model {
	m := Bind(opts, gosagemaker.NewHosting(config), gosagemaker.NewTransform(config),
		gosmruntime.NewRuntime(config), gos3.NewDataStore(config))
	m.config = config
	return m
}

// Bind builds a Model over existing service logic.
func Bind(opts Options, hosting gosagemaker.HostingLogic, transform gosagemaker.TransformLogic,
	runtime gosmruntime.RuntimeLogic, store gos3.DataStoreLogic) *Model {
	return &Model{
		Options:   opts,
		hosting:   hosting,
		transform: transform,
		runtime:   runtime,
		store:     store,
	}
}

// Create registers the model with the service. Calling Create twice
// is a no-op. A missing name is generated from the image URI.
func (m *Model) Create(ctx context.Context) error {
	if m.created {
		return nil
	}

	if m.Name == "" {
		base := m.ImageURI
		if base == "" && len(m.Containers) > 0 {
			base = m.Containers[0].ImageURI
		}
		m.Name = gosagemaker.JobName(gosagemaker.BaseName(base), gosagemaker.MaxTrainingJobNameLen)
	}

	req := gosagemaker.CreateModelRequest{
		ModelName:              m.Name,
		ExecutionRoleARN:       m.ExecutionRoleARN,
		Vpc:                    m.Vpc,
		EnableNetworkIsolation: m.EnableNetworkIsolation,
		Tags:                   m.Tags,
	}
	if len(m.Containers) > 0 {
		req.Containers = m.Containers
	} else {
		req.PrimaryContainer = &gosagemaker.ContainerDef{
			ImageURI:     m.ImageURI,
			ModelDataURL: m.ModelDataURL,
			Environment:  m.Environment,
		}
	}

	if _, err := m.hosting.CreateModel(ctx, req); err != nil {
		return err
	}
	m.created = true

	log.WithField("model", m.Name).Info("model created")
	return nil
}

type DeployRequest struct {
	EndpointName         string `json:"endpoint_name"`
	InstanceType         string `json:"instance_type,omitempty"`
	InitialInstanceCount int32  `json:"initial_instance_count,omitempty"`
	AcceleratorType      string `json:"accelerator_type,omitempty"`
	KmsKeyID             string `json:"kms_key_id,omitempty"`

	ServerlessMaxConcurrency int32 `json:"serverless_max_concurrency,omitempty"`
	ServerlessMemorySizeMB   int32 `json:"serverless_memory_size_mb,omitempty"`

	Predictor predictor.Options `json:"-"`
}

// Deploy creates the model if needed, stands up an endpoint config
// and endpoint named after EndpointName, waits for the endpoint to
// come in service, and returns a predictor bound to it.
func (m *Model) Deploy(ctx context.Context, req DeployRequest) (*predictor.Predictor, error) {
	if err := m.Create(ctx); err != nil {
		return nil, err
	}

	endpointName := req.EndpointName
	if endpointName == "" {
		endpointName = m.Name
	}

	if _, err := m.hosting.CreateEndpointConfig(ctx, gosagemaker.CreateEndpointConfigRequest{
		ConfigName: endpointName,
		KmsKeyID:   req.KmsKeyID,
		Variants: []gosagemaker.ProductionVariant{
			{
				VariantName:              "AllTraffic",
				ModelName:                m.Name,
				InstanceType:             req.InstanceType,
				InitialInstanceCount:     req.InitialInstanceCount,
				AcceleratorType:          req.AcceleratorType,
				ServerlessMaxConcurrency: req.ServerlessMaxConcurrency,
				ServerlessMemorySizeMB:   req.ServerlessMemorySizeMB,
			},
		},
		Tags: m.Tags,
	}); err != nil {
		return nil, err
	}

	if _, err := m.hosting.CreateEndpoint(ctx, gosagemaker.CreateEndpointRequest{
		EndpointName: endpointName,
		ConfigName:   endpointName,
		Tags:         m.Tags,
	}); err != nil {
		return nil, err
	}

	if _, err := m.hosting.WaitForEndpoint(ctx, endpointName, m.Poll); err != nil {
		return nil, err
	}

	popts := req.Predictor
	if popts.ModelName == "" {
		popts.ModelName = m.Name
	}
	return predictor.Bind(endpointName, m.hosting, m.runtime, popts), nil
}

// Transformer returns a batch transformer bound to this model,
// creating the model first if needed.
func (m *Model) Transformer(ctx context.Context, opts transformer.Options) (*transformer.Transformer, error) {
	if err := m.Create(ctx); err != nil {
		return nil, err
	}
	opts.ModelName = m.Name
	if opts.Tags == nil {
		opts.Tags = m.Tags
	}
	return transformer.Bind(opts, m.transform, m.store), nil
}

// Delete removes the model from the service.
func (m *Model) Delete(ctx context.Context) error {
	if m.Name == "" {
		return gosagemaker.NewMissingFieldError("Name")
	}
	if err := m.hosting.DeleteModel(ctx, m.Name); err != nil {
		return err
	}
	m.created = false
	return nil
}
