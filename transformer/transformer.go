// Package transformer runs batch transform jobs: offline inference
// over datasets in S3 using a registered model.
package transformer

import (
	"context"

	"github.com/ggarcia209/go-sagemaker/goaws"
	"github.com/ggarcia209/go-sagemaker/gos3"
	"github.com/ggarcia209/go-sagemaker/gosagemaker"
)

type Options struct {
	ModelName     string
	InstanceType  string
	InstanceCount int32
	BaseJobName   string

	OutputPath     string // default s3://{default bucket}/{job name}
	Accept         string
	AssembleWith   string
	OutputKmsKeyID string
	VolumeKmsKeyID string

	Strategy                string
	MaxConcurrentTransforms int32
	MaxPayloadMB            int32
	Environment             map[string]string

	Tags []gosagemaker.Tag
	Poll *gosagemaker.PollConfig
}

type Transformer struct {
	Options

	transform gosagemaker.TransformLogic
	store     gos3.DataStoreLogic

	latestJobName string
}

func New(config goaws.AwsConfig, opts Options) *Transformer {
	return Bind(opts, gosagemaker.NewTransform(config), gos3.NewDataStore(config))
}

// Bind builds a Transformer over existing service logic.
func Bind(opts Options, transform gosagemaker.TransformLogic, store gos3.DataStoreLogic) *Transformer {
	return &Transformer{
		Options:   opts,
		transform: transform,
		store:     store,
	}
}

type TransformRequest struct {
	DataS3URI       string `json:"data_s3_uri"`
	S3DataType      string `json:"s3_data_type,omitempty"`
	ContentType     string `json:"content_type,omitempty"`
	CompressionType string `json:"compression_type,omitempty"`
	SplitType       string `json:"split_type,omitempty"`

	InputFilter  string `json:"input_filter,omitempty"`
	OutputFilter string `json:"output_filter,omitempty"`
	JoinSource   string `json:"join_source,omitempty"`

	JobName string `json:"job_name,omitempty"`
	Wait    bool   `json:"wait,omitempty"`
}

type TransformResponse struct {
	JobName    string `json:"job_name"`
	JobARN     string `json:"job_arn"`
	OutputPath string `json:"output_path"`
}

// Transform starts a batch transform job over the data at DataS3URI.
// With Wait set it blocks until the job reaches a terminal status.
func (t *Transformer) Transform(ctx context.Context, req TransformRequest) (*TransformResponse, error) {
	if t.ModelName == "" {
		return nil, gosagemaker.NewMissingFieldError("ModelName")
	}

	jobName := req.JobName
	if jobName == "" {
		base := t.BaseJobName
		if base == "" {
			base = t.ModelName
		}
		jobName = gosagemaker.JobName(base, gosagemaker.MaxTrainingJobNameLen)
	}

	outputPath := t.OutputPath
	if outputPath == "" {
		if t.store == nil {
			return nil, gosagemaker.NewMissingFieldError("OutputPath")
		}
		bucket, err := t.store.DefaultBucket(ctx)
		if err != nil {
			return nil, err
		}
		outputPath = gos3.JoinS3URI(bucket, jobName)
	}

	resp, err := t.transform.CreateTransformJob(ctx, gosagemaker.CreateTransformJobRequest{
		JobName:   jobName,
		ModelName: t.ModelName,

		InputS3URI:      req.DataS3URI,
		S3DataType:      req.S3DataType,
		ContentType:     req.ContentType,
		CompressionType: req.CompressionType,
		SplitType:       req.SplitType,

		OutputPath:     outputPath,
		Accept:         t.Accept,
		AssembleWith:   t.AssembleWith,
		OutputKmsKeyID: t.OutputKmsKeyID,

		InstanceType:   t.InstanceType,
		InstanceCount:  t.InstanceCount,
		VolumeKmsKeyID: t.VolumeKmsKeyID,

		Strategy:                t.Strategy,
		MaxConcurrentTransforms: t.MaxConcurrentTransforms,
		MaxPayloadMB:            t.MaxPayloadMB,
		Environment:             t.Environment,

		InputFilter:  req.InputFilter,
		OutputFilter: req.OutputFilter,
		JoinSource:   req.JoinSource,

		Tags: t.Tags,
	})
	if err != nil {
		return nil, err
	}
	t.latestJobName = jobName

	if req.Wait {
		if _, err := t.transform.WaitForTransformJob(ctx, jobName, t.Poll); err != nil {
			return nil, err
		}
	}

	return &TransformResponse{
		JobName:    jobName,
		JobARN:     resp.JobARN,
		OutputPath: outputPath,
	}, nil
}

// Wait blocks until the most recent transform job reaches a terminal
// status.
func (t *Transformer) Wait(ctx context.Context) (*gosagemaker.DescribeTransformJobResponse, error) {
	if t.latestJobName == "" {
		return nil, gosagemaker.NewInvalidRequestError("no transform job has been started")
	}
	return t.transform.WaitForTransformJob(ctx, t.latestJobName, t.Poll)
}

// Stop stops the most recent transform job.
func (t *Transformer) Stop(ctx context.Context) error {
	if t.latestJobName == "" {
		return gosagemaker.NewInvalidRequestError("no transform job has been started")
	}
	return t.transform.StopTransformJob(ctx, t.latestJobName)
}

// LatestJobName returns the name of the most recently started job.
func (t *Transformer) LatestJobName() string {
	return t.latestJobName
}
