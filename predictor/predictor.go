// Package predictor provides real-time inference against a deployed
// endpoint. A Predictor serializes payloads, invokes the endpoint,
// and deserializes responses.
package predictor

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ggarcia209/go-sagemaker/goaws"
	"github.com/ggarcia209/go-sagemaker/gosagemaker"
	"github.com/ggarcia209/go-sagemaker/gosmruntime"
	"github.com/ggarcia209/go-sagemaker/serializers"
)

// Options configures how payloads and responses are encoded. Nil
// codec fields fall back to raw byte passthrough. ModelName enables
// DeleteModel cleanup and is filled in by the deploying package.
type Options struct {
	Serializer   serializers.Serializer
	Deserializer serializers.Deserializer
	ModelName    string
}

type Predictor struct {
	Options
	endpointName string

	runtime gosmruntime.RuntimeLogic
	hosting gosagemaker.HostingLogic
}

func New(config goaws.AwsConfig, endpointName string, opts Options) *Predictor {
	return Bind(endpointName, gosagemaker.NewHosting(config), gosmruntime.NewRuntime(config), opts)
}

// Bind builds a Predictor over existing service logic. Used by the
// packages that deploy endpoints and hand back a predictor.
func Bind(endpointName string, hosting gosagemaker.HostingLogic, runtime gosmruntime.RuntimeLogic, opts Options) *Predictor {
	if opts.Serializer == nil {
		opts.Serializer = serializers.Bytes{}
	}
	if opts.Deserializer == nil {
		opts.Deserializer = serializers.BytesDeserializer{}
	}
	return &Predictor{
		Options:      opts,
		endpointName: endpointName,
		runtime:      runtime,
		hosting:      hosting,
	}
}

func (p *Predictor) EndpointName() string {
	return p.endpointName
}

type PredictRequest struct {
	Payload       any    `json:"payload"`
	TargetModel   string `json:"target_model,omitempty"`
	TargetVariant string `json:"target_variant,omitempty"`
	InferenceID   string `json:"inference_id,omitempty"`
}

// Predict serializes the payload, invokes the endpoint, and returns
// the deserialized result.
func (p *Predictor) Predict(ctx context.Context, req PredictRequest) (any, error) {
	body, err := p.Serializer.Serialize(req.Payload)
	if err != nil {
		return nil, err
	}

	resp, err := p.runtime.InvokeEndpoint(ctx, gosmruntime.InvokeEndpointRequest{
		EndpointName:  p.endpointName,
		Body:          body,
		ContentType:   p.Serializer.ContentType(),
		Accept:        p.Deserializer.Accept(),
		TargetModel:   req.TargetModel,
		TargetVariant: req.TargetVariant,
		InferenceID:   req.InferenceID,
	})
	if err != nil {
		return nil, err
	}

	return p.Deserializer.Deserialize(bytes.NewReader(resp.Body))
}

// DescribeEndpoint returns the current state of the endpoint behind
// this predictor.
func (p *Predictor) DescribeEndpoint(ctx context.Context) (*gosagemaker.DescribeEndpointResponse, error) {
	return p.hosting.DescribeEndpoint(ctx, p.endpointName)
}

// DeleteEndpoint tears down the endpoint and its endpoint
// configuration.
func (p *Predictor) DeleteEndpoint(ctx context.Context) error {
	desc, err := p.hosting.DescribeEndpoint(ctx, p.endpointName)
	if err != nil {
		return err
	}

	if err := p.hosting.DeleteEndpoint(ctx, p.endpointName); err != nil {
		return err
	}
	if desc.ConfigName == "" {
		return goaws.NewInternalError(fmt.Errorf("endpoint %s reported no endpoint config", p.endpointName))
	}
	return p.hosting.DeleteEndpointConfig(ctx, desc.ConfigName)
}

// DeleteModel removes the model served by this endpoint.
func (p *Predictor) DeleteModel(ctx context.Context) error {
	if p.ModelName == "" {
		return gosagemaker.NewMissingFieldError("ModelName")
	}
	return p.hosting.DeleteModel(ctx, p.ModelName)
}
