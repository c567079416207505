// gosmruntime wraps the SageMaker runtime data plane used to invoke
// deployed endpoints.
package gosmruntime

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemakerruntime"
	"github.com/aws/aws-sdk-go-v2/service/sagemakerruntime/types"
	"github.com/ggarcia209/go-sagemaker/goaws"
)

//go:generate mockgen -destination=../mocks/gosmruntimemock/runtime.go -package=gosmruntimemock . RuntimeLogic
type RuntimeLogic interface {
	InvokeEndpoint(ctx context.Context, req InvokeEndpointRequest) (*InvokeEndpointResponse, error)
}

// RuntimeClientAPI defines the interface for the AWS SageMaker runtime client methods used by this package.
//
//go:generate mockgen -destination=./runtime_client_test.go -package=gosmruntime . RuntimeClientAPI
type RuntimeClientAPI interface {
	InvokeEndpoint(ctx context.Context, params *sagemakerruntime.InvokeEndpointInput, optFns ...func(*sagemakerruntime.Options)) (*sagemakerruntime.InvokeEndpointOutput, error)
}

type Runtime struct {
	svc RuntimeClientAPI
}

func NewRuntime(config goaws.AwsConfig) *Runtime {
	return &Runtime{svc: sagemakerruntime.NewFromConfig(config.Config)}
}

// InvokeEndpoint sends a serialized payload to an endpoint and
// returns the raw response body. TargetModel routes multi-model
// endpoints and TargetVariant pins a production variant.
func (s *Runtime) InvokeEndpoint(ctx context.Context, req InvokeEndpointRequest) (*InvokeEndpointResponse, error) {
	switch {
	case req.EndpointName == "":
		return nil, goaws.NewClientError(fmt.Errorf("endpoint name is required"))
	case len(req.Body) == 0:
		return nil, goaws.NewClientError(fmt.Errorf("request body is required"))
	}

	input := &sagemakerruntime.InvokeEndpointInput{
		EndpointName: aws.String(req.EndpointName),
		Body:         req.Body,
	}
	if req.ContentType != "" {
		input.ContentType = aws.String(req.ContentType)
	}
	if req.Accept != "" {
		input.Accept = aws.String(req.Accept)
	}
	if req.TargetModel != "" {
		input.TargetModel = aws.String(req.TargetModel)
	}
	if req.TargetVariant != "" {
		input.TargetVariant = aws.String(req.TargetVariant)
	}
	if req.InferenceID != "" {
		input.InferenceId = aws.String(req.InferenceID)
	}
	if req.CustomAttributes != "" {
		input.CustomAttributes = aws.String(req.CustomAttributes)
	}

	out, err := s.svc.InvokeEndpoint(ctx, input)
	if err != nil {
		return nil, classifyInvokeError(req.EndpointName, err)
	}

	return &InvokeEndpointResponse{
		Body:             out.Body,
		ContentType:      aws.ToString(out.ContentType),
		InvokedVariant:   aws.ToString(out.InvokedProductionVariant),
		CustomAttributes: aws.ToString(out.CustomAttributes),
	}, nil
}

func classifyInvokeError(endpoint string, err error) error {
	wrapped := fmt.Errorf("s.svc.InvokeEndpoint: %w", err)

	var modelErr *types.ModelError
	if errors.As(err, &modelErr) {
		return NewModelInvocationError(endpoint, modelErr)
	}
	var notReady *types.ModelNotReadyException
	if errors.As(err, &notReady) {
		return NewModelNotReadyError(endpoint, wrapped)
	}

	return goaws.Classify(wrapped)
}
