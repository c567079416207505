package gosmruntime

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemakerruntime/types"
	"github.com/ggarcia209/go-sagemaker/goaws"
)

// ModelInvocationError is returned when the model container itself
// fails to produce an inference. StatusCode and Message carry the
// container's original response.
type ModelInvocationError struct {
	*goaws.ClientErr
	Endpoint   string
	StatusCode int32
	Message    string
}

func NewModelInvocationError(endpoint string, modelErr *types.ModelError) error {
	return &ModelInvocationError{
		ClientErr: goaws.NewClientError(fmt.Errorf(
			"model error from endpoint %s: %s", endpoint, aws.ToString(modelErr.OriginalMessage),
		)),
		Endpoint:   endpoint,
		StatusCode: aws.ToInt32(modelErr.OriginalStatusCode),
		Message:    aws.ToString(modelErr.OriginalMessage),
	}
}

// ModelNotReadyError is returned while a model on a multi-model or
// serverless endpoint is still loading. Retryable.
type ModelNotReadyError struct {
	*goaws.RetryableClientError
	Endpoint string
}

func NewModelNotReadyError(endpoint string, err error) error {
	return &ModelNotReadyError{
		RetryableClientError: goaws.NewRetryableClientError(err),
		Endpoint:             endpoint,
	}
}
