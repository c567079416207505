package gosagemaker

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sagemaker/types"
	"github.com/ggarcia209/go-sagemaker/goaws"
)

// JobFailedError is returned by the wait operations when a job
// reaches the Failed status. Reason carries the service's
// FailureReason verbatim.
type JobFailedError struct {
	*goaws.GenericError
	Name   string
	Reason string
}

func NewJobFailedError(kind, name, reason string) error {
	if reason == "" {
		reason = "no failure reason reported"
	}
	return &JobFailedError{
		GenericError: goaws.NewGenericError(fmt.Errorf("%s %s failed: %s", kind, name, reason), false, false),
		Name:         name,
		Reason:       reason,
	}
}

// EndpointFailedError is returned when an endpoint enters the Failed
// status during a wait.
type EndpointFailedError struct {
	*goaws.GenericError
	Name   string
	Reason string
}

func NewEndpointFailedError(name, reason string) error {
	if reason == "" {
		reason = "no failure reason reported"
	}
	return &EndpointFailedError{
		GenericError: goaws.NewGenericError(fmt.Errorf("endpoint %s failed: %s", name, reason), false, false),
		Name:         name,
		Reason:       reason,
	}
}

type WaitTimeoutError struct {
	*goaws.GenericError
}

func NewWaitTimeoutError(resource string) error {
	return &WaitTimeoutError{
		goaws.NewGenericError(fmt.Errorf("timed out waiting for %s", resource), true, false),
	}
}

type ResourceNotFoundError struct {
	*goaws.ClientErr
}

func NewResourceNotFoundError(err error) error {
	return &ResourceNotFoundError{goaws.NewClientError(err)}
}

type ResourceInUseError struct {
	*goaws.ClientErr
}

func NewResourceInUseError(err error) error {
	return &ResourceInUseError{goaws.NewClientError(err)}
}

type ResourceLimitExceededError struct {
	*goaws.ClientErr
}

func NewResourceLimitExceededError(err error) error {
	return &ResourceLimitExceededError{goaws.NewClientError(err)}
}

type MissingFieldError struct {
	*goaws.ClientErr
}

func NewMissingFieldError(field string) error {
	return &MissingFieldError{
		goaws.NewClientError(fmt.Errorf("missing required field: %s", field)),
	}
}

type InvalidRequestError struct {
	*goaws.ClientErr
}

func NewInvalidRequestError(msg string) error {
	return &InvalidRequestError{
		goaws.NewClientError(errors.New(msg)),
	}
}

// classify wraps a service call error with the operation name and maps
// the SageMaker modeled errors onto the package error types.
func classify(op string, err error) error {
	wrapped := fmt.Errorf("%s: %w", op, err)

	var notFound *types.ResourceNotFound
	var inUse *types.ResourceInUse
	var limit *types.ResourceLimitExceeded
	switch {
	case errors.As(err, &notFound):
		return NewResourceNotFoundError(wrapped)
	case errors.As(err, &inUse):
		return NewResourceInUseError(wrapped)
	case errors.As(err, &limit):
		return NewResourceLimitExceededError(wrapped)
	}

	return goaws.Classify(wrapped)
}
