package goaws

import (
	"errors"

	"github.com/aws/smithy-go"
)

// AwsError is a generic interface for implementing
// error handling for each service.
type AwsError interface {
	Error() string
	Retryable() bool
	ClientError() bool
}

type GenericError struct {
	msg       string
	retryable bool
	clientErr bool
}

func (e *GenericError) Error() string {
	return e.msg
}

func (e *GenericError) Retryable() bool {
	return e.retryable
}

func (e *GenericError) ClientError() bool {
	return e.clientErr
}

func NewGenericError(err error, retryable bool, clientErr bool) *GenericError {
	if err == nil {
		return nil
	}
	return &GenericError{
		msg:       err.Error(),
		retryable: retryable,
		clientErr: clientErr,
	}
}

type InternalError struct {
	msg string
}

func (e *InternalError) Error() string {
	return e.msg
}

func (e *InternalError) Retryable() bool {
	return false
}

func (e *InternalError) ClientError() bool {
	return false
}

func NewInternalError(err error) *InternalError {
	if err == nil {
		return nil
	}
	return &InternalError{
		msg: err.Error(),
	}
}

type ClientErr struct {
	msg string
}

func (e *ClientErr) Error() string {
	return e.msg
}

func (e *ClientErr) Retryable() bool {
	return false
}

func (e *ClientErr) ClientError() bool {
	return true
}

func NewClientError(err error) *ClientErr {
	if err == nil {
		return nil
	}
	return &ClientErr{
		msg: err.Error(),
	}
}

type RetryableInternalError struct {
	msg string
}

func (e *RetryableInternalError) Error() string {
	return e.msg
}

func (e *RetryableInternalError) Retryable() bool {
	return true
}

func (e *RetryableInternalError) ClientError() bool {
	return false
}

func NewRetryableInternalError(err error) *RetryableInternalError {
	if err == nil {
		return nil
	}
	return &RetryableInternalError{
		msg: err.Error(),
	}
}

type RetryableClientError struct {
	msg string
}

func (e *RetryableClientError) Error() string {
	return e.msg
}

func (e *RetryableClientError) Retryable() bool {
	return true
}

func (e *RetryableClientError) ClientError() bool {
	return true
}

func NewRetryableClientError(err error) *RetryableClientError {
	if err == nil {
		return nil
	}
	return &RetryableClientError{
		msg: err.Error(),
	}
}

// retryableCodes are service error codes that are safe to retry
// regardless of which SageMaker-family API returned them.
var retryableCodes = map[string]bool{
	"ThrottlingException":           true,
	"TooManyRequestsException":      true,
	"RequestLimitExceeded":          true,
	"InternalFailure":               true,
	"ServiceUnavailable":            true,
	"InternalDependencyException":   true,
	"ModelNotReadyException":        true,
	"ProvisionedThroughputExceeded": true,
}

// clientCodes are service error codes caused by the request itself.
var clientCodes = map[string]bool{
	"ValidationException":       true,
	"ResourceNotFound":          true,
	"ResourceNotFoundException": true,
	"ResourceInUse":             true,
	"ResourceLimitExceeded":     true,
	"ConflictException":         true,
	"AccessDeniedException":     true,
	"ModelError":                true,
	"SerializationException":    true,
	"ExpiredTokenException":     true,
	"InvalidSignatureException": true,
}

// Classify maps an AWS service error to the generic AwsError taxonomy
// using the smithy error code. Unrecognized errors are treated as
// non-retryable internal errors.
func Classify(err error) AwsError {
	if err == nil {
		return nil
	}

	var ae smithy.APIError
	if !errors.As(err, &ae) {
		return NewInternalError(err)
	}

	code := ae.ErrorCode()
	retryable := retryableCodes[code]
	client := clientCodes[code]

	switch {
	case retryable && client:
		return NewRetryableClientError(err)
	case retryable:
		return NewRetryableInternalError(err)
	case client:
		return NewClientError(err)
	default:
		return NewInternalError(err)
	}
}
