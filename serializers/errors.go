package serializers

import (
	"fmt"

	"github.com/ggarcia209/go-sagemaker/goaws"
)

type UnsupportedPayloadError struct {
	*goaws.ClientErr
}

func NewUnsupportedPayloadError(contentType, goType string) error {
	return &UnsupportedPayloadError{
		goaws.NewClientError(fmt.Errorf(
			"unsupported payload type for %s: %s", contentType, goType,
		)),
	}
}

type SerializeError struct {
	*goaws.ClientErr
}

func NewSerializeError(err error) error {
	return &SerializeError{
		goaws.NewClientError(fmt.Errorf("serialize: %w", err)),
	}
}

type DeserializeError struct {
	*goaws.ClientErr
}

func NewDeserializeError(err error) error {
	return &DeserializeError{
		goaws.NewClientError(fmt.Errorf("deserialize: %w", err)),
	}
}

type MalformedRecordError struct {
	*goaws.ClientErr
}

func NewMalformedRecordError(reason string) error {
	return &MalformedRecordError{
		goaws.NewClientError(fmt.Errorf("malformed record: %s", reason)),
	}
}
