package gos3

import (
	"fmt"

	"github.com/ggarcia209/go-sagemaker/goaws"
)

type ObjectNotFoundError struct {
	*goaws.ClientErr
}

func NewObjectNotFoundError(uri string) error {
	return &ObjectNotFoundError{
		goaws.NewClientError(fmt.Errorf("object not found: %s", uri)),
	}
}

type InvalidS3URIError struct {
	*goaws.ClientErr
}

func NewInvalidS3URIError(uri string) error {
	return &InvalidS3URIError{
		goaws.NewClientError(fmt.Errorf("invalid s3 uri: %s", uri)),
	}
}
