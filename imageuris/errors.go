package imageuris

import (
	"fmt"
	"strings"

	"github.com/ggarcia209/go-sagemaker/goaws"
)

type UnsupportedFrameworkError struct {
	*goaws.ClientErr
}

func NewUnsupportedFrameworkError(framework string, supported []string) error {
	return &UnsupportedFrameworkError{
		goaws.NewClientError(fmt.Errorf(
			"unsupported framework: %s (supported: %s)",
			framework, strings.Join(supported, ", "),
		)),
	}
}

type UnsupportedVersionError struct {
	*goaws.ClientErr
}

func NewUnsupportedVersionError(framework, version string, supported []string) error {
	return &UnsupportedVersionError{
		goaws.NewClientError(fmt.Errorf(
			"unsupported %s version: %s (supported: %s)",
			framework, version, strings.Join(supported, ", "),
		)),
	}
}

type UnsupportedRegionError struct {
	*goaws.ClientErr
}

func NewUnsupportedRegionError(framework, version, region string) error {
	return &UnsupportedRegionError{
		goaws.NewClientError(fmt.Errorf(
			"no registry for %s %s in region %s", framework, version, region,
		)),
	}
}

type UnsupportedProcessorError struct {
	*goaws.ClientErr
}

func NewUnsupportedProcessorError(framework, processor string) error {
	return &UnsupportedProcessorError{
		goaws.NewClientError(fmt.Errorf(
			"unsupported processor for %s: %s", framework, processor,
		)),
	}
}

type UnsupportedPyVersionError struct {
	*goaws.ClientErr
}

func NewUnsupportedPyVersionError(framework, pyVersion string, supported []string) error {
	return &UnsupportedPyVersionError{
		goaws.NewClientError(fmt.Errorf(
			"unsupported py version for %s: %s (supported: %s)",
			framework, pyVersion, strings.Join(supported, ", "),
		)),
	}
}

type UnsupportedAcceleratorError struct {
	*goaws.ClientErr
}

func NewUnsupportedAcceleratorError(framework, accelerator string) error {
	return &UnsupportedAcceleratorError{
		goaws.NewClientError(fmt.Errorf(
			"unsupported accelerator for %s: %s", framework, accelerator,
		)),
	}
}

type InvalidInstanceTypeError struct {
	*goaws.ClientErr
}

func NewInvalidInstanceTypeError(instanceType string) error {
	return &InvalidInstanceTypeError{
		goaws.NewClientError(fmt.Errorf(
			"invalid instance type: %s", instanceType,
		)),
	}
}

type InvalidScopeError struct {
	*goaws.ClientErr
}

func NewInvalidScopeError(scope string) error {
	return &InvalidScopeError{
		goaws.NewClientError(fmt.Errorf(
			"invalid scope: %s (want training or inference)", scope,
		)),
	}
}

type MissingFieldError struct {
	*goaws.ClientErr
}

func NewMissingFieldError(field string) error {
	return &MissingFieldError{
		goaws.NewClientError(fmt.Errorf("missing required field: %s", field)),
	}
}
