package hyperparams

import (
	"fmt"
	"strings"

	"github.com/ggarcia209/go-sagemaker/goaws"
)

type ValidationError struct {
	*goaws.ClientErr
}

func NewValidationError(name, value, reason string) error {
	return &ValidationError{
		goaws.NewClientError(fmt.Errorf(
			"invalid hyperparameter %s=%s: expected %s", name, value, reason,
		)),
	}
}

type MissingRequiredError struct {
	*goaws.ClientErr
}

func NewMissingRequiredError(name string) error {
	return &MissingRequiredError{
		goaws.NewClientError(fmt.Errorf(
			"missing required hyperparameter: %s", name,
		)),
	}
}

type UnknownHyperparameterError struct {
	*goaws.ClientErr
}

func NewUnknownHyperparameterError(name string, declared []string) error {
	return &UnknownHyperparameterError{
		goaws.NewClientError(fmt.Errorf(
			"unknown hyperparameter: %s (declared: %s)",
			name, strings.Join(declared, ", "),
		)),
	}
}
