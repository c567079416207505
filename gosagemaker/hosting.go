package gosagemaker

import (
	"context"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker/types"
	"github.com/ggarcia209/go-sagemaker/goaws"
)

//go:generate mockgen -destination=../mocks/gosagemakermock/hosting.go -package=gosagemakermock . HostingLogic
type HostingLogic interface {
	CreateModel(ctx context.Context, req CreateModelRequest) (*CreateModelResponse, error)
	DeleteModel(ctx context.Context, modelName string) error
	CreateEndpointConfig(ctx context.Context, req CreateEndpointConfigRequest) (*CreateEndpointConfigResponse, error)
	DeleteEndpointConfig(ctx context.Context, configName string) error
	CreateEndpoint(ctx context.Context, req CreateEndpointRequest) (*CreateEndpointResponse, error)
	DescribeEndpoint(ctx context.Context, endpointName string) (*DescribeEndpointResponse, error)
	DeleteEndpoint(ctx context.Context, endpointName string) error
	WaitForEndpoint(ctx context.Context, endpointName string, cfg *PollConfig) (*DescribeEndpointResponse, error)
}

// HostingClientAPI defines the interface for the AWS SageMaker client methods used for models and endpoints.
//
//go:generate mockgen -destination=./hosting_client_test.go -package=gosagemaker . HostingClientAPI
type HostingClientAPI interface {
	CreateModel(ctx context.Context, params *sagemaker.CreateModelInput, optFns ...func(*sagemaker.Options)) (*sagemaker.CreateModelOutput, error)
	DeleteModel(ctx context.Context, params *sagemaker.DeleteModelInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DeleteModelOutput, error)
	CreateEndpointConfig(ctx context.Context, params *sagemaker.CreateEndpointConfigInput, optFns ...func(*sagemaker.Options)) (*sagemaker.CreateEndpointConfigOutput, error)
	DeleteEndpointConfig(ctx context.Context, params *sagemaker.DeleteEndpointConfigInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DeleteEndpointConfigOutput, error)
	CreateEndpoint(ctx context.Context, params *sagemaker.CreateEndpointInput, optFns ...func(*sagemaker.Options)) (*sagemaker.CreateEndpointOutput, error)
	DescribeEndpoint(ctx context.Context, params *sagemaker.DescribeEndpointInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DescribeEndpointOutput, error)
	DeleteEndpoint(ctx context.Context, params *sagemaker.DeleteEndpointInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DeleteEndpointOutput, error)
}

type Hosting struct {
	svc HostingClientAPI
}

func NewHosting(config goaws.AwsConfig) *Hosting {
	return &Hosting{svc: sagemaker.NewFromConfig(config.Config)}
}

// CreateModel registers a model from one or more containers. A single
// container goes in PrimaryContainer; an inference pipeline lists its
// containers in order in Containers.
func (s *Hosting) CreateModel(ctx context.Context, req CreateModelRequest) (*CreateModelResponse, error) {
	switch {
	case req.ModelName == "":
		return nil, NewMissingFieldError("ModelName")
	case req.ExecutionRoleARN == "":
		return nil, NewMissingFieldError("ExecutionRoleARN")
	case req.PrimaryContainer == nil && len(req.Containers) == 0:
		return nil, NewInvalidRequestError("one of PrimaryContainer or Containers is required")
	case req.PrimaryContainer != nil && len(req.Containers) > 0:
		return nil, NewInvalidRequestError("PrimaryContainer and Containers are mutually exclusive")
	}

	input := &sagemaker.CreateModelInput{
		ModelName:              aws.String(req.ModelName),
		ExecutionRoleArn:       aws.String(req.ExecutionRoleARN),
		VpcConfig:              vpcToSDK(req.Vpc),
		EnableNetworkIsolation: aws.Bool(req.EnableNetworkIsolation),
		Tags:                   tagsToSDK(req.Tags),
	}
	if req.PrimaryContainer != nil {
		c := containerToSDK(*req.PrimaryContainer)
		input.PrimaryContainer = &c
	}
	for _, c := range req.Containers {
		input.Containers = append(input.Containers, containerToSDK(c))
	}

	out, err := s.svc.CreateModel(ctx, input)
	if err != nil {
		return nil, classify("s.svc.CreateModel", err)
	}
	return &CreateModelResponse{ModelARN: aws.ToString(out.ModelArn)}, nil
}

func (s *Hosting) DeleteModel(ctx context.Context, modelName string) error {
	if modelName == "" {
		return NewMissingFieldError("ModelName")
	}

	if _, err := s.svc.DeleteModel(ctx, &sagemaker.DeleteModelInput{
		ModelName: aws.String(modelName),
	}); err != nil {
		return classify("s.svc.DeleteModel", err)
	}
	return nil
}

func (s *Hosting) CreateEndpointConfig(ctx context.Context, req CreateEndpointConfigRequest) (*CreateEndpointConfigResponse, error) {
	switch {
	case req.ConfigName == "":
		return nil, NewMissingFieldError("ConfigName")
	case len(req.Variants) == 0:
		return nil, NewMissingFieldError("Variants")
	}

	input := &sagemaker.CreateEndpointConfigInput{
		EndpointConfigName: aws.String(req.ConfigName),
		Tags:               tagsToSDK(req.Tags),
	}
	if req.KmsKeyID != "" {
		input.KmsKeyId = aws.String(req.KmsKeyID)
	}
	for _, v := range req.Variants {
		pv, err := variantToSDK(v)
		if err != nil {
			return nil, err
		}
		input.ProductionVariants = append(input.ProductionVariants, pv)
	}

	out, err := s.svc.CreateEndpointConfig(ctx, input)
	if err != nil {
		return nil, classify("s.svc.CreateEndpointConfig", err)
	}
	return &CreateEndpointConfigResponse{ConfigARN: aws.ToString(out.EndpointConfigArn)}, nil
}

func (s *Hosting) DeleteEndpointConfig(ctx context.Context, configName string) error {
	if configName == "" {
		return NewMissingFieldError("ConfigName")
	}

	if _, err := s.svc.DeleteEndpointConfig(ctx, &sagemaker.DeleteEndpointConfigInput{
		EndpointConfigName: aws.String(configName),
	}); err != nil {
		return classify("s.svc.DeleteEndpointConfig", err)
	}
	return nil
}

func (s *Hosting) CreateEndpoint(ctx context.Context, req CreateEndpointRequest) (*CreateEndpointResponse, error) {
	switch {
	case req.EndpointName == "":
		return nil, NewMissingFieldError("EndpointName")
	case req.ConfigName == "":
		return nil, NewMissingFieldError("ConfigName")
	}

	out, err := s.svc.CreateEndpoint(ctx, &sagemaker.CreateEndpointInput{
		EndpointName:       aws.String(req.EndpointName),
		EndpointConfigName: aws.String(req.ConfigName),
		Tags:               tagsToSDK(req.Tags),
	})
	if err != nil {
		return nil, classify("s.svc.CreateEndpoint", err)
	}
	return &CreateEndpointResponse{EndpointARN: aws.ToString(out.EndpointArn)}, nil
}

func (s *Hosting) DescribeEndpoint(ctx context.Context, endpointName string) (*DescribeEndpointResponse, error) {
	if endpointName == "" {
		return nil, NewMissingFieldError("EndpointName")
	}

	out, err := s.svc.DescribeEndpoint(ctx, &sagemaker.DescribeEndpointInput{
		EndpointName: aws.String(endpointName),
	})
	if err != nil {
		return nil, classify("s.svc.DescribeEndpoint", err)
	}

	return &DescribeEndpointResponse{
		EndpointName:     aws.ToString(out.EndpointName),
		EndpointARN:      aws.ToString(out.EndpointArn),
		ConfigName:       aws.ToString(out.EndpointConfigName),
		Status:           string(out.EndpointStatus),
		FailureReason:    aws.ToString(out.FailureReason),
		CreationTime:     aws.ToTime(out.CreationTime),
		LastModifiedTime: aws.ToTime(out.LastModifiedTime),
	}, nil
}

func (s *Hosting) DeleteEndpoint(ctx context.Context, endpointName string) error {
	if endpointName == "" {
		return NewMissingFieldError("EndpointName")
	}

	if _, err := s.svc.DeleteEndpoint(ctx, &sagemaker.DeleteEndpointInput{
		EndpointName: aws.String(endpointName),
	}); err != nil {
		return classify("s.svc.DeleteEndpoint", err)
	}
	return nil
}

// WaitForEndpoint polls the endpoint until it is InService. A Failed
// status returns an EndpointFailedError with the failure reason.
func (s *Hosting) WaitForEndpoint(ctx context.Context, endpointName string, cfg *PollConfig) (*DescribeEndpointResponse, error) {
	logger := log.WithFields(log.Fields{"endpoint": endpointName})

	var last *DescribeEndpointResponse
	err := pollUntil(ctx, cfg, logger, "endpoint "+endpointName, func(ctx context.Context) (string, bool, error) {
		desc, err := s.DescribeEndpoint(ctx, endpointName)
		if err != nil {
			return "", false, err
		}
		last = desc

		switch desc.Status {
		case EndpointStatusInService:
			return desc.Status, true, nil
		case EndpointStatusFailed:
			return desc.Status, false, NewEndpointFailedError(endpointName, desc.FailureReason)
		}
		return desc.Status, false, nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("endpoint in service")
	return last, nil
}

func variantToSDK(v ProductionVariant) (types.ProductionVariant, error) {
	switch {
	case v.VariantName == "":
		return types.ProductionVariant{}, NewMissingFieldError("Variants.VariantName")
	case v.ModelName == "":
		return types.ProductionVariant{}, NewMissingFieldError("Variants.ModelName")
	}

	pv := types.ProductionVariant{
		VariantName: aws.String(v.VariantName),
		ModelName:   aws.String(v.ModelName),
	}

	if v.ServerlessMemorySizeMB > 0 {
		pv.ServerlessConfig = &types.ProductionVariantServerlessConfig{
			MemorySizeInMB: aws.Int32(v.ServerlessMemorySizeMB),
			MaxConcurrency: aws.Int32(v.ServerlessMaxConcurrency),
		}
		return pv, nil
	}

	if v.InstanceType == "" {
		return types.ProductionVariant{}, NewMissingFieldError("Variants.InstanceType")
	}
	pv.InstanceType = types.ProductionVariantInstanceType(v.InstanceType)

	count := v.InitialInstanceCount
	if count <= 0 {
		count = 1
	}
	pv.InitialInstanceCount = aws.Int32(count)

	weight := v.InitialWeight
	if weight <= 0 {
		weight = 1.0
	}
	pv.InitialVariantWeight = aws.Float32(weight)

	if v.AcceleratorType != "" {
		pv.AcceleratorType = types.ProductionVariantAcceleratorType(v.AcceleratorType)
	}
	return pv, nil
}
