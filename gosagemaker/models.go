package gosagemaker

import "time"

// Job and endpoint status values, mirrored as strings so callers
// compare against stable constants instead of SDK enum types.
const (
	StatusInProgress = "InProgress"
	StatusCompleted  = "Completed"
	StatusFailed     = "Failed"
	StatusStopping   = "Stopping"
	StatusStopped    = "Stopped"

	EndpointStatusCreating     = "Creating"
	EndpointStatusUpdating     = "Updating"
	EndpointStatusInService    = "InService"
	EndpointStatusFailed       = "Failed"
	EndpointStatusOutOfService = "OutOfService"
	EndpointStatusDeleting     = "Deleting"
)

// Input mode, data distribution, and strategy defaults.
const (
	InputModeFile = "File"
	InputModePipe = "Pipe"

	S3DataTypePrefix            = "S3Prefix"
	S3DataTypeManifest          = "ManifestFile"
	S3DataTypeAugmentedManifest = "AugmentedManifestFile"

	DistributionFullyReplicated = "FullyReplicated"
	DistributionShardedByS3Key  = "ShardedByS3Key"
)

type Tag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

/* Training */

// Channel describes one training input channel.
type Channel struct {
	ChannelName     string   `json:"channel_name"`
	S3URI           string   `json:"s3_uri"`
	S3DataType      string   `json:"s3_data_type,omitempty"`      // default S3Prefix
	Distribution    string   `json:"distribution,omitempty"`      // default FullyReplicated
	ContentType     string   `json:"content_type,omitempty"`
	CompressionType string   `json:"compression_type,omitempty"`  // None|Gzip
	RecordWrapper   string   `json:"record_wrapper,omitempty"`    // None|RecordIO
	InputMode       string   `json:"input_mode,omitempty"`        // overrides job input mode
	AttributeNames  []string `json:"attribute_names,omitempty"`
}

type MetricDefinition struct {
	Name  string `json:"name"`
	Regex string `json:"regex"`
}

type ResourceConfig struct {
	InstanceType           string `json:"instance_type"`
	InstanceCount          int32  `json:"instance_count"`
	VolumeSizeGB           int32  `json:"volume_size_gb"`
	VolumeKmsKeyID         string `json:"volume_kms_key_id,omitempty"`
	KeepAlivePeriodSeconds int32  `json:"keep_alive_period_seconds,omitempty"`
}

type StoppingCondition struct {
	MaxRuntimeSeconds int32 `json:"max_runtime_seconds,omitempty"`
	MaxWaitSeconds    int32 `json:"max_wait_seconds,omitempty"`
}

type VpcConfig struct {
	Subnets          []string `json:"subnets,omitempty"`
	SecurityGroupIDs []string `json:"security_group_ids,omitempty"`
}

type CreateTrainingJobRequest struct {
	JobName           string             `json:"job_name"`
	RoleARN           string             `json:"role_arn"`
	ImageURI          string             `json:"image_uri,omitempty"`
	AlgorithmName     string             `json:"algorithm_name,omitempty"` // marketplace algorithm
	InputMode         string             `json:"input_mode,omitempty"`     // default File
	MetricDefinitions []MetricDefinition `json:"metric_definitions,omitempty"`
	Channels          []Channel          `json:"channels,omitempty"`
	OutputPath        string             `json:"output_path"`
	OutputKmsKeyID    string             `json:"output_kms_key_id,omitempty"`
	Resources         ResourceConfig     `json:"resources"`
	Stopping          StoppingCondition  `json:"stopping"`
	Hyperparameters   map[string]string  `json:"hyperparameters,omitempty"`
	Environment       map[string]string  `json:"environment,omitempty"`
	Vpc               *VpcConfig         `json:"vpc,omitempty"`
	Tags              []Tag              `json:"tags,omitempty"`

	EnableNetworkIsolation         bool   `json:"enable_network_isolation,omitempty"`
	EnableInterContainerEncryption bool   `json:"enable_inter_container_encryption,omitempty"`
	EnableManagedSpot              bool   `json:"enable_managed_spot,omitempty"`
	CheckpointS3URI                string `json:"checkpoint_s3_uri,omitempty"`
	CheckpointLocalPath            string `json:"checkpoint_local_path,omitempty"`
}

type CreateTrainingJobResponse struct {
	JobARN string `json:"job_arn"`
}

type DescribeTrainingJobResponse struct {
	JobName             string            `json:"job_name"`
	JobARN              string            `json:"job_arn"`
	Status              string            `json:"status"`
	SecondaryStatus     string            `json:"secondary_status,omitempty"`
	FailureReason       string            `json:"failure_reason,omitempty"`
	ModelArtifactsS3URI string            `json:"model_artifacts_s3_uri,omitempty"`
	ImageURI            string            `json:"image_uri,omitempty"`
	AlgorithmName       string            `json:"algorithm_name,omitempty"`
	InputMode           string            `json:"input_mode,omitempty"`
	RoleARN             string            `json:"role_arn,omitempty"`
	Hyperparameters     map[string]string `json:"hyperparameters,omitempty"`
	Channels            []Channel         `json:"channels,omitempty"`
	OutputPath          string            `json:"output_path,omitempty"`
	Resources           ResourceConfig    `json:"resources"`
	Stopping            StoppingCondition `json:"stopping"`
	EnableManagedSpot   bool              `json:"enable_managed_spot,omitempty"`
	TrainingSeconds     int32             `json:"training_seconds,omitempty"`
	BillableSeconds     int32             `json:"billable_seconds,omitempty"`
	CreationTime        time.Time         `json:"creation_time,omitzero"`
	TrainingStartTime   time.Time         `json:"training_start_time,omitzero"`
	TrainingEndTime     time.Time         `json:"training_end_time,omitzero"`
}

/* Hosting */

type ContainerDef struct {
	ImageURI     string            `json:"image_uri"`
	ModelDataURL string            `json:"model_data_url,omitempty"`
	Environment  map[string]string `json:"environment,omitempty"`
	Hostname     string            `json:"hostname,omitempty"`
}

type CreateModelRequest struct {
	ModelName              string         `json:"model_name"`
	ExecutionRoleARN       string         `json:"execution_role_arn"`
	PrimaryContainer       *ContainerDef  `json:"primary_container,omitempty"`
	Containers             []ContainerDef `json:"containers,omitempty"` // inference pipeline
	Vpc                    *VpcConfig     `json:"vpc,omitempty"`
	EnableNetworkIsolation bool           `json:"enable_network_isolation,omitempty"`
	Tags                   []Tag          `json:"tags,omitempty"`
}

type CreateModelResponse struct {
	ModelARN string `json:"model_arn"`
}

type ProductionVariant struct {
	VariantName          string  `json:"variant_name"`
	ModelName            string  `json:"model_name"`
	InstanceType         string  `json:"instance_type,omitempty"`
	InitialInstanceCount int32   `json:"initial_instance_count,omitempty"`
	InitialWeight        float32 `json:"initial_weight,omitempty"`
	AcceleratorType      string  `json:"accelerator_type,omitempty"`

	// serverless endpoints; when MemorySizeMB is set the instance
	// fields above are ignored
	ServerlessMaxConcurrency int32 `json:"serverless_max_concurrency,omitempty"`
	ServerlessMemorySizeMB   int32 `json:"serverless_memory_size_mb,omitempty"`
}

type CreateEndpointConfigRequest struct {
	ConfigName string              `json:"config_name"`
	Variants   []ProductionVariant `json:"variants"`
	KmsKeyID   string              `json:"kms_key_id,omitempty"`
	Tags       []Tag               `json:"tags,omitempty"`
}

type CreateEndpointConfigResponse struct {
	ConfigARN string `json:"config_arn"`
}

type CreateEndpointRequest struct {
	EndpointName string `json:"endpoint_name"`
	ConfigName   string `json:"config_name"`
	Tags         []Tag  `json:"tags,omitempty"`
}

type CreateEndpointResponse struct {
	EndpointARN string `json:"endpoint_arn"`
}

type DescribeEndpointResponse struct {
	EndpointName     string    `json:"endpoint_name"`
	EndpointARN      string    `json:"endpoint_arn"`
	ConfigName       string    `json:"config_name"`
	Status           string    `json:"status"`
	FailureReason    string    `json:"failure_reason,omitempty"`
	CreationTime     time.Time `json:"creation_time,omitzero"`
	LastModifiedTime time.Time `json:"last_modified_time,omitzero"`
}

/* Transform */

type CreateTransformJobRequest struct {
	JobName   string `json:"job_name"`
	ModelName string `json:"model_name"`

	InputS3URI      string `json:"input_s3_uri"`
	S3DataType      string `json:"s3_data_type,omitempty"` // default S3Prefix
	ContentType     string `json:"content_type,omitempty"`
	CompressionType string `json:"compression_type,omitempty"`
	SplitType       string `json:"split_type,omitempty"` // None|Line|RecordIO|TFRecord

	OutputPath     string `json:"output_path"`
	Accept         string `json:"accept,omitempty"`
	AssembleWith   string `json:"assemble_with,omitempty"` // None|Line
	OutputKmsKeyID string `json:"output_kms_key_id,omitempty"`

	InstanceType   string `json:"instance_type"`
	InstanceCount  int32  `json:"instance_count"`
	VolumeKmsKeyID string `json:"volume_kms_key_id,omitempty"`

	Strategy                string            `json:"strategy,omitempty"` // MultiRecord|SingleRecord
	MaxConcurrentTransforms int32             `json:"max_concurrent_transforms,omitempty"`
	MaxPayloadMB            int32             `json:"max_payload_mb,omitempty"`
	Environment             map[string]string `json:"environment,omitempty"`

	// associate input records with output records
	InputFilter  string `json:"input_filter,omitempty"`
	OutputFilter string `json:"output_filter,omitempty"`
	JoinSource   string `json:"join_source,omitempty"` // Input|None

	Tags []Tag `json:"tags,omitempty"`
}

type CreateTransformJobResponse struct {
	JobARN string `json:"job_arn"`
}

type DescribeTransformJobResponse struct {
	JobName            string    `json:"job_name"`
	JobARN             string    `json:"job_arn"`
	Status             string    `json:"status"`
	FailureReason      string    `json:"failure_reason,omitempty"`
	ModelName          string    `json:"model_name,omitempty"`
	InputS3URI         string    `json:"input_s3_uri,omitempty"`
	OutputPath         string    `json:"output_path,omitempty"`
	CreationTime       time.Time `json:"creation_time,omitzero"`
	TransformStartTime time.Time `json:"transform_start_time,omitzero"`
	TransformEndTime   time.Time `json:"transform_end_time,omitzero"`
}

/* Tuning */

const (
	ObjectiveMaximize = "Maximize"
	ObjectiveMinimize = "Minimize"

	StrategyBayesian  = "Bayesian"
	StrategyRandom    = "Random"
	StrategyHyperband = "Hyperband"
	StrategyGrid      = "Grid"
)

type IntegerRange struct {
	Name    string `json:"name"`
	Min     int64  `json:"min"`
	Max     int64  `json:"max"`
	Scaling string `json:"scaling,omitempty"` // Auto|Linear|Logarithmic|ReverseLogarithmic
}

type ContinuousRange struct {
	Name    string  `json:"name"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Scaling string  `json:"scaling,omitempty"`
}

type CategoricalRange struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type ParameterRanges struct {
	Integer     []IntegerRange     `json:"integer,omitempty"`
	Continuous  []ContinuousRange  `json:"continuous,omitempty"`
	Categorical []CategoricalRange `json:"categorical,omitempty"`
}

type CreateTuningJobRequest struct {
	JobName         string          `json:"job_name"`
	Strategy        string          `json:"strategy,omitempty"` // default Bayesian
	ObjectiveType   string          `json:"objective_type"`     // Maximize|Minimize
	ObjectiveMetric string          `json:"objective_metric"`
	MaxJobs         int32           `json:"max_jobs"`
	MaxParallelJobs int32           `json:"max_parallel_jobs"`
	Ranges          ParameterRanges `json:"ranges"`
	EarlyStopping   string          `json:"early_stopping,omitempty"` // Off|Auto

	// static training definition shared by every candidate job
	Training CreateTrainingJobRequest `json:"training"`

	Tags []Tag `json:"tags,omitempty"`
}

type CreateTuningJobResponse struct {
	JobARN string `json:"job_arn"`
}

type TrainingJobCounters struct {
	Completed         int32 `json:"completed"`
	InProgress        int32 `json:"in_progress"`
	RetryableError    int32 `json:"retryable_error"`
	NonRetryableError int32 `json:"non_retryable_error"`
	Stopped           int32 `json:"stopped"`
}

type BestTrainingJob struct {
	JobName              string            `json:"job_name"`
	Status               string            `json:"status"`
	ObjectiveMetricName  string            `json:"objective_metric_name,omitempty"`
	ObjectiveMetricValue float32           `json:"objective_metric_value,omitempty"`
	TunedHyperparameters map[string]string `json:"tuned_hyperparameters,omitempty"`
}

type DescribeTuningJobResponse struct {
	JobName       string              `json:"job_name"`
	JobARN        string              `json:"job_arn"`
	Status        string              `json:"status"`
	FailureReason string              `json:"failure_reason,omitempty"`
	Counters      TrainingJobCounters `json:"counters"`
	Best          *BestTrainingJob    `json:"best,omitempty"`
}

/* AutoML */

const (
	ProblemTypeBinaryClassification     = "BinaryClassification"
	ProblemTypeMulticlassClassification = "MulticlassClassification"
	ProblemTypeRegression               = "Regression"
)

type CreateAutoMLJobRequest struct {
	JobName         string `json:"job_name"`
	RoleARN         string `json:"role_arn"`
	InputS3URI      string `json:"input_s3_uri"`
	TargetAttribute string `json:"target_attribute"`
	CompressionType string `json:"compression_type,omitempty"`
	OutputPath      string `json:"output_path"`
	OutputKmsKeyID  string `json:"output_kms_key_id,omitempty"`

	ProblemType     string `json:"problem_type,omitempty"`     // service infers when empty
	ObjectiveMetric string `json:"objective_metric,omitempty"` // service default when empty

	MaxCandidates          int32 `json:"max_candidates,omitempty"`
	MaxRuntimePerJobSecs   int32 `json:"max_runtime_per_job_secs,omitempty"`
	TotalJobRuntimeSecs    int32 `json:"total_job_runtime_secs,omitempty"`
	GenerateDefinitionsOnly bool `json:"generate_definitions_only,omitempty"`

	Tags []Tag `json:"tags,omitempty"`
}

type CreateAutoMLJobResponse struct {
	JobARN string `json:"job_arn"`
}

type Candidate struct {
	Name                 string         `json:"name"`
	Status               string         `json:"status"`
	ObjectiveMetricName  string         `json:"objective_metric_name,omitempty"`
	ObjectiveMetricValue float32        `json:"objective_metric_value,omitempty"`
	Containers           []ContainerDef `json:"containers,omitempty"`
}

type DescribeAutoMLJobResponse struct {
	JobName         string     `json:"job_name"`
	JobARN          string     `json:"job_arn"`
	Status          string     `json:"status"`
	SecondaryStatus string     `json:"secondary_status,omitempty"`
	FailureReason   string     `json:"failure_reason,omitempty"`
	Best            *Candidate `json:"best,omitempty"`
}
