package imageuris

// Scopes select between training and inference repositories for
// frameworks that publish separate containers per job type.
const (
	ScopeTraining  = "training"
	ScopeInference = "inference"
)

// Processor families.
const (
	ProcessorCPU = "cpu"
	ProcessorGPU = "gpu"
)

// RetrieveRequest describes the container image being resolved.
// Region and Framework are required. Version defaults to the
// framework's "latest" alias. Scope defaults to training.
type RetrieveRequest struct {
	Framework       string `json:"framework"`
	Region          string `json:"region"`
	Version         string `json:"version,omitempty"`
	PyVersion       string `json:"py_version,omitempty"`
	InstanceType    string `json:"instance_type,omitempty"`
	Scope           string `json:"scope,omitempty"`
	AcceleratorType string `json:"accelerator_type,omitempty"`
}

// RetrieveResponse carries the resolved URI along with the
// intermediate lookup results, for callers that need the parts.
type RetrieveResponse struct {
	URI        string `json:"uri"`
	Registry   string `json:"registry"`
	Repository string `json:"repository"`
	Tag        string `json:"tag"`
	Version    string `json:"version"`
	Processor  string `json:"processor,omitempty"`
}
