package gosmruntime

type InvokeEndpointRequest struct {
	EndpointName     string `json:"endpoint_name"`
	Body             []byte `json:"body"`
	ContentType      string `json:"content_type,omitempty"`
	Accept           string `json:"accept,omitempty"`
	TargetModel      string `json:"target_model,omitempty"`
	TargetVariant    string `json:"target_variant,omitempty"`
	InferenceID      string `json:"inference_id,omitempty"`
	CustomAttributes string `json:"custom_attributes,omitempty"`
}

type InvokeEndpointResponse struct {
	Body             []byte `json:"body"`
	ContentType      string `json:"content_type,omitempty"`
	InvokedVariant   string `json:"invoked_variant,omitempty"`
	CustomAttributes string `json:"custom_attributes,omitempty"`
}
