package gos3

import "io"

type UploadDataRequest struct {
	Bucket      string    `json:"bucket,omitempty"`
	KeyPrefix   string    `json:"key_prefix,omitempty"`
	Key         string    `json:"key"`
	Body        io.Reader `json:"-"`
	ContentType string    `json:"content_type,omitempty"`
	KmsKeyID    string    `json:"kms_key_id,omitempty"`
}

type UploadDataResponse struct {
	S3URI string `json:"s3_uri"`
}

type DownloadDataResponse struct {
	Data        []byte `json:"data"`
	ContentType string `json:"content_type,omitempty"`
}
