// gos3 contains the S3 data plumbing behind training sessions:
// uploading training data, downloading model artifacts, and naming
// the account's default SageMaker bucket.
package gos3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/ggarcia209/go-sagemaker/goaws"
)

//go:generate mockgen -destination=../mocks/gos3mock/s3.go -package=gos3mock . DataStoreLogic
type DataStoreLogic interface {
	UploadData(ctx context.Context, req UploadDataRequest) (*UploadDataResponse, error)
	DownloadData(ctx context.Context, s3URI string) (*DownloadDataResponse, error)
	ObjectExists(ctx context.Context, s3URI string) (bool, error)
	DefaultBucket(ctx context.Context) (string, error)
}

// S3ClientAPI defines the interface for the AWS S3 client methods used by this package.
//
//go:generate mockgen -destination=./s3_client_test.go -package=gos3 . S3ClientAPI
type S3ClientAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// STSClientAPI defines the interface for the AWS STS client methods used by this package.
//
//go:generate mockgen -destination=./sts_client_test.go -package=gos3 . STSClientAPI
type STSClientAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

type DataStore struct {
	svc    S3ClientAPI
	stsSvc STSClientAPI
	region string

	defaultBucket string
}

func NewDataStore(config goaws.AwsConfig) *DataStore {
	return &DataStore{
		svc:    s3.NewFromConfig(config.Config),
		stsSvc: sts.NewFromConfig(config.Config),
		region: config.Region(),
	}
}

// UploadData uploads a training input and returns its s3:// URI.
// An empty Bucket falls back to the account's default bucket.
func (s *DataStore) UploadData(ctx context.Context, req UploadDataRequest) (*UploadDataResponse, error) {
	if req.Key == "" {
		return nil, goaws.NewClientError(errors.New("upload key is required"))
	}

	bucket := req.Bucket
	if bucket == "" {
		var err error
		if bucket, err = s.DefaultBucket(ctx); err != nil {
			return nil, err
		}
	}

	key := req.Key
	if req.KeyPrefix != "" {
		key = strings.TrimSuffix(req.KeyPrefix, "/") + "/" + key
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   req.Body,
	}
	if req.ContentType != "" {
		input.ContentType = aws.String(req.ContentType)
	}
	if req.KmsKeyID != "" {
		input.ServerSideEncryption = types.ServerSideEncryptionAwsKms
		input.SSEKMSKeyId = aws.String(req.KmsKeyID)
	}

	if _, err := s.svc.PutObject(ctx, input); err != nil {
		return nil, goaws.NewInternalError(fmt.Errorf("s.svc.PutObject: %w", err))
	}

	return &UploadDataResponse{S3URI: JoinS3URI(bucket, key)}, nil
}

// DownloadData returns the object at an s3:// URI. Used to fetch
// model artifacts and batch transform outputs.
func (s *DataStore) DownloadData(ctx context.Context, s3URI string) (*DownloadDataResponse, error) {
	bucket, key, err := ParseS3URI(s3URI)
	if err != nil {
		return nil, err
	}

	obj, err := s.svc.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notExist *types.NoSuchKey
		var re *awshttp.ResponseError
		switch {
		case errors.As(err, &notExist):
			return nil, NewObjectNotFoundError(s3URI)
		case errors.As(err, &re):
			if re.ResponseError != nil && re.HTTPStatusCode() == http.StatusNotFound {
				return nil, NewObjectNotFoundError(s3URI)
			}
			return nil, goaws.NewInternalError(fmt.Errorf("s.svc.GetObject: %w", re.Err))
		default:
			return nil, goaws.NewInternalError(fmt.Errorf("s.svc.GetObject: %w", err))
		}
	}
	defer obj.Body.Close()

	data, err := io.ReadAll(obj.Body)
	if err != nil {
		return nil, goaws.NewInternalError(fmt.Errorf("io.ReadAll: %w", err))
	}

	resp := &DownloadDataResponse{Data: data}
	if obj.ContentType != nil {
		resp.ContentType = *obj.ContentType
	}
	return resp, nil
}

// ObjectExists checks whether an object exists at an s3:// URI.
func (s *DataStore) ObjectExists(ctx context.Context, s3URI string) (bool, error) {
	bucket, key, err := ParseS3URI(s3URI)
	if err != nil {
		return false, err
	}

	if _, err := s.svc.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		var notExist *types.NoSuchKey
		var re *awshttp.ResponseError
		switch {
		case errors.As(err, &notExist):
			return false, nil
		case errors.As(err, &re):
			if re.ResponseError != nil && re.HTTPStatusCode() == http.StatusNotFound {
				return false, nil
			}
			return false, goaws.NewInternalError(fmt.Errorf("s.svc.HeadObject: %w", re.Err))
		default:
			return false, goaws.NewInternalError(fmt.Errorf("s.svc.HeadObject: %w", err))
		}
	}
	return true, nil
}

// DefaultBucket returns sagemaker-{region}-{account}, resolving the
// account id through STS on first use. The bucket is assumed to
// exist; this package does not create it.
func (s *DataStore) DefaultBucket(ctx context.Context) (string, error) {
	if s.defaultBucket != "" {
		return s.defaultBucket, nil
	}

	out, err := s.stsSvc.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", goaws.NewInternalError(fmt.Errorf("s.stsSvc.GetCallerIdentity: %w", err))
	}
	if out.Account == nil {
		return "", goaws.NewInternalError(errors.New("caller identity missing account id"))
	}

	s.defaultBucket = fmt.Sprintf("sagemaker-%s-%s", s.region, *out.Account)
	return s.defaultBucket, nil
}

// ParseS3URI splits s3://bucket/key/parts into bucket and key.
func ParseS3URI(uri string) (string, string, error) {
	trimmed, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return "", "", NewInvalidS3URIError(uri)
	}

	bucket, key, found := strings.Cut(trimmed, "/")
	if !found || bucket == "" || key == "" {
		return "", "", NewInvalidS3URIError(uri)
	}
	return bucket, key, nil
}

// JoinS3URI composes an s3:// URI from a bucket and key elements.
func JoinS3URI(bucket string, elems ...string) string {
	parts := append([]string{"s3://" + bucket}, elems...)
	return strings.Join(parts, "/")
}
