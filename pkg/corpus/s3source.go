package corpus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// GetObjectAPI is the slice of the S3 client the corpus needs.
type GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads the corpus from an S3 object. Client is created from the
// default AWS configuration on first Open when left nil.
type S3Source struct {
	Bucket string
	Key    string
	Client GetObjectAPI

	clientOnce sync.Once
	clientErr  error
}

// Name returns the s3:// URI of the object.
func (s *S3Source) Name() string {
	return "s3://" + s.Bucket + "/" + s.Key
}

// Open streams the object body.
func (s *S3Source) Open(ctx context.Context) (io.ReadCloser, error) {
	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", s.Name(), err)
	}
	return resp.Body, nil
}

func (s *S3Source) client(ctx context.Context) (GetObjectAPI, error) {
	s.clientOnce.Do(func() {
		if s.Client != nil {
			return
		}
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			s.clientErr = fmt.Errorf("load AWS config: %w", err)
			return
		}
		s.Client = s3.NewFromConfig(cfg)
	})
	return s.Client, s.clientErr
}

// ParseS3URI splits s3://bucket/key into its parts. The key is required:
// a corpus is a single object.
func ParseS3URI(uri string) (bucket, key string, err error) {
	if !strings.HasPrefix(uri, "s3://") {
		return "", "", errors.New("invalid S3 URI: must start with s3://")
	}

	bucket, key, _ = strings.Cut(strings.TrimPrefix(uri, "s3://"), "/")
	if bucket == "" {
		return "", "", errors.New("invalid S3 URI: missing bucket name")
	}
	if key == "" {
		return "", "", errors.New("invalid S3 URI: missing object key")
	}
	return bucket, key, nil
}
