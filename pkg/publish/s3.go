package publish

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of the S3 client the publisher needs.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Target publishes files to an S3 bucket.
type S3Target struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Target creates a target for the given bucket. The prefix is
// prepended to every key.
func NewS3Target(client S3API, bucket, prefix string) *S3Target {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &S3Target{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Put uploads one file to the bucket.
func (t *S3Target) Put(ctx context.Context, key, contentType string, size int64, r io.Reader) error {
	_, err := t.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(t.bucket),
		Key:           aws.String(t.prefix + key),
		Body:          r,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return fmt.Errorf("s3 upload of %s failed: %w", key, err)
	}
	return nil
}
