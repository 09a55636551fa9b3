package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/shawn-sandy/acss/internal/config"
	"github.com/shawn-sandy/acss/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		dir    string
		bucket string
		prefix string
		region string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the built gallery",
		Long: `Copy the built gallery to a publish target.

With --bucket the gallery is uploaded to S3 using credentials from the
environment (AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY). Otherwise it
is copied to the publish directory from acss.json.

Examples:
  acss publish
  acss publish --dir=/var/www/kit
  acss publish --bucket=my-bucket --prefix=gallery --region=us-east-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(dir, bucket, prefix, region)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Local publish directory (default from acss.json)")
	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "S3 bucket name (default from acss.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "S3 key prefix (default from acss.json)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default AWS_REGION)")

	return cmd
}

func runPublish(dir, bucket, prefix, region string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Find(wd)
	if err != nil {
		return err
	}

	if dir == "" {
		dir = cfg.Publish.Dir
	}
	if bucket == "" {
		bucket = cfg.Publish.Bucket
	}
	if prefix == "" {
		prefix = cfg.Publish.Prefix
	}
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}

	var target publish.Target
	switch {
	case bucket != "":
		info("Publishing to s3://%s/%s", bucket, prefix)
		target = publish.NewS3Target(newS3Client(region), bucket, prefix)
	case dir != "":
		info("Publishing to %s", dir)
		target = publish.NewDiskTarget(dir)
	default:
		errorMsg("No publish target configured")
		info("Set publish.dir or publish.bucket in acss.json, or pass --dir/--bucket")
		return nil
	}

	p := publish.New(target, publish.WithLogger(
		slog.New(slog.NewTextHandler(os.Stderr, nil)),
	))
	result, err := p.Publish(context.Background(), cfg.OutputDir())
	if err != nil {
		return err
	}

	success("Published %d files (%d bytes)", result.Files, result.Bytes)
	return nil
}

// newS3Client builds an S3 client from environment credentials.
func newS3Client(region string) *s3.Client {
	return s3.New(s3.Options{
		Region: region,
		Credentials: aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
				SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
				SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			}, nil
		}),
	})
}
