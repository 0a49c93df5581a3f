package publish

import (
	"bytes"
	"context"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/wcbridge/internal/errors"
)

// S3API is the subset of *s3.Client used by S3Publisher.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads snapshots to an S3 object.
type S3Publisher struct {
	client S3API
	bucket string
	key    string
}

// NewS3Publisher creates an S3Publisher writing to bucket/key.
func NewS3Publisher(client S3API, bucket, key string) *S3Publisher {
	return &S3Publisher{client: client, bucket: bucket, key: key}
}

// Publish implements Publisher.
func (p *S3Publisher) Publish(ctx context.Context, data []byte) (string, error) {
	location := "s3://" + p.bucket + "/" + p.key
	ctx, span := startSpan(ctx, "publish.s3",
		attribute.String("s3.bucket", p.bucket),
		attribute.String("s3.key", p.key),
		attribute.Int("publish.bytes", len(data)),
	)
	defer span.End()

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(p.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(ContentType),
		Metadata: map[string]string{
			"publisher":    "wcbridge",
			"publish-time": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		failSpan(span, err)
		return "", errors.New("E121").WithDetail(location).Wrap(err)
	}
	return location, nil
}

// NewS3ClientFromEnv builds an S3 client from the standard AWS variables:
// AWS_REGION (or AWS_DEFAULT_REGION), AWS_ACCESS_KEY_ID,
// AWS_SECRET_ACCESS_KEY, AWS_SESSION_TOKEN and AWS_ENDPOINT_URL_S3 (or
// AWS_ENDPOINT_URL). A custom endpoint switches to path-style addressing
// for S3-compatible stores.
func NewS3ClientFromEnv() *s3.Client {
	opts := s3.Options{
		Region: firstEnv("AWS_REGION", "AWS_DEFAULT_REGION"),
	}
	if opts.Region == "" {
		opts.Region = "us-east-1"
	}
	if endpoint := firstEnv("AWS_ENDPOINT_URL_S3", "AWS_ENDPOINT_URL"); endpoint != "" {
		opts.BaseEndpoint = aws.String(endpoint)
		opts.UsePathStyle = true
	}
	if os.Getenv("AWS_ACCESS_KEY_ID") != "" {
		opts.Credentials = aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials))
	}
	return s3.New(opts)
}

func envCredentials(context.Context) (aws.Credentials, error) {
	return aws.Credentials{
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "Environment",
	}, nil
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
