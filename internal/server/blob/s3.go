package blob

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Seams for testing the presign flow without network access.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// Options configures the S3-compatible backend.
type Options struct {
	AccessKey     string
	SecretKey     string
	Region        string
	Bucket        string
	BaseEndpoint  string
	PublicBaseURL string
}

// S3Store issues presigned PUT URLs against an S3-compatible backend.
type S3Store struct {
	opts Options
}

func NewS3Store(opts Options) *S3Store {
	return &S3Store{opts: opts}
}

func (s *S3Store) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.opts.AccessKey,
			s.opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.opts.BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// IssueWriteURL presigns a PUT for the given blob id. The backend enforces
// the expiry; after ttl any write with the URL fails at the storage boundary.
func (s *S3Store) IssueWriteURL(ctx context.Context, blobID string, ttl time.Duration) (string, error) {
	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &s.opts.Bucket,
		Key:    &blobID,
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

// PublicURL derives the public-read location for a blob id.
func (s *S3Store) PublicURL(blobID string) string {
	return strings.TrimSuffix(s.opts.PublicBaseURL, "/") + "/" + blobID
}
