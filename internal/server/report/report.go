// Package report builds the blog statistics report and optionally stores it
// in S3-compatible object storage.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/bloglist/internal/logging"
	"github.com/dmitrijs2005/bloglist/internal/netx"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
	"github.com/dmitrijs2005/bloglist/internal/server/stats"

	cfg "github.com/dmitrijs2005/bloglist/internal/server/config"
)

var ErrBucketNotConfigured = errors.New("s3 bucket is not configured")

const contentType = "application/json"

// Seams for tests.
var (
	loadDefaultAWSConfig  = config.LoadDefaultConfig
	newS3ClientFromConfig = func(c aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(c, optFns...)
	}
	newS3PresignClient = func(c *s3.Client, optFns ...func(*s3.PresignOptions)) *s3.PresignClient {
		return s3.NewPresignClient(c, optFns...)
	}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	uploadToPresignedURL = netx.UploadToPresignedURL
	now                  = time.Now
)

// BlogSource yields the blog collection the report is computed over.
type BlogSource interface {
	Snapshot(ctx context.Context) ([]*models.Blog, error)
}

// Report is the serialized statistics document.
type Report struct {
	GeneratedAt time.Time `json:"generatedAt"`
	stats.Summary
}

// Service builds reports and uploads them.
type Service struct {
	source BlogSource
	config *cfg.Config
	logger logging.Logger
}

func NewService(source BlogSource, c *cfg.Config, logger logging.Logger) *Service {
	return &Service{source: source, config: c, logger: logger}
}

// Generate summarizes a snapshot of the blog collection.
func (s *Service) Generate(ctx context.Context) (*Report, error) {
	blogs, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading blogs: %w", err)
	}

	r := &Report{GeneratedAt: now().UTC(), Summary: stats.Summarize(blogs)}
	s.logger.Debug(ctx, "report generated", "blogs", r.Blogs)
	return r, nil
}

// Write encodes r as indented JSON.
func Write(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// ObjectKey is the storage key a report generated at t is uploaded under.
func ObjectKey(t time.Time) string {
	return fmt.Sprintf("reports/%s/%s.json", t.UTC().Format("2006/01/02"), uuid.NewString())
}

// Upload stores r in the configured bucket and returns its key.
func (s *Service) Upload(ctx context.Context, r *Report) (string, error) {
	if s.config.S3Bucket == "" {
		return "", ErrBucketNotConfigured
	}

	body, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("error encoding report: %w", err)
	}

	key := ObjectKey(r.GeneratedAt)

	url, err := s.presignedPutURL(ctx, key)
	if err != nil {
		return "", err
	}

	if err := uploadToPresignedURL(ctx, url, contentType, body); err != nil {
		return "", err
	}

	s.logger.Info(ctx, "report uploaded", "bucket", s.config.S3Bucket, "key", key)
	return key, nil
}

func (s *Service) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s.config.S3RootUser, s.config.S3RootPassword, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if s.config.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return newS3PresignClient(client), nil
}

func (s *Service) presignedPutURL(ctx context.Context, key string) (string, error) {
	pc, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	req, err := presignPutObject(pc, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.S3Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", fmt.Errorf("presign put: %w", err)
	}

	return req.URL, nil
}
