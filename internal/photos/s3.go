package photos

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fitme-app/fitme/internal/telemetry/tracing"
)

const keyPrefix = "progress-photos"

type objectStore interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store uploads progress photo images to a bucket and hands back their public URL.
type S3Store struct {
	client        objectStore
	bucket        string
	publicBaseURL string
	newID         func() string
}

func NewS3Store(ctx context.Context, bucket, region, publicBaseURL string) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.HTTPClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	})

	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}

	return newS3Store(client, bucket, publicBaseURL), nil
}

func newS3Store(client objectStore, bucket, publicBaseURL string) *S3Store {
	return &S3Store{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		newID:         uuid.NewString,
	}
}

func (s *S3Store) Upload(
	ctx context.Context,
	userID, filename, contentType string,
	body io.Reader,
	size int64,
) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "s3.photos.upload")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	key := fmt.Sprintf("%s/%s/%s%s", keyPrefix, userID, s.newID(), extension(filename, contentType))

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put object [%s]: %w", key, err)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes an image previously returned by Upload.
func (s *S3Store) Delete(ctx context.Context, imageURL string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "s3.photos.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	key, ok := strings.CutPrefix(imageURL, s.publicBaseURL+"/")
	if !ok || !strings.HasPrefix(key, keyPrefix+"/") {
		return fmt.Errorf("image url [%s] is not in this bucket", imageURL)
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("delete object [%s]: %w", key, err)
	}

	return nil
}

// extension prefers the uploaded file name and falls back to the content type.
func extension(filename, contentType string) string {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
		return ext
	}
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
