// Package s3 stores room type photos in an S3 compatible bucket.
package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"

	defaultRegion = "auto"
)

var ErrNotConfigured = errors.New("object storage is not configured")

type Storage interface {
	// Upload stores the file under directory with a generated name and returns its public URL.
	Upload(ctx context.Context, directory string, fileHeader *multipart.FileHeader, file multipart.File) (url string, err error)
	Delete(ctx context.Context, objectKey string) error
	// ObjectKey returns the key of an object from its public URL, or an empty string for foreign URLs.
	ObjectKey(url string) string
}

type storageImpl struct {
	client    *s3.Client
	bucket    string
	publicURL string
	otel      otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Storage {
	conf := cfg.External.S3
	if conf.BucketName == constant.Empty {
		log.Warn().Msg("S3 bucket not set, image uploads are disabled")

		return &disabledStorage{}
	}

	region := conf.Region
	if region == constant.Empty {
		region = defaultRegion
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(region),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(conf.AccessKey, conf.SecretKey, constant.Empty)),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to load AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if conf.Endpoint != constant.Empty {
			o.BaseEndpoint = aws.String(conf.Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := conf.PublicURL
	if publicURL == constant.Empty {
		publicURL = strings.TrimSuffix(conf.Endpoint, "/") + "/" + conf.BucketName
	}

	return &storageImpl{
		client:    client,
		bucket:    conf.BucketName,
		publicURL: strings.TrimSuffix(publicURL, "/"),
		otel:      otel,
	}
}

func (svc *storageImpl) Upload(ctx context.Context, directory string, fileHeader *multipart.FileHeader, file multipart.File) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	objectKey := path.Join(directory, uuid.NewString()+strings.ToLower(filepath.Ext(fileHeader.Filename)))

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    svc.bucket,
	})

	buf := bytes.NewBuffer(nil)
	if _, err = buf.ReadFrom(file); err != nil {
		return constant.Empty, fmt.Errorf("failed to read file: %w", err)
	}

	body := bytes.NewReader(buf.Bytes())

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(objectKey),
		Body:          body,
		ContentType:   aws.String(fileHeader.Header.Get(constant.RequestHeaderContentType)),
		ContentLength: aws.Int64(body.Size()),
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return svc.publicURL + "/" + objectKey, nil
}

func (svc *storageImpl) Delete(ctx context.Context, objectKey string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    svc.bucket,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to delete file from S3")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

func (svc *storageImpl) ObjectKey(url string) string {
	return objectKey(svc.publicURL, url)
}

func objectKey(publicURL, url string) string {
	prefix := publicURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return constant.Empty
	}

	return strings.TrimPrefix(url, prefix)
}

type disabledStorage struct{}

func (disabledStorage) Upload(context.Context, string, *multipart.FileHeader, multipart.File) (string, error) {
	return constant.Empty, ErrNotConfigured
}

func (disabledStorage) Delete(context.Context, string) error {
	return nil
}

func (disabledStorage) ObjectKey(string) string {
	return constant.Empty
}
