// Package s3 stores catalog images in an S3 compatible bucket (R2, MinIO or AWS).
package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"concierge/config"
	"concierge/infras/otel"
	"concierge/shared/constant"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrKey    = "object_key"
	otelAttrBucket = "bucket"

	// R2 and MinIO ignore the region but the SDK insists on one
	region = "auto"
)

// S3 writes and removes objects by key ("room/3f1c.jpg"). An empty bucket means the
// configured one.
type S3 interface {
	Put(ctx context.Context, bucket, key, contentType string, body []byte) (url string, err error)
	Remove(ctx context.Context, bucket, key string) error
	// KeyFromURL maps a URL returned by Put back to its key, or "" for foreign URLs.
	KeyFromURL(bucket, url string) string
}

type store struct {
	client        *s3.Client
	defaultBucket string
	publicDomain  string
	apiEndpoint   string
	otel          otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) S3 {
	conf := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(conf.AccessKeyID, conf.SecretAccessKey, constant.Empty)),
		awsConfig.WithRegion(region),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to load S3 configuration, uploads will fail")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if conf.APIEndpoint != constant.Empty {
			o.BaseEndpoint = aws.String(conf.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return &store{
		client:        client,
		defaultBucket: conf.BucketName,
		publicDomain:  strings.TrimSuffix(conf.PublicDomain, "/"),
		apiEndpoint:   strings.TrimSuffix(conf.APIEndpoint, "/"),
		otel:          otel,
	}
}

func (st *store) bucket(name string) string {
	if name == constant.Empty {
		return st.defaultBucket
	}

	return name
}

func (st *store) Put(ctx context.Context, bucket, key, contentType string, body []byte) (url string, err error) {
	ctx, scope := st.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Put")
	defer scope.End()
	defer scope.TraceIfError(&err)

	bucket = st.bucket(bucket)
	scope.SetAttributes(map[string]any{otelAttrKey: key, otelAttrBucket: bucket})

	_, err = st.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to put %s: %w", key, err)
	}

	return st.publicDomain + "/" + key, nil
}

func (st *store) Remove(ctx context.Context, bucket, key string) (err error) {
	ctx, scope := st.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Remove")
	defer scope.End()
	defer scope.TraceIfError(&err)

	bucket = st.bucket(bucket)
	scope.SetAttributes(map[string]any{otelAttrKey: key, otelAttrBucket: bucket})

	if _, err = st.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}

	return nil
}

func (st *store) KeyFromURL(bucket, url string) string {
	return keyFromURL(st.publicDomain, st.apiEndpoint, st.bucket(bucket), url)
}

// keyFromURL accepts public URLs with or without the bucket segment and path-style API
// URLs. Empty bases never match.
func keyFromURL(publicDomain, apiEndpoint, bucket, url string) string {
	var bases []string

	if publicDomain != constant.Empty {
		bases = append(bases, publicDomain+"/"+bucket+"/", publicDomain+"/")
	}

	if apiEndpoint != constant.Empty {
		bases = append(bases, apiEndpoint+"/"+bucket+"/")
	}

	for _, base := range bases {
		if key, ok := strings.CutPrefix(url, base); ok && key != constant.Empty {
			return key
		}
	}

	return constant.Empty
}
