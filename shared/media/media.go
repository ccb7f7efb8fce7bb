package media

//go:generate go run go.uber.org/mock/mockgen -source=./media.go -destination=./mocks/media_mock.go -package=mocks

import (
	"concierge/config"
	"concierge/infras/imaging"
	"concierge/infras/otel"
	"concierge/infras/s3"
	"concierge/shared/constant"
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const otelScopeName = "media"

// Uploader stores catalog images. Every upload is resized before it reaches the bucket.
type Uploader interface {
	Upload(ctx context.Context, directory string, file multipart.File, header *multipart.FileHeader) (url, objectName string, err error)
	Delete(ctx context.Context, directory, objectName string) error
	DeleteByURL(ctx context.Context, directory, url string) error
}

type uploaderImpl struct {
	s3        s3.S3
	processor imaging.Processor
	cfg       *config.Config
	otel      otel.Otel
}

func New(s3 s3.S3, processor imaging.Processor, cfg *config.Config, otel otel.Otel) Uploader {
	return &uploaderImpl{
		s3:        s3,
		processor: processor,
		cfg:       cfg,
		otel:      otel,
	}
}

func (u *uploaderImpl) Upload(ctx context.Context, directory string, file multipart.File, header *multipart.FileHeader) (url, objectName string, err error) {
	ctx, scope := u.otel.NewScope(ctx, otelScopeName, otelScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if file == nil || header == nil {
		return constant.Empty, constant.Empty, nil
	}

	resized, err := u.processor.Fit(file)
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("failed to process image")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to process image: %w", err)
	}

	objectName = uuid.NewString() + extension(resized.ContentType, header.Filename)

	url, err = u.s3.Put(ctx, u.cfg.External.S3.BucketName, path.Join(directory, objectName), resized.ContentType, resized.Data)
	if err != nil {
		log.Error().Err(err).Str("object", objectName).Msg("failed to upload image to S3")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	return url, objectName, nil
}

func (u *uploaderImpl) Delete(ctx context.Context, directory, objectName string) (err error) {
	ctx, scope := u.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if objectName == constant.Empty {
		return nil
	}

	return u.s3.Remove(ctx, u.cfg.External.S3.BucketName, path.Join(directory, objectName)) //nolint:wrapcheck
}

// DeleteByURL removes an object previously returned by Upload. URLs outside the bucket are ignored.
func (u *uploaderImpl) DeleteByURL(ctx context.Context, directory, url string) error {
	if url == constant.Empty {
		return nil
	}

	objectName := u.s3.KeyFromURL(u.cfg.External.S3.BucketName, url)
	if objectName == constant.Empty {
		return nil
	}

	return u.Delete(ctx, directory, strings.TrimPrefix(objectName, directory+"/"))
}

func extension(contentType, filename string) string {
	switch contentType {
	case imaging.ContentTypeJPEG:
		return ".jpg"
	case imaging.ContentTypePNG:
		return ".png"
	}

	return path.Ext(filename)
}
