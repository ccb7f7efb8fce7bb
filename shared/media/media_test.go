package media_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"concierge/config"
	"concierge/infras/imaging"
	imagingMocks "concierge/infras/imaging/mocks"
	"concierge/infras/otel/mocks"
	s3Mocks "concierge/infras/s3/mocks"
	"concierge/shared/media"
)

const bucket = "concierge-media"

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func newUploader(t *testing.T) (media.Uploader, *s3Mocks.MockS3, *imagingMocks.MockProcessor) {
	t.Helper()

	ctrl := gomock.NewController(t)
	s3 := s3Mocks.NewMockS3(ctrl)
	processor := imagingMocks.NewMockProcessor(ctrl)

	cfg := &config.Config{}
	cfg.External.S3.BucketName = bucket

	return media.New(s3, processor, cfg, mocks.NewOtel()), s3, processor
}

func TestUploader_Upload(t *testing.T) {
	file := memFile{bytes.NewReader([]byte("raw"))}
	header := &multipart.FileHeader{Filename: "beach.webp"}

	tests := []struct {
		name      string
		setupMock func(s3 *s3Mocks.MockS3, processor *imagingMocks.MockProcessor)
		wantURL   string
		wantExt   string
		wantErr   bool
	}{
		{
			name: "resized jpeg is stored with a jpg name",
			setupMock: func(s3 *s3Mocks.MockS3, processor *imagingMocks.MockProcessor) {
				processor.EXPECT().Fit(gomock.Any()).Return(imaging.Result{Data: []byte("jpeg"), ContentType: imaging.ContentTypeJPEG}, nil)
				s3.EXPECT().Put(gomock.Any(), bucket, gomock.Cond(func(x any) bool { return strings.HasPrefix(x.(string), "destination/") }), imaging.ContentTypeJPEG, []byte("jpeg")).
					Return("https://cdn/destination/x.jpg", nil)
			},
			wantURL: "https://cdn/destination/x.jpg",
			wantExt: ".jpg",
		},
		{
			name: "unsupported image never reaches the bucket",
			setupMock: func(_ *s3Mocks.MockS3, processor *imagingMocks.MockProcessor) {
				processor.EXPECT().Fit(gomock.Any()).Return(imaging.Result{}, imaging.ErrUnsupportedFormat)
			},
			wantErr: true,
		},
		{
			name: "bucket failure",
			setupMock: func(s3 *s3Mocks.MockS3, processor *imagingMocks.MockProcessor) {
				processor.EXPECT().Fit(gomock.Any()).Return(imaging.Result{Data: []byte("png"), ContentType: imaging.ContentTypePNG}, nil)
				s3.EXPECT().Put(gomock.Any(), bucket, gomock.Any(), imaging.ContentTypePNG, gomock.Any()).
					Return("", errors.New("access denied"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uploader, s3, processor := newUploader(t)
			tt.setupMock(s3, processor)

			url, objectName, err := uploader.Upload(context.Background(), "destination", file, header)
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, objectName)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, url)
			assert.Contains(t, objectName, tt.wantExt)
		})
	}
}

func TestUploader_UploadWithoutFile(t *testing.T) {
	uploader, _, _ := newUploader(t)

	url, objectName, err := uploader.Upload(context.Background(), "destination", nil, nil)

	require.NoError(t, err)
	assert.Empty(t, url)
	assert.Empty(t, objectName)
}

func TestUploader_DeleteByURL(t *testing.T) {
	t.Run("object inside the bucket", func(t *testing.T) {
		uploader, s3, _ := newUploader(t)

		s3.EXPECT().KeyFromURL(bucket, "https://cdn/destination/a.jpg").Return("destination/a.jpg")
		s3.EXPECT().Remove(gomock.Any(), bucket, "destination/a.jpg").Return(nil)

		require.NoError(t, uploader.DeleteByURL(context.Background(), "destination", "https://cdn/destination/a.jpg"))
	})

	t.Run("foreign url is ignored", func(t *testing.T) {
		uploader, s3, _ := newUploader(t)

		s3.EXPECT().KeyFromURL(bucket, "https://elsewhere/a.jpg").Return("")

		require.NoError(t, uploader.DeleteByURL(context.Background(), "destination", "https://elsewhere/a.jpg"))
	})

	t.Run("empty url", func(t *testing.T) {
		uploader, _, _ := newUploader(t)

		require.NoError(t, uploader.DeleteByURL(context.Background(), "destination", ""))
	})
}
