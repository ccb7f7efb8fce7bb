package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"concierge/config"
	"concierge/infras/otel/mocks"
	destinationMocks "concierge/internal/domains/destination/mocks"
	"concierge/internal/domains/destination/model"
	"concierge/internal/domains/destination/model/dto"
	"concierge/internal/domains/destination/service"
	cacheMocks "concierge/shared/cache/mocks"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	mediaMocks "concierge/shared/media/mocks"
)

var errCacheMiss = errors.New("cache miss")

func newService(t *testing.T) (service.Destination, *destinationMocks.MockDestination, *cacheMocks.MockRedisCache, *mediaMocks.MockUploader) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := destinationMocks.NewMockDestination(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockUploader := mediaMocks.NewMockUploader(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel(), mockUploader), mockRepo, mockCache, mockUploader
}

func adminCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
}

func TestDestinationService_Create(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr bool
	}{
		{name: "successful creation"},
		{name: "repository error", repoErr: errors.New("database error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newService(t)

			repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(tt.repoErr)

			err := svc.Create(adminCtx(), dto.CreateDestinationRequest{Title: "Night market", Distance: "800 m"})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestDestinationService_Get(t *testing.T) {
	tests := []struct {
		name     string
		stored   model.Destination
		repoErr  error
		wantCode int
		wantErr  bool
	}{
		{name: "found", stored: model.Destination{ID: "d-1", Title: "Temple", Images: pq.StringArray{"https://cdn/a.jpg"}}},
		{name: "not found", wantCode: 404, wantErr: true},
		{name: "repository error", repoErr: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache, _ := newService(t)

			cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
			repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.stored, tt.repoErr)

			res, err := svc.Get(context.Background(), "d-1")

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, []string{"https://cdn/a.jpg"}, res.Images)

				return
			}

			require.Error(t, err)

			if tt.wantCode != 0 {
				var fail *failure.Failure
				require.ErrorAs(t, err, &fail)
				assert.Equal(t, tt.wantCode, fail.Code)
			}
		})
	}
}

func TestDestinationService_SetFeatured(t *testing.T) {
	svc, repo, _, _ := newService(t)

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
		featured, ok := fields[model.FieldFeatured].(*bool)
		require.True(t, ok)
		assert.False(t, *featured)

		return nil
	})

	require.NoError(t, svc.SetFeatured(adminCtx(), "d-1", false))
}

func TestDestinationService_SetFeatured_CachedReadBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := destinationMocks.NewMockDestination(ctrl)
	store := cacheMocks.NewMemory()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(repo, cfg, store, mocks.NewOtel(), mediaMocks.NewMockUploader(ctrl))

	stored := model.Destination{ID: "dest-1", Title: "Night market"}

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, gDto.FilterGroup, ...string) (model.Destination, error) {
		return stored, nil
	}).Times(2)
	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
		stored.Featured = *fields[model.FieldFeatured].(*bool)

		return nil
	})

	first, err := svc.Get(adminCtx(), "dest-1")
	require.NoError(t, err)
	require.False(t, first.Featured)

	cached, err := svc.Get(adminCtx(), "dest-1")
	require.NoError(t, err)
	require.False(t, cached.Featured)

	require.NoError(t, svc.SetFeatured(adminCtx(), "dest-1", true))

	after, err := svc.Get(adminCtx(), "dest-1")
	require.NoError(t, err)
	assert.True(t, after.Featured)
}

func TestDestinationService_AddImage(t *testing.T) {
	t.Run("appends uploaded url", func(t *testing.T) {
		svc, repo, _, uploader := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Destination{ID: "d-1", Images: pq.StringArray{"https://cdn/destination/a.jpg"}}, nil)
		uploader.EXPECT().Upload(gomock.Any(), model.EntityName, gomock.Any(), gomock.Any()).Return("https://cdn/destination/b.jpg", "b.jpg", nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, pq.StringArray{"https://cdn/destination/a.jpg", "https://cdn/destination/b.jpg"}, fields[model.FieldImages])

			return nil
		})

		res, err := svc.AddImage(adminCtx(), "d-1", dto.AddImageRequest{})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn/destination/b.jpg", res.URL)
		assert.Len(t, res.Images, 2)
	})

	t.Run("update failure removes the upload", func(t *testing.T) {
		svc, repo, _, uploader := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Destination{ID: "d-1"}, nil)
		uploader.EXPECT().Upload(gomock.Any(), model.EntityName, gomock.Any(), gomock.Any()).Return("https://cdn/destination/b.jpg", "b.jpg", nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		uploader.EXPECT().Delete(gomock.Any(), model.EntityName, "b.jpg").Return(nil)

		_, err := svc.AddImage(adminCtx(), "d-1", dto.AddImageRequest{})
		require.Error(t, err)
	})
}

func TestDestinationService_RemoveImages(t *testing.T) {
	stored := model.Destination{ID: "d-1", Images: pq.StringArray{"https://cdn/destination/a.jpg", "https://cdn/destination/b.jpg"}}

	t.Run("detaches and deletes matching images", func(t *testing.T) {
		svc, repo, _, uploader := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, pq.StringArray{"https://cdn/destination/b.jpg"}, fields[model.FieldImages])

			return nil
		})
		uploader.EXPECT().DeleteByURL(gomock.Any(), model.EntityName, "https://cdn/destination/a.jpg").Return(nil)

		err := svc.RemoveImages(adminCtx(), "d-1", dto.RemoveImagesRequest{ImageURLs: []string{"https://cdn/destination/a.jpg"}})
		require.NoError(t, err)
	})

	t.Run("foreign url is rejected", func(t *testing.T) {
		svc, repo, _, _ := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

		err := svc.RemoveImages(adminCtx(), "d-1", dto.RemoveImagesRequest{ImageURLs: []string{"https://elsewhere/x.jpg"}})

		var fail *failure.Failure
		require.ErrorAs(t, err, &fail)
		assert.Equal(t, 400, fail.Code)
	})
}

func TestDestinationService_Delete_CleansUpImages(t *testing.T) {
	svc, repo, _, uploader := newService(t)

	done := make(chan struct{})

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Destination{ID: "d-1", Images: pq.StringArray{"https://cdn/destination/a.jpg"}}, nil)
	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	uploader.EXPECT().DeleteByURL(gomock.Any(), model.EntityName, "https://cdn/destination/a.jpg").DoAndReturn(func(context.Context, string, string) error {
		close(done)

		return nil
	})

	require.NoError(t, svc.Delete(adminCtx(), "d-1"))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("image cleanup did not run")
	}
}
