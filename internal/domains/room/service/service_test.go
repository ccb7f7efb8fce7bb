package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"concierge/config"
	"concierge/infras/otel/mocks"
	roomMocks "concierge/internal/domains/room/mocks"
	"concierge/internal/domains/room/model"
	"concierge/internal/domains/room/model/dto"
	"concierge/internal/domains/room/service"
	cacheMocks "concierge/shared/cache/mocks"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	mediaMocks "concierge/shared/media/mocks"
)

var errCacheMiss = errors.New("cache miss")

type fixture struct {
	svc      service.Room
	repo     *roomMocks.MockRoom
	cache    *cacheMocks.MockRedisCache
	uploader *mediaMocks.MockUploader
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:     roomMocks.NewMockRoom(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		uploader: mediaMocks.NewMockUploader(ctrl),
	}

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.uploader)

	return f
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func(f fixture)
		wantErr   bool
		errCode   int
	}{
		{
			name: "creates room without image",
			req:  dto.CreateRoomRequest{RoomNumber: "204", Type: "deluxe"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.uploader.EXPECT().Upload(gomock.Any(), model.EntityName, nil, nil).Return("", "", nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, room model.Room) error {
					assert.Equal(t, "204", room.RoomNumber)
					assert.Equal(t, model.StatusAvailable, room.Status)
					assert.True(t, room.Active)
					assert.False(t, room.Featured)

					return nil
				})
			},
		},
		{
			name: "duplicate room number",
			req:  dto.CreateRoomRequest{RoomNumber: "204", Type: "deluxe"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: true,
			errCode: 409,
		},
		{
			name: "insert failure removes uploaded image",
			req:  dto.CreateRoomRequest{RoomNumber: "205", Type: "suite"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.uploader.EXPECT().Upload(gomock.Any(), model.EntityName, nil, nil).Return("https://cdn/room/a.jpg", "a.jpg", nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
				f.uploader.EXPECT().Delete(gomock.Any(), model.EntityName, "a.jpg").Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Create(context.Background(), tt.req)

			if !tt.wantErr {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)

			if tt.errCode != 0 {
				var fail *failure.Failure
				require.ErrorAs(t, err, &fail)
				assert.Equal(t, tt.errCode, fail.Code)
			}
		})
	}
}

func TestRoomService_GetByNumber(t *testing.T) {
	t.Run("cache miss reads repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "room:number:204", gomock.Any()).Return(errCacheMiss)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Room, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "rooms.room_number")
			assert.Equal(t, "204", args[model.FieldRoomNumber])

			return model.Room{ID: "room-1", RoomNumber: "204"}, nil
		})

		res, err := f.svc.GetByNumber(context.Background(), " 204 ")
		require.NoError(t, err)
		assert.Equal(t, "room-1", res.ID)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := f.svc.GetByNumber(context.Background(), "999")

		var fail *failure.Failure
		require.ErrorAs(t, err, &fail)
		assert.Equal(t, 404, fail.Code)
	})

	t.Run("blank number never hits storage", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetByNumber(context.Background(), "")
		require.Error(t, err)
	})
}

func TestRoomService_SetFeatured(t *testing.T) {
	f := newFixture(t)
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

	var stored model.Room

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
		featured, ok := fields[model.FieldFeatured].(*bool)
		require.True(t, ok)

		stored = model.Room{ID: "room-1", Featured: *featured}

		assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])

		return nil
	})
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ gDto.FilterGroup, _ ...string) (model.Room, error) {
		return stored, nil
	})

	require.NoError(t, f.svc.SetFeatured(ctx, "room-1", true))

	res, err := f.svc.Get(ctx, "room-1")
	require.NoError(t, err)
	assert.True(t, res.Featured)
}

func TestRoomService_SetFeatured_ReadBackThroughCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := roomMocks.NewMockRoom(ctrl)
	store := cacheMocks.NewMemory()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(repo, cfg, store, mocks.NewOtel(), mediaMocks.NewMockUploader(ctrl))
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

	stored := model.Room{ID: "room-1", RoomNumber: "204", Featured: false}

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, gDto.FilterGroup, ...string) (model.Room, error) {
		return stored, nil
	}).Times(5)
	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
		stored.Featured = *fields[model.FieldFeatured].(*bool)

		return nil
	}).Times(2)

	for _, featured := range []bool{true, false} {
		before, err := svc.Get(ctx, "room-1")
		require.NoError(t, err)
		assert.Equal(t, !featured, before.Featured)

		byNumber, err := svc.GetByNumber(ctx, "204")
		require.NoError(t, err)
		assert.Equal(t, !featured, byNumber.Featured)

		require.True(t, store.Has("room:get:room-1"))

		require.NoError(t, svc.SetFeatured(ctx, "room-1", featured))

		assert.False(t, store.Has("room:get:room-1"))
		assert.False(t, store.Has("room:number:204"))
	}

	after, err := svc.Get(ctx, "room-1")
	require.NoError(t, err)
	assert.False(t, after.Featured)
}

func TestRoomService_SetFeatured_NotFound(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := f.svc.SetFeatured(context.Background(), "missing", false)

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, 404, fail.Code)
}

func TestRoomService_Delete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "room-1", Image: "https://cdn/room/a.jpg"}, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	f.uploader.EXPECT().DeleteByURL(gomock.Any(), model.EntityName, "https://cdn/room/a.jpg").Return(nil)

	require.NoError(t, f.svc.Delete(context.Background(), "room-1"))
}
