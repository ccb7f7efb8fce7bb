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
	requestMocks "concierge/internal/domains/request/mocks"
	"concierge/internal/domains/request/model"
	"concierge/internal/domains/request/model/dto"
	"concierge/internal/domains/request/service"
	cacheMocks "concierge/shared/cache/mocks"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
)

type fixture struct {
	svc        service.Request
	categories *requestMocks.MockCategory
	items      *requestMocks.MockItem
	requests   *requestMocks.MockServiceRequest
	cache      *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		categories: requestMocks.NewMockCategory(ctrl),
		items:      requestMocks.NewMockItem(ctrl),
		requests:   requestMocks.NewMockServiceRequest(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.categories, f.items, f.requests, cfg, f.cache, mocks.NewOtel())

	return f
}

func TestRequestService_Record(t *testing.T) {
	t.Run("unresolved room stays null", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")

		f.requests.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, row model.ServiceRequest) error {
			assert.Nil(t, row.RoomID)
			assert.Nil(t, row.CategoryID)
			assert.Equal(t, "999", row.RoomNumber)
			assert.Equal(t, model.StatusPending, row.Status)
			require.NotNil(t, row.ChatMessageID)
			assert.Equal(t, "msg-1", *row.ChatMessageID)
			assert.Equal(t, "user-1", row.CreatedBy)

			return nil
		})

		res, err := f.svc.Record(ctx, dto.RecordRequest{
			RoomNumber:    "999",
			GuestName:     "Guest",
			Type:          "housekeeping",
			Description:   "Extra pillows",
			ChatMessageID: "msg-1",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Empty(t, res.RoomID)
	})

	t.Run("insert failure surfaces", func(t *testing.T) {
		f := newFixture(t)

		f.requests.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("fk violation"))

		_, err := f.svc.Record(context.Background(), dto.RecordRequest{Type: "other"})
		require.Error(t, err)
	})
}

func TestRequestService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:   "free-form status accepted",
			status: "waiting_for_parts",
			setupMock: func(f fixture) {
				f.requests.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.requests.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, "waiting_for_parts", fields[model.FieldStatus])

					return nil
				})
			},
		},
		{
			name:      "blank status",
			status:    "   ",
			setupMock: func(_ fixture) {},
			wantCode:  400,
		},
		{
			name:   "unknown request",
			status: model.StatusCompleted,
			setupMock: func(f fixture) {
				f.requests.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{Status: tt.status}, "req-1")

			if tt.wantCode == 0 {
				require.NoError(t, err)

				return
			}

			var fail *failure.Failure
			require.ErrorAs(t, err, &fail)
			assert.Equal(t, tt.wantCode, fail.Code)
		})
	}
}

func TestRequestService_GetCategories(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	f.categories.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	f.categories.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Category, error) {
			assert.Equal(t, model.FieldSortOrder, params.SortBy)

			return []model.Category{{ID: "c-1", Name: "Housekeeping"}, {ID: "c-2", Name: "Dining"}}, nil
		})

	res, err := f.svc.GetCategories(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Len(t, res.Categories, 2)
	assert.Equal(t, 2, res.TotalData)
}

func TestRequestService_DeleteCategory_WithItems(t *testing.T) {
	f := newFixture(t)

	f.categories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.items.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)

	err := f.svc.DeleteCategory(context.Background(), "c-1")

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, 409, fail.Code)
}

func TestRequestService_CreateItem_UnknownCategory(t *testing.T) {
	f := newFixture(t)

	f.categories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := f.svc.CreateItem(context.Background(), dto.CreateItemRequest{CategoryID: "missing", Name: "Towels"})
	require.Error(t, err)
}
