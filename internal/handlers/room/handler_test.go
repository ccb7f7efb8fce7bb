package room_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"concierge/infras/otel/mocks"
	"concierge/internal/domains/room/model"
	"concierge/internal/domains/room/model/dto"
	serviceMocks "concierge/internal/domains/room/service/mocks"
	"concierge/internal/handlers/room"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
)

func newRouter(t *testing.T) (chi.Router, *serviceMocks.MockRoom) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := serviceMocks.NewMockRoom(ctrl)

	handler := room.New(service, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, service
}

func formRequest(t *testing.T, method, target string, fields map[string]string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, body)
	req.Header.Set(constant.RequestHeaderContentType, writer.FormDataContentType())

	return req
}

func TestHandler_CreateRoom(t *testing.T) {
	tests := []struct {
		name      string
		fields    map[string]string
		setupMock func(service *serviceMocks.MockRoom)
		wantCode  int
	}{
		{
			name: "deluxe double",
			fields: map[string]string{
				model.FieldRoomNumber: "204",
				model.FieldType:       "Deluxe Double",
				model.FieldPrice:      "189.50",
				model.FieldCapacity:   "2",
				model.FieldFeatured:   "true",
			},
			setupMock: func(service *serviceMocks.MockRoom) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req dto.CreateRoomRequest) error {
					assert.Equal(t, "204", req.RoomNumber)
					assert.InDelta(t, 189.5, req.Price, 0.001)
					assert.Equal(t, 2, req.Capacity)
					require.NotNil(t, req.Featured)
					assert.True(t, *req.Featured)
					assert.Nil(t, req.Active)

					return nil
				})
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "price is not a number",
			fields:    map[string]string{model.FieldRoomNumber: "204", model.FieldType: "Suite", model.FieldPrice: "cheap"},
			setupMock: func(*serviceMocks.MockRoom) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "type missing",
			fields:    map[string]string{model.FieldRoomNumber: "204"},
			setupMock: func(*serviceMocks.MockRoom) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "number taken",
			fields: map[string]string{model.FieldRoomNumber: "204", model.FieldType: "Suite"},
			setupMock: func(service *serviceMocks.MockRoom) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(failure.Conflict("room number already exists"))
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newRouter(t)
			tt.setupMock(service)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, formRequest(t, http.MethodPost, "/rooms/", tt.fields))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_CreateRoom_NotMultipart(t *testing.T) {
	router, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/rooms/", strings.NewReader(`{"room_number":"204"}`))
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_UpdateRoom(t *testing.T) {
	router, service := newRouter(t)

	service.EXPECT().Update(gomock.Any(), gomock.Any(), "room-1").DoAndReturn(func(_ context.Context, req dto.UpdateRoomRequest, _ string) error {
		assert.Equal(t, model.StatusMaintenance, req.Status)
		assert.Nil(t, req.Price)
		assert.Empty(t, req.RoomNumber)

		return nil
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, formRequest(t, http.MethodPatch, "/rooms/room-1", map[string]string{model.FieldStatus: model.StatusMaintenance}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_GetRooms(t *testing.T) {
	router, service := newRouter(t)

	service.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error) {
			assert.Len(t, filter.Filters, 2)

			return dto.GetRoomsResponse{Rooms: []dto.RoomResponse{{ID: "room-1", RoomNumber: "204"}}, TotalData: 1, TotalPage: 1}, nil
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/?status=available&featured=true&active=maybe", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"room_number":"204"`)
}

func TestHandler_GetRooms_DefaultsToActive(t *testing.T) {
	router, service := newRouter(t)

	service.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error) {
			require.Len(t, filter.Filters, 1)
			assert.Equal(t, gDto.Filter{Field: model.FieldActive, Operator: gDto.FilterOperatorEq, Value: true, Table: model.TableName}, filter.Filters[0])

			return dto.GetRoomsResponse{}, nil
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_GetRoomByNumber(t *testing.T) {
	router, service := newRouter(t)

	service.EXPECT().GetByNumber(gomock.Any(), "12B").Return(dto.RoomResponse{}, failure.NotFound("room not found"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/number/12B", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_SetFeatured(t *testing.T) {
	t.Run("flag required", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/rooms/room-1/featured", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unfeature", func(t *testing.T) {
		router, service := newRouter(t)

		service.EXPECT().SetFeatured(gomock.Any(), "room-1", false).Return(nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/rooms/room-1/featured", strings.NewReader(`{"featured":false}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
