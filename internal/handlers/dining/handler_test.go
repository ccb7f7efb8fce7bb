package dining_test

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
	"concierge/internal/domains/dining/model"
	"concierge/internal/domains/dining/model/dto"
	serviceMocks "concierge/internal/domains/dining/service/mocks"
	"concierge/internal/handlers/dining"
	"concierge/shared/constant"
)

func newRouter(t *testing.T) (chi.Router, *serviceMocks.MockDining) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := serviceMocks.NewMockDining(ctrl)

	handler := dining.New(service, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, service
}

func TestHandler_CreateRestaurant(t *testing.T) {
	router, service := newRouter(t)

	service.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req dto.CreateRestaurantRequest) error {
			assert.Equal(t, "Harbour Grill", req.Name)
			assert.Equal(t, "Seafood", req.Cuisine)
			require.NotNil(t, req.Featured)
			assert.True(t, *req.Featured)
			assert.Nil(t, req.Image)

			return nil
		})

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	_ = writer.WriteField(model.FieldName, "Harbour Grill")
	_ = writer.WriteField(model.FieldCuisine, "Seafood")
	_ = writer.WriteField(model.FieldFeatured, "true")
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/dining/restaurants/", body)
	req.Header.Set(constant.RequestHeaderContentType, writer.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_CreateRestaurant_NameRequired(t *testing.T) {
	router, _ := newRouter(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	_ = writer.WriteField(model.FieldCuisine, "Seafood")
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/dining/restaurants/", body)
	req.Header.Set(constant.RequestHeaderContentType, writer.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Reserve(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(service *serviceMocks.MockDining)
		wantCode  int
	}{
		{
			name: "table for four",
			body: `{"reserved_for":"2030-05-01T19:30:00+07:00","party_size":4,"special_requests":"window seat"}`,
			setupMock: func(service *serviceMocks.MockDining) {
				service.EXPECT().Reserve(gomock.Any(), "r-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, req dto.CreateReservationRequest) (dto.ReservationResponse, error) {
						assert.Equal(t, 4, req.PartySize)

						return dto.ReservationResponse{ID: "tr-1", RestaurantID: "r-1"}, nil
					})
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "party too large",
			body:      `{"reserved_for":"2030-05-01T19:30:00+07:00","party_size":31}`,
			setupMock: func(_ *serviceMocks.MockDining) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newRouter(t)
			tt.setupMock(service)

			req := httptest.NewRequest(http.MethodPost, "/dining/restaurants/r-1/reservations", strings.NewReader(tt.body))
			req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
