package event_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"concierge/infras/otel/mocks"
	"concierge/internal/domains/event/model"
	"concierge/internal/domains/event/model/dto"
	serviceMocks "concierge/internal/domains/event/service/mocks"
	"concierge/internal/handlers/event"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
)

func newRouter(t *testing.T) (chi.Router, *serviceMocks.MockEvent) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := serviceMocks.NewMockEvent(ctrl)

	handler := event.New(service, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, service
}

func filterValue(filter gDto.FilterGroup, field string) (any, bool) {
	for _, f := range filter.Filters {
		if item, ok := f.(gDto.Filter); ok && item.Field == field {
			return item.Value, true
		}
	}

	return nil, false
}

func TestHandler_GetEvents_ActiveByDefault(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantActive bool
	}{
		{name: "no flag lists active events", query: "", wantActive: true},
		{name: "explicit inactive", query: "?active=false", wantActive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newRouter(t)

			service.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEventsResponse, error) {
					active, ok := filterValue(filter, model.FieldActive)
					assert.True(t, ok)
					assert.Equal(t, tt.wantActive, active)

					return dto.GetEventsResponse{}, nil
				})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/"+tt.query, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestHandler_Reserve(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(service *serviceMocks.MockEvent)
		wantCode  int
	}{
		{
			name: "reserved with identity hint",
			body: `{"attendees":2,"guest_name":"Jane Doe","room_number":"204"}`,
			setupMock: func(service *serviceMocks.MockEvent) {
				service.EXPECT().Reserve(gomock.Any(), "e-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, req dto.CreateReservationRequest) (dto.ReservationResponse, error) {
						assert.Equal(t, 2, req.Attendees)
						assert.Equal(t, "204", req.RoomNumber)

						return dto.ReservationResponse{ID: "r-1", EventID: "e-1"}, nil
					})
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "too many attendees",
			body:      `{"attendees":50}`,
			setupMock: func(_ *serviceMocks.MockEvent) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "event gone",
			body: `{}`,
			setupMock: func(service *serviceMocks.MockEvent) {
				service.EXPECT().Reserve(gomock.Any(), "e-1", gomock.Any()).Return(dto.ReservationResponse{}, failure.NotFound(model.EntityName))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newRouter(t)
			tt.setupMock(service)

			req := httptest.NewRequest(http.MethodPost, "/events/e-1/reservations", strings.NewReader(tt.body))
			req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetMyReservations_RequiresUser(t *testing.T) {
	router, _ := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/reservations/mine", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
