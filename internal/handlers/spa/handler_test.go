package spa_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"concierge/infras/otel/mocks"
	"concierge/internal/domains/spa/model/dto"
	serviceMocks "concierge/internal/domains/spa/service/mocks"
	"concierge/internal/handlers/spa"
	"concierge/shared/constant"
	"concierge/shared/failure"
)

func serve(t *testing.T, setupMock func(service *serviceMocks.MockSpa), method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := serviceMocks.NewMockSpa(ctrl)
	setupMock(service)

	router := chi.NewRouter()
	handler := spa.New(service, mocks.NewOtel())
	handler.Router(router)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_Book(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(service *serviceMocks.MockSpa)
		wantCode  int
	}{
		{
			name: "booked",
			body: `{"scheduled_at":"2030-05-01T10:00:00Z","notes":"quiet room"}`,
			setupMock: func(service *serviceMocks.MockSpa) {
				service.EXPECT().Book(gomock.Any(), "t-1", gomock.Any()).Return(dto.BookingResponse{ID: "s-1", TreatmentID: "t-1"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "time is required",
			body:      `{"notes":"quiet room"}`,
			setupMock: func(_ *serviceMocks.MockSpa) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "time must carry a zone",
			body:      `{"scheduled_at":"2030-05-01 10:00"}`,
			setupMock: func(_ *serviceMocks.MockSpa) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "slot in the past",
			body: `{"scheduled_at":"2020-05-01T10:00:00Z"}`,
			setupMock: func(service *serviceMocks.MockSpa) {
				service.EXPECT().Book(gomock.Any(), "t-1", gomock.Any()).
					Return(dto.BookingResponse{}, failure.BadRequestFromString("scheduled_at must be in the future"))
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, tt.setupMock, http.MethodPost, "/spa/treatments/t-1/bookings", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_UpdateBookingStatus(t *testing.T) {
	rec := serve(t, func(service *serviceMocks.MockSpa) {
		service.EXPECT().UpdateBookingStatus(gomock.Any(), "s-1", dto.UpdateBookingStatusRequest{Status: "completed"}).Return(nil)
	}, http.MethodPatch, "/spa/bookings/s-1/status", `{"status":"completed"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_GetMyBookings_RequiresUser(t *testing.T) {
	rec := serve(t, func(_ *serviceMocks.MockSpa) {}, http.MethodGet, "/spa/bookings/mine", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
