package guest_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"concierge/infras/otel/mocks"
	"concierge/internal/domains/guest/model/dto"
	guestMocks "concierge/internal/domains/guest/service/mocks"
	"concierge/internal/handlers/guest"
	"concierge/shared/constant"
	"concierge/shared/failure"
)

func newRouter(t *testing.T, setupMock func(s *guestMocks.MockGuest)) chi.Router {
	t.Helper()

	service := guestMocks.NewMockGuest(gomock.NewController(t))
	setupMock(service)

	handler := guest.New(service, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func asGuest(req *http.Request, userID string) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserID, userID))
}

func TestHandler_GetMe(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(s *guestMocks.MockGuest)
		wantCode  int
		wantBody  string
	}{
		{
			name: "returns the session guest's profile",
			setupMock: func(s *guestMocks.MockGuest) {
				s.EXPECT().GetMe(gomock.Any(), "user-1").Return(dto.GuestResponse{
					ID:         "guest-1",
					UserID:     "user-1",
					FirstName:  "Jane",
					FullName:   "Jane Doe",
					RoomNumber: "204",
				}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"full_name":"Jane Doe"`,
		},
		{
			name: "no profile yet",
			setupMock: func(s *guestMocks.MockGuest) {
				s.EXPECT().GetMe(gomock.Any(), "user-1").Return(dto.GuestResponse{}, failure.NotFound("guest profile not found"))
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"guest profile not found"}`,
		},
		{
			name: "storage errors are masked",
			setupMock: func(s *guestMocks.MockGuest) {
				s.EXPECT().GetMe(gomock.Any(), "user-1").Return(dto.GuestResponse{}, errors.New("pq: connection reset"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRouter(t, tt.setupMock).ServeHTTP(rec, asGuest(httptest.NewRequest(http.MethodGet, "/guests/me", nil), "user-1"))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHandler_UpdateMe(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(s *guestMocks.MockGuest)
		wantCode  int
	}{
		{
			name: "updates the session guest only",
			body: `{"first_name":"Jane","room_number":"204"}`,
			setupMock: func(s *guestMocks.MockGuest) {
				s.EXPECT().UpdateMe(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, req dto.UpdateProfileRequest) (dto.GuestResponse, error) {
						assert.Equal(t, "Jane", req.FirstName)
						assert.Equal(t, "204", req.RoomNumber)

						return dto.GuestResponse{ID: "guest-1", UserID: "user-1", FirstName: "Jane", RoomNumber: "204"}, nil
					})
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "invalid email never reaches the service",
			body:      `{"email":"not-an-email"}`,
			setupMock: func(*guestMocks.MockGuest) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "malformed json",
			body:      `{"first_name":`,
			setupMock: func(*guestMocks.MockGuest) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/guests/me", strings.NewReader(tt.body))
			req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

			rec := httptest.NewRecorder()
			newRouter(t, tt.setupMock).ServeHTTP(rec, asGuest(req, "user-1"))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetIdentity(t *testing.T) {
	router := newRouter(t, func(s *guestMocks.MockGuest) {
		s.EXPECT().Resolve(gomock.Any(), "user-1", dto.IdentityHint{GuestName: "Jane", RoomNumber: "204"}).
			Return(dto.Identity{UserID: "user-1", Name: "Jane", RoomNumber: "204", NameSource: dto.SourceCache, RoomSource: dto.SourceCache}, nil)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asGuest(httptest.NewRequest(http.MethodGet, "/guests/me/identity?guest_name=Jane&room_number=204", nil), "user-1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"room_number":"204"`)
}

func TestHandler_DeleteGuest(t *testing.T) {
	router := newRouter(t, func(s *guestMocks.MockGuest) {
		s.EXPECT().Delete(gomock.Any(), "guest-9").Return(failure.NotFound("guest not found"))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/guests/guest-9", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"guest not found"}`, rec.Body.String())
}
