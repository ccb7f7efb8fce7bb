package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"concierge/infras/otel/mocks"
	"concierge/internal/domains/user/model/dto"
	serviceMocks "concierge/internal/domains/user/service/mocks"
	"concierge/internal/handlers/user"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
)

func newRouter(t *testing.T) (chi.Router, *serviceMocks.MockUser) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := serviceMocks.NewMockUser(ctrl)

	handler := user.New(service, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, service
}

func asUser(req *http.Request, userID string) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserID, userID))
}

func TestHandler_GetMe(t *testing.T) {
	t.Run("signed in", func(t *testing.T) {
		router, service := newRouter(t)

		service.EXPECT().Get(gomock.Any(), "user-1").Return(dto.UserResponse{ID: "user-1", Email: "jane@example.com"}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodGet, "/users/me", nil), "user-1"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"email":"jane@example.com"`)
	})

	t.Run("anonymous", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandler_UpdateMe(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(service *serviceMocks.MockUser)
		wantCode  int
	}{
		{
			name: "rename",
			body: `{"full_name":"Jane Q. Doe"}`,
			setupMock: func(service *serviceMocks.MockUser) {
				service.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), "user-1").DoAndReturn(
					func(_ context.Context, req dto.UpdateProfileRequest, _ string) error {
						require.NotNil(t, req.FullName)
						assert.Equal(t, "Jane Q. Doe", *req.FullName)
						assert.Nil(t, req.ProfileImage)

						return nil
					})
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "profile image must be a url",
			body:      `{"profile_image":"not a url"}`,
			setupMock: func(_ *serviceMocks.MockUser) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newRouter(t)
			tt.setupMock(service)

			req := httptest.NewRequest(http.MethodPatch, "/users/me", strings.NewReader(tt.body))
			req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, asUser(req, "user-1"))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_CreateUser(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(service *serviceMocks.MockUser)
		wantCode  int
	}{
		{
			name: "created",
			body: `{"email":"desk@harbor.example","password":"lobby-shift-1","level":"staff"}`,
			setupMock: func(service *serviceMocks.MockUser) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "email taken",
			body: `{"email":"desk@harbor.example","password":"lobby-shift-1"}`,
			setupMock: func(service *serviceMocks.MockUser) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(failure.Conflict("email already registered"))
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "outranked",
			body: `{"email":"gm@harbor.example","password":"lobby-shift-1","level":"superadmin"}`,
			setupMock: func(service *serviceMocks.MockUser) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(failure.ForbiddenError)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:      "unknown level",
			body:      `{"email":"desk@harbor.example","password":"lobby-shift-1","level":"bellhop"}`,
			setupMock: func(_ *serviceMocks.MockUser) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newRouter(t)
			tt.setupMock(service)

			req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.body))
			req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, asUser(req, "admin-1"))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetUsers(t *testing.T) {
	router, service := newRouter(t)

	service.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "users.level")
			assert.Contains(t, where, "users.active")
			assert.Contains(t, args, "level")

			return dto.GetUsersResponse{Users: []dto.UserResponse{{ID: "staff-1"}}, TotalData: 1, TotalPage: 1}, nil
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodGet, "/users?level=staff&active=true", nil), "admin-1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"staff-1"`)
}

func TestHandler_DeleteUser(t *testing.T) {
	router, service := newRouter(t)

	service.EXPECT().Delete(gomock.Any(), "staff-2").Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodDelete, "/users/staff-2", nil), "admin-1"))

	assert.Equal(t, http.StatusOK, rec.Code)
}
