package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"concierge/config"
	"concierge/infras/jwt"
	jwtMocks "concierge/infras/jwt/mocks"
	"concierge/infras/otel/mocks"
	"concierge/permissions"
	"concierge/shared/constant"
	"concierge/transport/http/middleware"
)

const apiKey = "internal-key"

// newRouter mounts a handful of real routes behind the auth chain and echoes the caller's user id.
func newRouter(t *testing.T) (chi.Router, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)
	jwtService := jwtMocks.NewMockJWT(ctrl)

	cfg := &config.Config{}
	cfg.App.APIKey = apiKey

	mw := middleware.NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), permissions.Get(), cfg)

	echo := func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value(constant.ContextKeyUserID).(string)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(userID))
	}

	router := chi.NewRouter()
	router.Route("/v1", func(r chi.Router) {
		r.Use(mw.APIKey, mw.Auth, mw.RBAC)

		r.Get("/rooms/", echo)
		r.Delete("/rooms/{id}", echo)
		r.Post("/requests/", echo)
		r.Get("/chat/ws", echo)
		r.Get("/chat/messages", echo)
	})

	return router, jwtService
}

func claims(role string) *jwt.Claims {
	return &jwt.Claims{UserID: "user-1", Email: "jane@example.com", Role: role, TokenID: "access-id"}
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		headers   map[string]string
		setupMock func(jwtService *jwtMocks.MockJWT)
		wantCode  int
		wantUser  string
	}{
		{
			name:     "public catalog needs no token",
			method:   http.MethodGet,
			target:   "/v1/rooms/",
			wantCode: http.StatusOK,
		},
		{
			name:     "guest endpoint without token",
			method:   http.MethodGet,
			target:   "/v1/chat/messages",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "guest endpoint with token",
			method:  http.MethodGet,
			target:  "/v1/chat/messages",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer token-1"},
			setupMock: func(jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken(gomock.Any(), "token-1", jwt.AccessToken).Return(claims("user"), nil)
			},
			wantCode: http.StatusOK,
			wantUser: "user-1",
		},
		{
			name:    "expired token",
			method:  http.MethodGet,
			target:  "/v1/chat/messages",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer token-1"},
			setupMock: func(jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken(gomock.Any(), "token-1", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "guest cannot delete a room",
			method:  http.MethodDelete,
			target:  "/v1/rooms/room-1",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer token-1"},
			setupMock: func(jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken(gomock.Any(), "token-1", jwt.AccessToken).Return(claims("user"), nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:    "admin deletes a room",
			method:  http.MethodDelete,
			target:  "/v1/rooms/room-1",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer token-1"},
			setupMock: func(jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken(gomock.Any(), "token-1", jwt.AccessToken).Return(claims("admin"), nil)
			},
			wantCode: http.StatusOK,
			wantUser: "user-1",
		},
		{
			name:    "revoked session",
			method:  http.MethodGet,
			target:  "/v1/chat/messages",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer token-1"},
			setupMock: func(jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken(gomock.Any(), "token-1", jwt.AccessToken).Return(nil, jwt.ErrRevokedToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "basic auth is not a bearer token",
			method:   http.MethodGet,
			target:   "/v1/chat/messages",
			headers:  map[string]string{constant.RequestHeaderAuthorization: "Basic Zm9vOmJhcg=="},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "bad token on an optional route falls back to anonymous",
			method:  http.MethodPost,
			target:  "/v1/requests/",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer token-1"},
			setupMock: func(jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken(gomock.Any(), "token-1", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "request submission is open to anonymous callers",
			method:   http.MethodPost,
			target:   "/v1/requests/",
			wantCode: http.StatusOK,
		},
		{
			name:    "request submission keeps a valid session",
			method:  http.MethodPost,
			target:  "/v1/requests/",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer token-1"},
			setupMock: func(jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken(gomock.Any(), "token-1", jwt.AccessToken).Return(claims("user"), nil)
			},
			wantCode: http.StatusOK,
			wantUser: "user-1",
		},
		{
			name:     "internal caller with api key",
			method:   http.MethodDelete,
			target:   "/v1/rooms/room-1",
			headers:  map[string]string{constant.RequestHeaderAPIKey: apiKey},
			wantCode: http.StatusOK,
		},
		{
			name:     "wrong api key",
			method:   http.MethodGet,
			target:   "/v1/rooms/",
			headers:  map[string]string{constant.RequestHeaderAPIKey: "guess"},
			wantCode: http.StatusForbidden,
		},
		{
			name:   "websocket handshake carries the token in the query",
			method: http.MethodGet,
			target: "/v1/chat/ws?access_token=token-1",
			headers: map[string]string{
				"Connection": "Upgrade",
				"Upgrade":    "websocket",
			},
			setupMock: func(jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken(gomock.Any(), "token-1", jwt.AccessToken).Return(claims("user"), nil)
			},
			wantCode: http.StatusOK,
			wantUser: "user-1",
		},
		{
			name:     "query token is ignored outside websocket handshakes",
			method:   http.MethodGet,
			target:   "/v1/chat/messages?access_token=token-1",
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, jwtService := newRouter(t)
			if tt.setupMock != nil {
				tt.setupMock(jwtService)
			}

			req := httptest.NewRequest(tt.method, tt.target, nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.wantUser, rec.Body.String())
			}
		})
	}
}
