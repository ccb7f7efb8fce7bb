package middleware

import (
	"concierge/config"
	"concierge/infras/jwt"
	"concierge/infras/otel"
	"concierge/permissions"
	"concierge/shared/constant"
	"concierge/shared/failure"
	"concierge/transport/http/response"
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// browsers cannot set headers on a websocket handshake
const queryParamAccessToken = "access_token"

type SkipAuthKey string

var skipAuth = SkipAuthKey("skip")

type Auth interface {
	// Auth attaches the caller's session. Routes marked skip or optional in permissions.json
	// let anonymous callers through.
	Auth(http.Handler) http.Handler
	// APIKey lets internal callers bypass Auth and RBAC with the shared key.
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// route resolves the chi pattern ("/v1/rooms/{id}") and its permission entry.
func (m *authRoleImpl) route(request *http.Request) (string, permissions.Permission) {
	var pattern string
	if rctx := chi.RouteContext(request.Context()); rctx != nil {
		pattern = rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
	}

	if m.permission == nil {
		return pattern, permissions.Permission{}
	}

	return pattern, m.permission.Find(pattern, request.Method)
}

// IsInternal reports whether the request was authenticated with the API key.
func IsInternal(ctx context.Context) bool {
	skip, _ := ctx.Value(skipAuth).(bool)

	return skip
}

func skipped(request *http.Request) bool {
	return IsInternal(request.Context())
}

func bearer(request *http.Request) string {
	header := request.Header.Get(constant.RequestHeaderAuthorization)
	if header != constant.Empty || !websocket.IsWebSocketUpgrade(request) {
		return header
	}

	if token := request.URL.Query().Get(queryParamAccessToken); token != constant.Empty {
		return "Bearer " + token
	}

	return constant.Empty
}

// authenticate validates the bearer token and returns ctx carrying the session.
func (m *authRoleImpl) authenticate(ctx context.Context, request *http.Request) (context.Context, error) {
	header := bearer(request)
	if header == constant.Empty {
		return ctx, failure.Unauthorized("Missing authorization header")
	}

	token, err := jwt.ExtractTokenFromHeader(header)
	if err != nil {
		return ctx, failure.Unauthorized("Invalid authorization header format")
	}

	claims, err := m.jwtService.ValidateToken(ctx, token, jwt.AccessToken)

	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return ctx, failure.Unauthorized("Token has expired")
	case errors.Is(err, jwt.ErrRevokedToken):
		return ctx, failure.Unauthorized("Session has ended")
	case err != nil:
		return ctx, failure.Unauthorized("Invalid token")
	case claims.UserID == constant.Empty || claims.Email == constant.Empty:
		return ctx, failure.Unauthorized("Invalid token claims")
	}

	ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)

	return context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID), nil
}

func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		if skipped(request) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		path, permission := m.route(request)

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		if permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		authed, err := m.authenticate(ctx, request)

		// optional routes serve anonymous callers and ignore bad tokens
		if permission.Optional {
			scope.End()

			if err != nil {
				authed = request.Context()
			}

			next.ServeHTTP(writer, request.WithContext(authed))

			return
		}

		if err != nil {
			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request.WithContext(authed))
	})
}

func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		if skipped(request) || (m.permission != nil && m.permission.Skip) {
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		_, permission := m.route(request)
		if permission.Skip || permission.Optional {
			next.ServeHTTP(writer, request)

			return
		}

		role, _ := request.Context().Value(constant.ContextKeyUserRole).(string)

		if !permission.Allows(role) {
			scope.TraceError(failure.ForbiddenError)
			scope.SetAttributes(map[string]any{
				"user_role":     role,
				"allowed_roles": permission.Permissions,
			})

			response.WithError(writer, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		key := request.Header.Get(constant.RequestHeaderAPIKey)
		if key == constant.Empty {
			scope.SetAttribute("http.source", "client")
			scope.End()
			next.ServeHTTP(writer, request.WithContext(context.WithValue(request.Context(), skipAuth, false)))

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKey == constant.Empty || subtle.ConstantTimeCompare([]byte(key), []byte(m.cfg.App.APIKey)) != 1 {
			scope.TraceError(failure.ForbiddenError)
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request.WithContext(context.WithValue(request.Context(), skipAuth, true)))
	})
}
