// Package jwt issues and checks the HS256 session tokens handed to guests and staff.
// Access and refresh tokens are signed with separate secrets and every token carries a
// unique id so a single session can be revoked before it expires.
package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"concierge/config"
	"concierge/infras/otel"
	"concierge/shared/cache"
	"concierge/shared/timezone"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
	ErrRevokedToken = errors.New("token has been revoked")

	ErrMissingHeader   = errors.New("authorization header is required")
	ErrMalformedHeader = errors.New("authorization header must start with 'Bearer '")
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

const (
	otelScopeName = "jwt"

	bearerPrefix   = "Bearer "
	revokedKeyBase = "jwt:revoked:"
)

// Claims identify the user behind a token. Role is copied from users.level at issue time,
// so a role change takes effect on the next refresh.
type Claims struct {
	UserID  string    `json:"user_id"`
	Email   string    `json:"email"`
	Role    string    `json:"role,omitempty"`
	TokenID string    `json:"token_id"`
	Type    TokenType `json:"type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type JWT interface {
	GenerateTokenPair(ctx context.Context, userID, email, role string) (*TokenPair, error)
	// ValidateToken rejects expired, foreign, mistyped and revoked tokens.
	ValidateToken(ctx context.Context, tokenString string, tokenType TokenType) (*Claims, error)
	// Revoke blocks the token until its own expiry.
	Revoke(ctx context.Context, claims *Claims) error
}

type Service struct {
	config *config.Config
	otel   otel.Otel
	cache  cache.RedisCache
}

func New(cfg *config.Config, otel otel.Otel, cache cache.RedisCache) JWT {
	return &Service{
		config: cfg,
		otel:   otel,
		cache:  cache,
	}
}

func (s *Service) GenerateTokenPair(ctx context.Context, userID, email, role string) (_ *TokenPair, err error) {
	_, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".GenerateTokenPair")
	defer scope.End()
	defer scope.TraceIfError(&err)

	now := timezone.Now()

	access, err := s.sign(Claims{UserID: userID, Email: email, Role: role, Type: AccessToken}, now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := s.sign(Claims{UserID: userID, Email: email, Role: role, Type: RefreshToken}, now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    strings.TrimSpace(bearerPrefix),
		ExpiresIn:    int64(s.lifetime(AccessToken).Seconds()),
	}, nil
}

func (s *Service) sign(claims Claims, issuedAt time.Time) (string, error) {
	secret, err := s.secret(claims.Type)
	if err != nil {
		return "", err
	}

	claims.TokenID = uuid.NewString()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        claims.TokenID,
		Subject:   claims.UserID,
		Issuer:    s.config.App.Name,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.lifetime(claims.Type))),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (s *Service) secret(tokenType TokenType) ([]byte, error) {
	switch tokenType {
	case AccessToken:
		return []byte(s.config.JWT.AccessSecret), nil
	case RefreshToken:
		return []byte(s.config.JWT.RefreshSecret), nil
	default:
		return nil, fmt.Errorf("unknown token type: %s", tokenType)
	}
}

func (s *Service) lifetime(tokenType TokenType) time.Duration {
	if tokenType == RefreshToken {
		return time.Duration(s.config.JWT.RefreshExpireMin) * time.Minute
	}

	return time.Duration(s.config.JWT.AccessExpireMin) * time.Minute
}

func (s *Service) ValidateToken(ctx context.Context, tokenString string, tokenType TokenType) (_ *Claims, err error) {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".ValidateToken")
	defer scope.End()
	defer scope.TraceIfError(&err)

	secret, err := s.secret(tokenType)
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	keyFunc := func(*jwt.Token) (any, error) { return secret, nil }

	_, err = jwt.ParseWithClaims(tokenString, claims, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.config.App.Name),
		jwt.WithTimeFunc(timezone.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	if claims.Type != tokenType || claims.TokenID == "" {
		return nil, ErrInvalidClaim
	}

	revoked, err := s.revoked(ctx, claims.TokenID)
	if err != nil {
		// a cache outage must not lock every guest out
		log.Warn().Err(err).Str("token_id", claims.TokenID).Msg("revocation check unavailable")

		return claims, nil
	}

	if revoked {
		return nil, ErrRevokedToken
	}

	return claims, nil
}

func (s *Service) revoked(ctx context.Context, tokenID string) (bool, error) {
	var marker string

	err := s.cache.Get(ctx, revokedKeyBase+tokenID, &marker)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, cache.Nil):
		return false, nil
	default:
		return false, err
	}
}

func (s *Service) Revoke(ctx context.Context, claims *Claims) (err error) {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Revoke")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if claims == nil || claims.TokenID == "" {
		return ErrInvalidClaim
	}

	ttl := s.lifetime(claims.Type)
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(timezone.Now())
	}

	// already expired tokens fail validation on their own
	if ttl <= 0 {
		return nil
	}

	seconds := int(ttl.Round(time.Second).Seconds())
	if seconds == 0 {
		seconds = 1
	}

	if err = s.cache.Save(ctx, revokedKeyBase+claims.TokenID, string(claims.Type), seconds); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

// ExtractTokenFromHeader returns the token part of "Bearer <token>".
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	token, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok || strings.TrimSpace(token) == "" {
		return "", ErrMalformedHeader
	}

	return token, nil
}
