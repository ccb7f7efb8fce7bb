package dto

import (
	"concierge/infras/jwt"
	userModel "concierge/internal/domains/user/model"
	userDto "concierge/internal/domains/user/model/dto"
	"concierge/shared/constant"
	gModel "concierge/shared/model"
	"concierge/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RegisterRequest signs up a guest account. Staff and admin roles are granted through the
// user endpoints, never here.
type RegisterRequest struct {
	Email    string  `json:"email"               validate:"required,email,max=255"`
	Password string  `json:"password"            validate:"required,min=8,max=72"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
}

// Normalize trims the name and lowercases the email so lookups stay case insensitive.
func (r *RegisterRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)

	if r.FullName != nil {
		name := strings.TrimSpace(*r.FullName)
		r.FullName = &name

		if name == constant.Empty {
			r.FullName = nil
		}
	}
}

func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	now := timezone.Now()

	return userModel.User{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		Level:    constant.RoleUser,
		FullName: r.FullName,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  constant.ContextSystem,
			ModifiedBy: constant.ContextSystem,
		},
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// LastLoginUpdate is applied after a successful sign in.
type LastLoginUpdate struct {
	LastLogin time.Time `db:"last_login"`
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (t *Tokens) FromTokenPair(pair *jwt.TokenPair) {
	t.AccessToken = pair.AccessToken
	t.RefreshToken = pair.RefreshToken
	t.TokenType = pair.TokenType
	t.ExpiresIn = pair.ExpiresIn
}

type LoginResponse struct {
	Tokens
	User userDto.UserResponse `json:"user"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required,jwt"`
}

type RefreshTokenResponse struct {
	Tokens
}

// LogoutRequest optionally carries the refresh token so the whole session ends, not just
// the access token in the Authorization header.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"omitempty,jwt"`
}

// Session is the signed-in caller as seen by the auth middleware.
type Session struct {
	UserID  string
	TokenID string
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required,max=72"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72,nefield=CurrentPassword"`
}

type PasswordUpdate struct {
	Password string `db:"password"`
}
