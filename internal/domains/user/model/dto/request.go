package dto

import (
	"concierge/internal/domains/user/model"
	"concierge/shared/constant"
	gModel "concierge/shared/model"
	"concierge/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

// CreateUserRequest is used by managers to open staff or guest accounts. Level defaults
// to a guest.
type CreateUserRequest struct {
	Email        string  `json:"email"                   validate:"required,email,max=255"`
	Password     string  `json:"password"                validate:"required,min=8,max=72"`
	Level        string  `json:"level"                   validate:"omitempty,oneof=superadmin admin staff user"`
	FullName     *string `json:"full_name,omitempty"     validate:"omitempty,max=100"`
	ProfileImage *string `json:"profile_image,omitempty" validate:"omitempty,url"`
	IsVerified   *bool   `json:"is_verified,omitempty"`
}

// ToModel builds an active account. The password is left for the caller to hash.
func (r *CreateUserRequest) ToModel(createdBy string) model.User {
	now := timezone.Now()

	user := model.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(r.Email)),
		Level:        r.Level,
		FullName:     r.FullName,
		ProfileImage: r.ProfileImage,
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}

	if user.Level == constant.Empty {
		user.Level = constant.RoleUser
	}

	if r.IsVerified != nil {
		user.IsVerified = *r.IsVerified
	}

	return user
}

// UpdateUserRequest is a manager's edit of someone else's account. Nil fields are left
// alone.
type UpdateUserRequest struct {
	Level        *string `db:"level"         json:"level,omitempty"         validate:"omitempty,oneof=superadmin admin staff user"`
	FullName     *string `db:"full_name"     json:"full_name,omitempty"     validate:"omitempty,max=100"`
	ProfileImage *string `db:"profile_image" json:"profile_image,omitempty" validate:"omitempty,url"`
	IsVerified   *bool   `db:"is_verified"   json:"is_verified,omitempty"`
	Active       *bool   `db:"active"        json:"active,omitempty"`
}

// UpdateProfileRequest is what anyone may change on their own account.
type UpdateProfileRequest struct {
	FullName     *string `db:"full_name"     json:"full_name,omitempty"     validate:"omitempty,max=100"`
	ProfileImage *string `db:"profile_image" json:"profile_image,omitempty" validate:"omitempty,url"`
}
