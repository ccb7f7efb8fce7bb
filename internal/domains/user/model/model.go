package model

import (
	"concierge/shared/constant"
	"concierge/shared/model"
	"time"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID    = "id"
	FieldEmail = "email"
	FieldLevel = "level"
)

// User is an account that can sign in. Level holds the role: guests are "user", front
// desk and concierge are "staff", managers are "admin" or "superadmin".
type User struct {
	ID           string     `db:"id"`
	Email        string     `db:"email"`
	Password     string     `db:"password"`
	Level        string     `db:"level"`
	FullName     *string    `db:"full_name"`
	ProfileImage *string    `db:"profile_image"`
	IsVerified   bool       `db:"is_verified"`
	LastLogin    *time.Time `db:"last_login"`
	Active       bool       `db:"active"`
	model.Metadata
}

var ranks = map[string]int{
	constant.RoleUser:       1,
	constant.RoleStaff:      2,
	constant.RoleAdmin:      3,
	constant.RoleSuperAdmin: 4,
}

// Outranks reports whether role may manage accounts holding level. Nobody outranks a
// superadmin except another superadmin, and unknown roles outrank nothing.
func Outranks(role, level string) bool {
	if role == constant.RoleSuperAdmin {
		return true
	}

	return ranks[role] > ranks[level]
}
