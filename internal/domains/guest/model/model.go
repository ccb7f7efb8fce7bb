package model

import (
	"concierge/shared/model"
	"strings"
	"time"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID           = "id"
	FieldUserID       = "user_id"
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldRoomNumber   = "room_number"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldGuestType    = "guest_type"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
)

const (
	GuestTypeStandard = "standard"
	GuestTypeVIP      = "vip"
	GuestTypeMember   = "member"
)

type Guest struct {
	ID           string     `db:"id"`
	UserID       string     `db:"user_id"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	RoomNumber   string     `db:"room_number"`
	Email        *string    `db:"email"`
	Phone        *string    `db:"phone"`
	GuestType    string     `db:"guest_type"`
	CheckInDate  *time.Time `db:"check_in_date"`
	CheckOutDate *time.Time `db:"check_out_date"`
	model.Metadata
}

func (g Guest) FullName() string {
	return strings.TrimSpace(g.FirstName + " " + g.LastName)
}

// SplitName breaks a display name into first and last name on the first space.
func SplitName(name string) (first, last string) {
	name = strings.TrimSpace(name)

	first, last, _ = strings.Cut(name, " ")

	return first, strings.TrimSpace(last)
}
