package model

import (
	"concierge/shared/model"
	"time"
)

const (
	TableName  = "room_bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldRoomID     = "room_id"
	FieldGuestID    = "guest_id"
	FieldGuestName  = "guest_name"
	FieldGuestEmail = "guest_email"
	FieldGuestPhone = "guest_phone"
	FieldCheckIn    = "check_in"
	FieldCheckOut   = "check_out"
	FieldAdults     = "adults"
	FieldNotes      = "notes"
	FieldStatus     = "status"
	FieldCreatedBy  = "created_by"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is a stay in one room between check-in and check-out dates.
type Booking struct {
	ID         string    `db:"id"`
	RoomID     string    `db:"room_id"`
	GuestID    *string   `db:"guest_id"`
	GuestName  string    `db:"guest_name"`
	GuestEmail string    `db:"guest_email"`
	GuestPhone string    `db:"guest_phone"`
	CheckIn    time.Time `db:"check_in"`
	CheckOut   time.Time `db:"check_out"`
	Adults     int       `db:"adults"`
	Notes      string    `db:"notes"`
	Status     string    `db:"status"`
	model.Metadata
}
