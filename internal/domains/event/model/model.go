package model

import (
	"concierge/shared/model"
	"time"
)

const (
	TableName             = "events"
	EntityName            = "event"
	ReservationTableName  = "event_reservations"
	ReservationEntityName = "event_reservation"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldLocation    = "location"
	FieldStartsAt    = "starts_at"
	FieldEndsAt      = "ends_at"
	FieldCapacity    = "capacity"
	FieldPrice       = "price"
	FieldImage       = "image"
	FieldFeatured    = "featured"
	FieldActive      = "active"

	FieldEventID    = "event_id"
	FieldGuestID    = "guest_id"
	FieldGuestName  = "guest_name"
	FieldRoomNumber = "room_number"
	FieldAttendees  = "attendees"
	FieldStatus     = "status"
	FieldCreatedBy  = "created_by"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Event is a hotel activity guests can sign up for.
type Event struct {
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Location    string     `db:"location"`
	StartsAt    time.Time  `db:"starts_at"`
	EndsAt      *time.Time `db:"ends_at"`
	Capacity    int        `db:"capacity"`
	Price       float64    `db:"price"`
	Image       string     `db:"image"`
	Featured    bool       `db:"featured"`
	Active      bool       `db:"active"`
	model.Metadata
}

type Reservation struct {
	ID         string  `db:"id"`
	EventID    string  `db:"event_id"`
	GuestID    *string `db:"guest_id"`
	GuestName  string  `db:"guest_name"`
	RoomNumber string  `db:"room_number"`
	Attendees  int     `db:"attendees"`
	Status     string  `db:"status"`
	model.Metadata
}
