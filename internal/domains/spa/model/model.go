package model

import (
	"concierge/shared/model"
	"time"
)

const (
	TableName         = "spa_treatments"
	EntityName        = "spa_treatment"
	BookingTableName  = "spa_bookings"
	BookingEntityName = "spa_booking"

	FieldID              = "id"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldDurationMinutes = "duration_minutes"
	FieldPrice           = "price"
	FieldImage           = "image"
	FieldFeatured        = "featured"
	FieldActive          = "active"

	FieldTreatmentID = "treatment_id"
	FieldGuestID     = "guest_id"
	FieldGuestName   = "guest_name"
	FieldRoomNumber  = "room_number"
	FieldScheduledAt = "scheduled_at"
	FieldStatus      = "status"
	FieldNotes       = "notes"
	FieldCreatedBy   = "created_by"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Treatment struct {
	ID              string  `db:"id"`
	Name            string  `db:"name"`
	Description     string  `db:"description"`
	DurationMinutes int     `db:"duration_minutes"`
	Price           float64 `db:"price"`
	Image           string  `db:"image"`
	Featured        bool    `db:"featured"`
	Active          bool    `db:"active"`
	model.Metadata
}

// Booking is a guest's appointment for one treatment.
type Booking struct {
	ID          string    `db:"id"`
	TreatmentID string    `db:"treatment_id"`
	GuestID     *string   `db:"guest_id"`
	GuestName   string    `db:"guest_name"`
	RoomNumber  string    `db:"room_number"`
	ScheduledAt time.Time `db:"scheduled_at"`
	Status      string    `db:"status"`
	Notes       string    `db:"notes"`
	model.Metadata
}
