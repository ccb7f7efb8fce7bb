package model

import (
	"concierge/shared/model"
	"time"
)

const (
	TableName             = "restaurants"
	EntityName            = "restaurant"
	ReservationTableName  = "table_reservations"
	ReservationEntityName = "table_reservation"

	FieldID           = "id"
	FieldName         = "name"
	FieldCuisine      = "cuisine"
	FieldDescription  = "description"
	FieldOpeningHours = "opening_hours"
	FieldLocation     = "location"
	FieldImage        = "image"
	FieldFeatured     = "featured"
	FieldActive       = "active"

	FieldRestaurantID    = "restaurant_id"
	FieldGuestID         = "guest_id"
	FieldGuestName       = "guest_name"
	FieldRoomNumber      = "room_number"
	FieldReservedFor     = "reserved_for"
	FieldPartySize       = "party_size"
	FieldSpecialRequests = "special_requests"
	FieldStatus          = "status"
	FieldCreatedBy       = "created_by"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusSeated    = "seated"
	StatusCancelled = "cancelled"
)

type Restaurant struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Cuisine      string `db:"cuisine"`
	Description  string `db:"description"`
	OpeningHours string `db:"opening_hours"`
	Location     string `db:"location"`
	Image        string `db:"image"`
	Featured     bool   `db:"featured"`
	Active       bool   `db:"active"`
	model.Metadata
}

type Reservation struct {
	ID              string    `db:"id"`
	RestaurantID    string    `db:"restaurant_id"`
	GuestID         *string   `db:"guest_id"`
	GuestName       string    `db:"guest_name"`
	RoomNumber      string    `db:"room_number"`
	ReservedFor     time.Time `db:"reserved_for"`
	PartySize       int       `db:"party_size"`
	SpecialRequests string    `db:"special_requests"`
	Status          string    `db:"status"`
	model.Metadata
}
