package model

import "concierge/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldRoomNumber  = "room_number"
	FieldType        = "type"
	FieldStatus      = "status"
	FieldPrice       = "price"
	FieldCapacity    = "capacity"
	FieldDescription = "description"
	FieldImage       = "image"
	FieldFeatured    = "featured"
	FieldActive      = "active"
)

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
)

type Room struct {
	ID          string  `db:"id"`
	RoomNumber  string  `db:"room_number"`
	Type        string  `db:"type"`
	Status      string  `db:"status"`
	Price       float64 `db:"price"`
	Capacity    int     `db:"capacity"`
	Description string  `db:"description"`
	Image       string  `db:"image"`
	Featured    bool    `db:"featured"`
	Active      bool    `db:"active"`
	model.Metadata
}
