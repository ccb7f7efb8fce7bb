package model

import (
	"concierge/shared/model"
)

const (
	EntityName = "request"

	CategoryTableName  = "request_categories"
	CategoryEntityName = "request_category"
	ItemTableName      = "request_items"
	ItemEntityName     = "request_item"
	TableName          = "service_requests"

	FieldID            = "id"
	FieldName          = "name"
	FieldDescription   = "description"
	FieldIcon          = "icon"
	FieldSortOrder     = "sort_order"
	FieldIsActive      = "is_active"
	FieldCategoryID    = "category_id"
	FieldItemID        = "item_id"
	FieldGuestID       = "guest_id"
	FieldRoomID        = "room_id"
	FieldRoomNumber    = "room_number"
	FieldGuestName     = "guest_name"
	FieldType          = "type"
	FieldChatMessageID = "chat_message_id"
	FieldStatus        = "status"
	FieldCreatedBy     = "created_by"
)

// Documented status vocabulary. Status is free-form and no transition order is enforced.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

type Category struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Icon        string `db:"icon"`
	SortOrder   int    `db:"sort_order"`
	IsActive    bool   `db:"is_active"`
	model.Metadata
}

type Item struct {
	ID          string `db:"id"`
	CategoryID  string `db:"category_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	model.Metadata
}

// ServiceRequest is a staff-actionable task. RoomID stays NULL when the room number did not
// match a rooms row; RoomNumber always keeps what the guest reported.
type ServiceRequest struct {
	ID            string  `db:"id"`
	GuestID       *string `db:"guest_id"`
	RoomID        *string `db:"room_id"`
	RoomNumber    string  `db:"room_number"`
	GuestName     string  `db:"guest_name"`
	Type          string  `db:"type"`
	Description   string  `db:"description"`
	CategoryID    *string `db:"category_id"`
	ItemID        *string `db:"item_id"`
	ChatMessageID *string `db:"chat_message_id"`
	Status        string  `db:"status"`
	model.Metadata
}
