package model

import (
	"concierge/shared/model"
)

const (
	TableName  = "chat_messages"
	EntityName = "chat_message"

	FieldID         = "id"
	FieldUserID     = "user_id"
	FieldRoomNumber = "room_number"
	FieldGuestName  = "guest_name"
	FieldText       = "text"
	FieldSender     = "sender"
	FieldStatus     = "status"
	FieldStaffID    = "staff_id"
)

const (
	SenderUser  = "user"
	SenderStaff = "staff"

	StatusSent = "sent"
	StatusRead = "read"
)

// ChatMessage is one line of the conversation between a guest and the front desk.
// UserID always names the guest that owns the thread, also on staff replies.
type ChatMessage struct {
	ID         string  `db:"id"`
	UserID     string  `db:"user_id"`
	RoomNumber string  `db:"room_number"`
	GuestName  string  `db:"guest_name"`
	Text       string  `db:"text"`
	Sender     string  `db:"sender"`
	Status     string  `db:"status"`
	StaffID    *string `db:"staff_id"`
	model.Metadata
}
