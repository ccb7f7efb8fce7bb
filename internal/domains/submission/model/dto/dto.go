package dto

import (
	guestDto "concierge/internal/domains/guest/model/dto"
	"fmt"
	"strings"
	"time"
)

const EventSubmitted = "service_request.submitted"

// SubmitRequest is a guest asking the hotel for something. UserID is filled from the
// session; a body value is only honoured on internal calls.
type SubmitRequest struct {
	Description string `json:"description"           validate:"required,max=2000"`
	Type        string `json:"type"                  validate:"required,max=50"`
	CategoryID  string `json:"category_id,omitempty" validate:"omitempty,uuid"`
	ItemID      string `json:"item_id,omitempty"     validate:"omitempty,uuid"`
	UserID      string `json:"user_id,omitempty"     validate:"omitempty,max=64"`
	guestDto.IdentityHint
}

// ChatText is the line the front desk sees in the guest's thread.
func (s *SubmitRequest) ChatText() string {
	description := strings.TrimSpace(s.Description)

	kind := strings.TrimSpace(s.Type)
	if kind == "" {
		return "Request: " + description
	}

	return fmt.Sprintf("Request (%s): %s", kind, description)
}

// SubmitResult reports what was written. Partial means the chat message exists but the
// companion service request could not be stored.
type SubmitResult struct {
	Success          bool   `json:"success"`
	Partial          bool   `json:"partial"`
	Message          string `json:"message"`
	ChatMessageID    string `json:"chat_message_id"`
	ServiceRequestID string `json:"service_request_id,omitempty"`
	RoomID           string `json:"room_id,omitempty"`
	RoomNumber       string `json:"room_number"`
	GuestName        string `json:"guest_name"`
}

// SubmittedEvent is published once a submission has been written.
type SubmittedEvent struct {
	Event            string    `json:"event"`
	UserID           string    `json:"user_id"`
	GuestName        string    `json:"guest_name"`
	RoomNumber       string    `json:"room_number"`
	RoomID           string    `json:"room_id,omitempty"`
	Type             string    `json:"type"`
	Description      string    `json:"description"`
	ChatMessageID    string    `json:"chat_message_id"`
	ServiceRequestID string    `json:"service_request_id,omitempty"`
	Partial          bool      `json:"partial"`
	SubmittedAt      time.Time `json:"submitted_at"`
}
