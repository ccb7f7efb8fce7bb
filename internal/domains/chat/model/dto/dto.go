package dto

import (
	"concierge/internal/domains/chat/model"
	guestDto "concierge/internal/domains/guest/model/dto"
	"concierge/shared"
	gDto "concierge/shared/dto"
	gModel "concierge/shared/model"
	"concierge/shared/timezone"

	"github.com/google/uuid"
)

// PostRequest is a message written on behalf of a guest thread.
type PostRequest struct {
	UserID     string
	RoomNumber string
	GuestName  string
	Text       string
}

func (p *PostRequest) ToModel(user string) model.ChatMessage {
	return model.ChatMessage{
		ID:         uuid.NewString(),
		UserID:     p.UserID,
		RoomNumber: p.RoomNumber,
		GuestName:  p.GuestName,
		Text:       p.Text,
		Sender:     model.SenderUser,
		Status:     model.StatusSent,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type SendMessageRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
	guestDto.IdentityHint
}

type ReplyRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type MessageResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	RoomNumber string `json:"room_number"`
	GuestName  string `json:"guest_name"`
	Text       string `json:"text"`
	Sender     string `json:"sender"`
	Status     string `json:"status"`
	StaffID    string `json:"staff_id,omitempty"`
	gDto.Metadata
}

func (r *MessageResponse) FromModel(m model.ChatMessage) {
	r.ID = m.ID
	r.UserID = m.UserID
	r.RoomNumber = m.RoomNumber
	r.GuestName = m.GuestName
	r.Text = m.Text
	r.Sender = m.Sender
	r.Status = m.Status

	if m.StaffID != nil {
		r.StaffID = *m.StaffID
	}

	r.Metadata.FromModel(m.Metadata)
}

type GetMessagesResponse struct {
	Messages  []MessageResponse `json:"messages"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetMessagesResponse) FromModels(models []model.ChatMessage, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Messages = make([]MessageResponse, len(models))
	for i, mod := range models {
		r.Messages[i].FromModel(mod)
	}
}

// Thread summarises one guest conversation by its latest message.
type Thread struct {
	UserID      string          `json:"user_id"`
	GuestName   string          `json:"guest_name"`
	RoomNumber  string          `json:"room_number"`
	Unread      int             `json:"unread"`
	LastMessage MessageResponse `json:"last_message"`
}

type GetThreadsResponse struct {
	Threads []Thread `json:"threads"`
}

const (
	EventMessage = "message"
	EventRead    = "read"
)

// Event is the frame pushed over the realtime channel.
type Event struct {
	Type    string          `json:"type"`
	UserID  string          `json:"user_id"`
	Message MessageResponse `json:"message,omitzero"`
}
