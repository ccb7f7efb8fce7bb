package dto

import (
	"concierge/internal/domains/event/model"
	guestDto "concierge/internal/domains/guest/model/dto"
	"concierge/shared"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	gModel "concierge/shared/model"
	"concierge/shared/timezone"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
)

func metadata(user string) gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

type CreateEventRequest struct {
	Title       string                `json:"title"       validate:"required,max=150"`
	Description string                `json:"description" validate:"omitempty,max=2000"`
	Location    string                `json:"location"    validate:"omitempty,max=150"`
	StartsAt    string                `json:"starts_at"   validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndsAt      string                `json:"ends_at"     validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Capacity    int                   `json:"capacity"    validate:"omitempty,min=0"`
	Price       float64               `json:"price"       validate:"omitempty,min=0"`
	Image       *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile   multipart.File        `json:"-"`
	Featured    *bool                 `json:"featured"    validate:"omitempty"`
	Active      *bool                 `json:"active"      validate:"omitempty"`
}

// Schedule parses the event window. The end, when given, must follow the start.
func Schedule(startsAt, endsAt string) (start *time.Time, end *time.Time, err error) {
	if startsAt != constant.Empty {
		if start, err = shared.ParseDateTime(startsAt); err != nil {
			return nil, nil, failure.BadRequestFromString("starts_at must be an RFC3339 timestamp")
		}
	}

	if endsAt != constant.Empty {
		if end, err = shared.ParseDateTime(endsAt); err != nil {
			return nil, nil, failure.BadRequestFromString("ends_at must be an RFC3339 timestamp")
		}
	}

	if start != nil && end != nil && !end.After(*start) {
		return nil, nil, failure.BadRequestFromString("ends_at must be after starts_at")
	}

	return start, end, nil
}

func (c *CreateEventRequest) ToModel(user, imageURL string) (model.Event, error) {
	start, end, err := Schedule(c.StartsAt, c.EndsAt)
	if err != nil {
		return model.Event{}, err
	}

	if start == nil {
		return model.Event{}, failure.BadRequestFromString("starts_at is required")
	}

	active := true
	if c.Active != nil {
		active = *c.Active
	}

	featured := false
	if c.Featured != nil {
		featured = *c.Featured
	}

	return model.Event{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		Location:    c.Location,
		StartsAt:    *start,
		EndsAt:      end,
		Capacity:    c.Capacity,
		Price:       c.Price,
		Image:       imageURL,
		Featured:    featured,
		Active:      active,
		Metadata:    metadata(user),
	}, nil
}

type UpdateEventRequest struct {
	Title       string                `db:"title"       json:"title"       validate:"omitempty,max=150"`
	Description string                `db:"description" json:"description" validate:"omitempty,max=2000"`
	Location    string                `db:"location"    json:"location"    validate:"omitempty,max=150"`
	StartsAt    string                `json:"starts_at"                    validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	EndsAt      string                `json:"ends_at"                      validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Capacity    *int                  `db:"capacity"    json:"capacity"    validate:"omitempty,min=0"`
	Price       *float64              `db:"price"       json:"price"       validate:"omitempty,min=0"`
	Image       *multipart.FileHeader `json:"image"                        validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile   multipart.File        `json:"-"`
	Featured    *bool                 `db:"featured"    json:"featured"    validate:"omitempty"`
	Active      *bool                 `db:"active"      json:"active"      validate:"omitempty"`
}

type SetFeaturedRequest struct {
	Featured *bool `db:"featured" json:"featured" validate:"required"`
}

type EventResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	StartsAt    string  `json:"starts_at"`
	EndsAt      string  `json:"ends_at,omitempty"`
	Capacity    int     `json:"capacity"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Featured    bool    `json:"featured"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *EventResponse) FromModel(m model.Event) {
	r.ID = m.ID
	r.Title = m.Title
	r.Description = m.Description
	r.Location = m.Location
	r.StartsAt = m.StartsAt.Format(constant.DateFormat)

	if m.EndsAt != nil {
		r.EndsAt = m.EndsAt.Format(constant.DateFormat)
	}

	r.Capacity = m.Capacity
	r.Price = m.Price
	r.Image = m.Image
	r.Featured = m.Featured
	r.Active = m.Active
	r.Metadata.FromModel(m.Metadata)
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEventsResponse) FromModels(models []model.Event, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Events = make([]EventResponse, len(models))
	for i, m := range models {
		r.Events[i].FromModel(m)
	}
}

type CreateReservationRequest struct {
	Attendees int `json:"attendees" validate:"omitempty,min=1,max=20"`
	guestDto.IdentityHint
}

func (c *CreateReservationRequest) ToModel(eventID string, identity guestDto.Identity) model.Reservation {
	attendees := c.Attendees
	if attendees == 0 {
		attendees = 1
	}

	var guestID *string
	if identity.HasProfile() {
		guestID = &identity.GuestID
	}

	return model.Reservation{
		ID:         uuid.NewString(),
		EventID:    eventID,
		GuestID:    guestID,
		GuestName:  identity.Name,
		RoomNumber: identity.RoomNumber,
		Attendees:  attendees,
		Status:     model.StatusPending,
		Metadata:   metadata(identity.UserID),
	}
}

type UpdateReservationStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,max=30"`
}

type ReservationResponse struct {
	ID         string `json:"id"`
	EventID    string `json:"event_id"`
	GuestID    string `json:"guest_id,omitempty"`
	GuestName  string `json:"guest_name"`
	RoomNumber string `json:"room_number"`
	Attendees  int    `json:"attendees"`
	Status     string `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(m model.Reservation) {
	r.ID = m.ID
	r.EventID = m.EventID

	if m.GuestID != nil {
		r.GuestID = *m.GuestID
	}

	r.GuestName = m.GuestName
	r.RoomNumber = m.RoomNumber
	r.Attendees = m.Attendees
	r.Status = m.Status
	r.Metadata.FromModel(m.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, m := range models {
		r.Reservations[i].FromModel(m)
	}
}
