package dto

import (
	guestDto "concierge/internal/domains/guest/model/dto"
	"concierge/internal/domains/spa/model"
	"concierge/shared"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	gModel "concierge/shared/model"
	"concierge/shared/timezone"
	"mime/multipart"

	"github.com/google/uuid"
)

type CreateTreatmentRequest struct {
	Name            string                `json:"name"             validate:"required,max=150"`
	Description     string                `json:"description"      validate:"omitempty,max=2000"`
	DurationMinutes int                   `json:"duration_minutes" validate:"omitempty,min=0,max=600"`
	Price           float64               `json:"price"            validate:"omitempty,min=0"`
	Image           *multipart.FileHeader `json:"image"            validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile       multipart.File        `json:"-"`
	Featured        *bool                 `json:"featured"         validate:"omitempty"`
	Active          *bool                 `json:"active"           validate:"omitempty"`
}

func (c *CreateTreatmentRequest) ToModel(user, imageURL string) model.Treatment {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	featured := false
	if c.Featured != nil {
		featured = *c.Featured
	}

	return model.Treatment{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Description:     c.Description,
		DurationMinutes: c.DurationMinutes,
		Price:           c.Price,
		Image:           imageURL,
		Featured:        featured,
		Active:          active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTreatmentRequest struct {
	Name            string                `db:"name"             json:"name"             validate:"omitempty,max=150"`
	Description     string                `db:"description"      json:"description"      validate:"omitempty,max=2000"`
	DurationMinutes *int                  `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,min=0,max=600"`
	Price           *float64              `db:"price"            json:"price"            validate:"omitempty,min=0"`
	Image           *multipart.FileHeader `json:"image"                                  validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile       multipart.File        `json:"-"`
	Featured        *bool                 `db:"featured"         json:"featured"         validate:"omitempty"`
	Active          *bool                 `db:"active"           json:"active"           validate:"omitempty"`
}

type SetFeaturedRequest struct {
	Featured *bool `db:"featured" json:"featured" validate:"required"`
}

type TreatmentResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	Image           string  `json:"image"`
	Featured        bool    `json:"featured"`
	Active          bool    `json:"active"`
	gDto.Metadata
}

func (r *TreatmentResponse) FromModel(m model.Treatment) {
	r.ID = m.ID
	r.Name = m.Name
	r.Description = m.Description
	r.DurationMinutes = m.DurationMinutes
	r.Price = m.Price
	r.Image = m.Image
	r.Featured = m.Featured
	r.Active = m.Active
	r.Metadata.FromModel(m.Metadata)
}

type GetTreatmentsResponse struct {
	Treatments []TreatmentResponse `json:"treatments"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetTreatmentsResponse) FromModels(models []model.Treatment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Treatments = make([]TreatmentResponse, len(models))
	for i, m := range models {
		r.Treatments[i].FromModel(m)
	}
}

type CreateBookingRequest struct {
	ScheduledAt string `json:"scheduled_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Notes       string `json:"notes"        validate:"omitempty,max=1000"`
	guestDto.IdentityHint
}

// ToModel builds the appointment. Appointments in the past are rejected.
func (c *CreateBookingRequest) ToModel(treatmentID string, identity guestDto.Identity) (model.Booking, error) {
	scheduledAt, err := shared.ParseDateTime(c.ScheduledAt)
	if err != nil || scheduledAt == nil {
		return model.Booking{}, failure.BadRequestFromString("scheduled_at must be an RFC3339 timestamp")
	}

	if !scheduledAt.After(timezone.Now()) {
		return model.Booking{}, failure.BadRequestFromString("scheduled_at must be in the future")
	}

	var guestID *string
	if identity.HasProfile() {
		guestID = &identity.GuestID
	}

	return model.Booking{
		ID:          uuid.NewString(),
		TreatmentID: treatmentID,
		GuestID:     guestID,
		GuestName:   identity.Name,
		RoomNumber:  identity.RoomNumber,
		ScheduledAt: *scheduledAt,
		Status:      model.StatusPending,
		Notes:       c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  identity.UserID,
			ModifiedBy: identity.UserID,
		},
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,max=30"`
}

type BookingResponse struct {
	ID          string `json:"id"`
	TreatmentID string `json:"treatment_id"`
	GuestID     string `json:"guest_id,omitempty"`
	GuestName   string `json:"guest_name"`
	RoomNumber  string `json:"room_number"`
	ScheduledAt string `json:"scheduled_at"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.TreatmentID = m.TreatmentID

	if m.GuestID != nil {
		r.GuestID = *m.GuestID
	}

	r.GuestName = m.GuestName
	r.RoomNumber = m.RoomNumber
	r.ScheduledAt = m.ScheduledAt.Format(constant.DateFormat)
	r.Status = m.Status
	r.Notes = m.Notes
	r.Metadata.FromModel(m.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, m := range models {
		r.Bookings[i].FromModel(m)
	}
}
