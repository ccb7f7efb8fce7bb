package dto

import (
	"concierge/internal/domains/booking/model"
	guestDto "concierge/internal/domains/guest/model/dto"
	"concierge/shared"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	gModel "concierge/shared/model"
	"concierge/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID     string `json:"room_id"     validate:"required,uuid"`
	CheckIn    string `json:"check_in"    validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"check_out"   validate:"required,datetime=2006-01-02"`
	Adults     int    `json:"adults"      validate:"omitempty,min=1,max=10"`
	GuestPhone string `json:"guest_phone" validate:"omitempty,max=20"`
	Notes      string `json:"notes"       validate:"omitempty,max=1000"`
	guestDto.IdentityHint
}

// ToModel builds the booking for the resolved guest. Check-out must fall after check-in.
func (c *CreateBookingRequest) ToModel(identity guestDto.Identity) (model.Booking, error) {
	checkIn, err := shared.ParseDate(c.CheckIn)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("check_in must be a date (YYYY-MM-DD)")
	}

	checkOut, err := shared.ParseDate(c.CheckOut)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("check_out must be a date (YYYY-MM-DD)")
	}

	if checkIn == nil || checkOut == nil || !checkOut.After(*checkIn) {
		return model.Booking{}, failure.BadRequestFromString("check_out must be after check_in")
	}

	adults := c.Adults
	if adults == 0 {
		adults = 1
	}

	phone := c.GuestPhone
	if phone == constant.Empty {
		phone = identity.Phone
	}

	var guestID *string
	if identity.HasProfile() {
		guestID = &identity.GuestID
	}

	return model.Booking{
		ID:         uuid.NewString(),
		RoomID:     c.RoomID,
		GuestID:    guestID,
		GuestName:  identity.Name,
		GuestEmail: identity.Email,
		GuestPhone: phone,
		CheckIn:    *checkIn,
		CheckOut:   *checkOut,
		Adults:     adults,
		Notes:      c.Notes,
		Status:     model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  identity.UserID,
			ModifiedBy: identity.UserID,
		},
	}, nil
}

type UpdateBookingRequest struct {
	CheckIn    string `json:"check_in"                           validate:"omitempty,datetime=2006-01-02"`
	CheckOut   string `json:"check_out"                          validate:"omitempty,datetime=2006-01-02"`
	Adults     int    `db:"adults"      json:"adults"      validate:"omitempty,min=1,max=10"`
	GuestPhone string `db:"guest_phone" json:"guest_phone" validate:"omitempty,max=20"`
	Notes      string `db:"notes"       json:"notes"       validate:"omitempty,max=1000"`
	Status     string `db:"status"      json:"status"      validate:"omitempty,oneof=pending confirmed cancelled"`
}

type BookingResponse struct {
	ID         string `json:"id"`
	RoomID     string `json:"room_id"`
	GuestID    string `json:"guest_id,omitempty"`
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	GuestPhone string `json:"guest_phone"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Adults     int    `json:"adults"`
	Notes      string `json:"notes"`
	Status     string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID

	if model.GuestID != nil {
		r.GuestID = *model.GuestID
	}

	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.Adults = model.Adults
	r.Notes = model.Notes
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
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
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
