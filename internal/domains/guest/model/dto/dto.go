package dto

import (
	"concierge/internal/domains/guest/model"
	"concierge/shared"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	gModel "concierge/shared/model"
	"concierge/shared/timezone"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	SourceProfile  = "profile"
	SourceCache    = "cache"
	SourceDefaults = "defaults"
)

// IdentityHint is the identity a client remembered from an earlier visit.
type IdentityHint struct {
	GuestName  string `json:"guest_name,omitempty"  validate:"omitempty,max=100"`
	RoomNumber string `json:"room_number,omitempty" validate:"omitempty,roomnumber"`
}

// Identity is the resolved name, room and contact of the active guest.
type Identity struct {
	UserID     string `json:"user_id"`
	GuestID    string `json:"guest_id,omitempty"`
	Name       string `json:"name"`
	RoomNumber string `json:"room_number"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	NameSource string `json:"name_source"`
	RoomSource string `json:"room_source"`
}

func (i Identity) HasProfile() bool {
	return i.GuestID != constant.Empty
}

// ToModel builds the profile row created on the guest's first request.
func (i Identity) ToModel(user string) model.Guest {
	first, last := model.SplitName(i.Name)

	guest := model.Guest{
		ID:         uuid.NewString(),
		UserID:     i.UserID,
		FirstName:  first,
		LastName:   last,
		RoomNumber: i.RoomNumber,
		GuestType:  model.GuestTypeStandard,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if i.Email != constant.Empty {
		guest.Email = &i.Email
	}

	return guest
}

type CreateGuestRequest struct {
	UserID       string  `json:"user_id"        validate:"required,uuid"`
	FirstName    string  `json:"first_name"     validate:"required,max=100"`
	LastName     string  `json:"last_name"      validate:"omitempty,max=100"`
	RoomNumber   string  `json:"room_number"    validate:"omitempty,roomnumber"`
	Email        *string `json:"email"          validate:"omitempty,email"`
	Phone        *string `json:"phone"          validate:"omitempty,max=30"`
	GuestType    string  `json:"guest_type"     validate:"omitempty,oneof=standard vip member"`
	CheckInDate  string  `json:"check_in_date"  validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate string  `json:"check_out_date" validate:"omitempty,datetime=2006-01-02"`
}

func (c *CreateGuestRequest) ToModel(user string) (model.Guest, error) {
	checkIn, err := shared.ParseDate(c.CheckInDate)
	if err != nil {
		return model.Guest{}, fmt.Errorf("check_in_date: %w", err)
	}

	checkOut, err := shared.ParseDate(c.CheckOutDate)
	if err != nil {
		return model.Guest{}, fmt.Errorf("check_out_date: %w", err)
	}

	guestType := c.GuestType
	if guestType == constant.Empty {
		guestType = model.GuestTypeStandard
	}

	return model.Guest{
		ID:           uuid.NewString(),
		UserID:       c.UserID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		RoomNumber:   c.RoomNumber,
		Email:        c.Email,
		Phone:        c.Phone,
		GuestType:    guestType,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateGuestRequest struct {
	FirstName    string  `db:"first_name"  json:"first_name"     validate:"omitempty,max=100"`
	LastName     string  `db:"last_name"   json:"last_name"      validate:"omitempty,max=100"`
	RoomNumber   string  `db:"room_number" json:"room_number"    validate:"omitempty,roomnumber"`
	Email        *string `db:"email"       json:"email"          validate:"omitempty,email"`
	Phone        *string `db:"phone"       json:"phone"          validate:"omitempty,max=30"`
	GuestType    string  `db:"guest_type"  json:"guest_type"     validate:"omitempty,oneof=standard vip member"`
	CheckInDate  string  `json:"check_in_date"                   validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate string  `json:"check_out_date"                  validate:"omitempty,datetime=2006-01-02"`
}

// UpdateProfileRequest is what a guest may change on their own profile.
type UpdateProfileRequest struct {
	FirstName  string  `db:"first_name"  json:"first_name"  validate:"omitempty,max=100"`
	LastName   string  `db:"last_name"   json:"last_name"   validate:"omitempty,max=100"`
	RoomNumber string  `db:"room_number" json:"room_number" validate:"omitempty,roomnumber"`
	Email      *string `db:"email"       json:"email"       validate:"omitempty,email"`
	Phone      *string `db:"phone"       json:"phone"       validate:"omitempty,max=30"`
}

func (u *UpdateProfileRequest) ToModel(userID, email string) model.Guest {
	guest := model.Guest{
		ID:         uuid.NewString(),
		UserID:     userID,
		FirstName:  strings.TrimSpace(u.FirstName),
		LastName:   strings.TrimSpace(u.LastName),
		RoomNumber: u.RoomNumber,
		Email:      u.Email,
		Phone:      u.Phone,
		GuestType:  model.GuestTypeStandard,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}

	if guest.Email == nil && email != constant.Empty {
		guest.Email = &email
	}

	return guest
}

type GuestResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	FullName     string  `json:"full_name"`
	RoomNumber   string  `json:"room_number"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	GuestType    string  `json:"guest_type"`
	CheckInDate  string  `json:"check_in_date,omitempty"`
	CheckOutDate string  `json:"check_out_date,omitempty"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.FullName = model.FullName()
	r.RoomNumber = model.RoomNumber
	r.Email = model.Email
	r.Phone = model.Phone
	r.GuestType = model.GuestType

	if model.CheckInDate != nil {
		r.CheckInDate = timezone.Format(*model.CheckInDate, constant.DateOnlyFormat)
	}

	if model.CheckOutDate != nil {
		r.CheckOutDate = timezone.Format(*model.CheckOutDate, constant.DateOnlyFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
