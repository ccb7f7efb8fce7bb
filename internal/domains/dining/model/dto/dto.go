package dto

import (
	"concierge/internal/domains/dining/model"
	guestDto "concierge/internal/domains/guest/model/dto"
	"concierge/shared"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	gModel "concierge/shared/model"
	"concierge/shared/timezone"
	"mime/multipart"

	"github.com/google/uuid"
)

type CreateRestaurantRequest struct {
	Name         string                `json:"name"          validate:"required,max=150"`
	Cuisine      string                `json:"cuisine"       validate:"omitempty,max=100"`
	Description  string                `json:"description"   validate:"omitempty,max=2000"`
	OpeningHours string                `json:"opening_hours" validate:"omitempty,max=100"`
	Location     string                `json:"location"      validate:"omitempty,max=150"`
	Image        *multipart.FileHeader `json:"image"         validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile    multipart.File        `json:"-"`
	Featured     *bool                 `json:"featured"      validate:"omitempty"`
	Active       *bool                 `json:"active"        validate:"omitempty"`
}

func (c *CreateRestaurantRequest) ToModel(user, imageURL string) model.Restaurant {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	featured := false
	if c.Featured != nil {
		featured = *c.Featured
	}

	return model.Restaurant{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Cuisine:      c.Cuisine,
		Description:  c.Description,
		OpeningHours: c.OpeningHours,
		Location:     c.Location,
		Image:        imageURL,
		Featured:     featured,
		Active:       active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRestaurantRequest struct {
	Name         string                `db:"name"          json:"name"          validate:"omitempty,max=150"`
	Cuisine      string                `db:"cuisine"       json:"cuisine"       validate:"omitempty,max=100"`
	Description  string                `db:"description"   json:"description"   validate:"omitempty,max=2000"`
	OpeningHours string                `db:"opening_hours" json:"opening_hours" validate:"omitempty,max=100"`
	Location     string                `db:"location"      json:"location"      validate:"omitempty,max=150"`
	Image        *multipart.FileHeader `json:"image"                            validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile    multipart.File        `json:"-"`
	Featured     *bool                 `db:"featured"      json:"featured"      validate:"omitempty"`
	Active       *bool                 `db:"active"        json:"active"        validate:"omitempty"`
}

type SetFeaturedRequest struct {
	Featured *bool `db:"featured" json:"featured" validate:"required"`
}

type RestaurantResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Cuisine      string `json:"cuisine"`
	Description  string `json:"description"`
	OpeningHours string `json:"opening_hours"`
	Location     string `json:"location"`
	Image        string `json:"image"`
	Featured     bool   `json:"featured"`
	Active       bool   `json:"active"`
	gDto.Metadata
}

func (r *RestaurantResponse) FromModel(m model.Restaurant) {
	r.ID = m.ID
	r.Name = m.Name
	r.Cuisine = m.Cuisine
	r.Description = m.Description
	r.OpeningHours = m.OpeningHours
	r.Location = m.Location
	r.Image = m.Image
	r.Featured = m.Featured
	r.Active = m.Active
	r.Metadata.FromModel(m.Metadata)
}

type GetRestaurantsResponse struct {
	Restaurants []RestaurantResponse `json:"restaurants"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetRestaurantsResponse) FromModels(models []model.Restaurant, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Restaurants = make([]RestaurantResponse, len(models))
	for i, m := range models {
		r.Restaurants[i].FromModel(m)
	}
}

type CreateReservationRequest struct {
	ReservedFor     string `json:"reserved_for"     validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	PartySize       int    `json:"party_size"       validate:"omitempty,min=1,max=30"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=1000"`
	guestDto.IdentityHint
}

func (c *CreateReservationRequest) ToModel(restaurantID string, identity guestDto.Identity) (model.Reservation, error) {
	reservedFor, err := shared.ParseDateTime(c.ReservedFor)
	if err != nil || reservedFor == nil {
		return model.Reservation{}, failure.BadRequestFromString("reserved_for must be an RFC3339 timestamp")
	}

	if !reservedFor.After(timezone.Now()) {
		return model.Reservation{}, failure.BadRequestFromString("reserved_for must be in the future")
	}

	partySize := c.PartySize
	if partySize == 0 {
		partySize = 1
	}

	var guestID *string
	if identity.HasProfile() {
		guestID = &identity.GuestID
	}

	return model.Reservation{
		ID:              uuid.NewString(),
		RestaurantID:    restaurantID,
		GuestID:         guestID,
		GuestName:       identity.Name,
		RoomNumber:      identity.RoomNumber,
		ReservedFor:     *reservedFor,
		PartySize:       partySize,
		SpecialRequests: c.SpecialRequests,
		Status:          model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  identity.UserID,
			ModifiedBy: identity.UserID,
		},
	}, nil
}

type UpdateReservationStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,max=30"`
}

type ReservationResponse struct {
	ID              string `json:"id"`
	RestaurantID    string `json:"restaurant_id"`
	GuestID         string `json:"guest_id,omitempty"`
	GuestName       string `json:"guest_name"`
	RoomNumber      string `json:"room_number"`
	ReservedFor     string `json:"reserved_for"`
	PartySize       int    `json:"party_size"`
	SpecialRequests string `json:"special_requests"`
	Status          string `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(m model.Reservation) {
	r.ID = m.ID
	r.RestaurantID = m.RestaurantID

	if m.GuestID != nil {
		r.GuestID = *m.GuestID
	}

	r.GuestName = m.GuestName
	r.RoomNumber = m.RoomNumber
	r.ReservedFor = m.ReservedFor.Format(constant.DateFormat)
	r.PartySize = m.PartySize
	r.SpecialRequests = m.SpecialRequests
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
