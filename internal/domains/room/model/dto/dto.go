package dto

import (
	"concierge/internal/domains/room/model"
	"concierge/shared"
	gDto "concierge/shared/dto"
	gModel "concierge/shared/model"
	"concierge/shared/timezone"
	"mime/multipart"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomNumber  string                `json:"room_number" validate:"required,roomnumber"`
	Type        string                `json:"type"        validate:"required,max=50"`
	Status      string                `json:"status"      validate:"omitempty,oneof=available occupied maintenance"`
	Price       float64               `json:"price"       validate:"omitempty,min=0"`
	Capacity    int                   `json:"capacity"    validate:"omitempty,min=0"`
	Description string                `json:"description" validate:"omitempty,max=2000"`
	Image       *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile   multipart.File        `json:"-"`
	Featured    *bool                 `json:"featured"    validate:"omitempty"`
	Active      *bool                 `json:"active"      validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	featured := false
	if c.Featured != nil {
		featured = *c.Featured
	}

	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Room{
		ID:          uuid.NewString(),
		RoomNumber:  c.RoomNumber,
		Type:        c.Type,
		Status:      status,
		Price:       c.Price,
		Capacity:    c.Capacity,
		Description: c.Description,
		Image:       imageURL,
		Featured:    featured,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber  string                `db:"room_number" json:"room_number" validate:"omitempty,roomnumber"`
	Type        string                `db:"type"        json:"type"        validate:"omitempty,max=50"`
	Status      string                `db:"status"      json:"status"      validate:"omitempty,oneof=available occupied maintenance"`
	Price       *float64              `db:"price"       json:"price"       validate:"omitempty,min=0"`
	Capacity    *int                  `db:"capacity"    json:"capacity"    validate:"omitempty,min=0"`
	Description string                `db:"description" json:"description" validate:"omitempty,max=2000"`
	Image       *multipart.FileHeader `json:"image"                        validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile   multipart.File        `json:"-"`
	Featured    *bool                 `db:"featured"    json:"featured"    validate:"omitempty"`
	Active      *bool                 `db:"active"      json:"active"      validate:"omitempty"`
}

type SetFeaturedRequest struct {
	Featured *bool `db:"featured" json:"featured" validate:"required"`
}

type RoomResponse struct {
	ID          string  `json:"id"`
	RoomNumber  string  `json:"room_number"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Featured    bool    `json:"featured"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.Type = model.Type
	r.Status = model.Status
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Description = model.Description
	r.Image = model.Image
	r.Featured = model.Featured
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
