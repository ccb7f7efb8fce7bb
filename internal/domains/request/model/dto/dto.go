package dto

import (
	"concierge/internal/domains/request/model"
	"concierge/shared"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	gModel "concierge/shared/model"
	"concierge/shared/timezone"

	"github.com/google/uuid"
)

func metadata(user string) gModel.Metadata {
	now := timezone.Now()

	return gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

func optional(value string) *string {
	if value == constant.Empty {
		return nil
	}

	return &value
}

func deref(value *string) string {
	if value == nil {
		return constant.Empty
	}

	return *value
}

type CreateCategoryRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Icon        string `json:"icon"        validate:"omitempty,max=50"`
	SortOrder   int    `json:"sort_order"  validate:"omitempty,min=0"`
	IsActive    *bool  `json:"is_active"`
}

func (c *CreateCategoryRequest) ToModel(user string) model.Category {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	return model.Category{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		SortOrder:   c.SortOrder,
		IsActive:    active,
		Metadata:    metadata(user),
	}
}

type UpdateCategoryRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty,max=500"`
	Icon        string `db:"icon"        json:"icon"        validate:"omitempty,max=50"`
	SortOrder   *int   `db:"sort_order"  json:"sort_order"  validate:"omitempty,min=0"`
	IsActive    *bool  `db:"is_active"   json:"is_active"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	SortOrder   int    `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
	gDto.Metadata
}

func (r *CategoryResponse) FromModel(m model.Category) {
	r.ID = m.ID
	r.Name = m.Name
	r.Description = m.Description
	r.Icon = m.Icon
	r.SortOrder = m.SortOrder
	r.IsActive = m.IsActive
	r.Metadata.FromModel(m.Metadata)
}

type GetCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetCategoriesResponse) FromModels(models []model.Category, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Categories = make([]CategoryResponse, len(models))
	for i, mod := range models {
		r.Categories[i].FromModel(mod)
	}
}

type CreateItemRequest struct {
	CategoryID  string `json:"category_id" validate:"required,uuid"`
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool  `json:"is_active"`
}

func (c *CreateItemRequest) ToModel(user string) model.Item {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	return model.Item{
		ID:          uuid.NewString(),
		CategoryID:  c.CategoryID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    active,
		Metadata:    metadata(user),
	}
}

type UpdateItemRequest struct {
	CategoryID  string `db:"category_id" json:"category_id" validate:"omitempty,uuid"`
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty,max=500"`
	IsActive    *bool  `db:"is_active"   json:"is_active"`
}

type ItemResponse struct {
	ID          string `json:"id"`
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
	gDto.Metadata
}

func (r *ItemResponse) FromModel(m model.Item) {
	r.ID = m.ID
	r.CategoryID = m.CategoryID
	r.Name = m.Name
	r.Description = m.Description
	r.IsActive = m.IsActive
	r.Metadata.FromModel(m.Metadata)
}

type GetItemsResponse struct {
	Items     []ItemResponse `json:"items"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetItemsResponse) FromModels(models []model.Item, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]ItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}

// RecordRequest carries an already resolved service request into storage.
// RecordRequest is written on behalf of UserID, who becomes the row's creator.
type RecordRequest struct {
	UserID        string
	GuestID       string
	RoomID        string
	RoomNumber    string
	GuestName     string
	Type          string
	Description   string
	CategoryID    string
	ItemID        string
	ChatMessageID string
}

func (r *RecordRequest) ToModel(user string) model.ServiceRequest {
	return model.ServiceRequest{
		ID:            uuid.NewString(),
		GuestID:       optional(r.GuestID),
		RoomID:        optional(r.RoomID),
		RoomNumber:    r.RoomNumber,
		GuestName:     r.GuestName,
		Type:          r.Type,
		Description:   r.Description,
		CategoryID:    optional(r.CategoryID),
		ItemID:        optional(r.ItemID),
		ChatMessageID: optional(r.ChatMessageID),
		Status:        model.StatusPending,
		Metadata:      metadata(user),
	}
}

type UpdateStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,max=30"`
}

type ServiceRequestResponse struct {
	ID            string `json:"id"`
	GuestID       string `json:"guest_id,omitempty"`
	RoomID        string `json:"room_id,omitempty"`
	RoomNumber    string `json:"room_number"`
	GuestName     string `json:"guest_name"`
	Type          string `json:"type"`
	Description   string `json:"description"`
	CategoryID    string `json:"category_id,omitempty"`
	ItemID        string `json:"item_id,omitempty"`
	ChatMessageID string `json:"chat_message_id,omitempty"`
	Status        string `json:"status"`
	gDto.Metadata
}

func (r *ServiceRequestResponse) FromModel(m model.ServiceRequest) {
	r.ID = m.ID
	r.GuestID = deref(m.GuestID)
	r.RoomID = deref(m.RoomID)
	r.RoomNumber = m.RoomNumber
	r.GuestName = m.GuestName
	r.Type = m.Type
	r.Description = m.Description
	r.CategoryID = deref(m.CategoryID)
	r.ItemID = deref(m.ItemID)
	r.ChatMessageID = deref(m.ChatMessageID)
	r.Status = m.Status
	r.Metadata.FromModel(m.Metadata)
}

type GetServiceRequestsResponse struct {
	Requests  []ServiceRequestResponse `json:"requests"`
	TotalPage int                      `json:"total_page"`
	TotalData int                      `json:"total_data"`
}

func (r *GetServiceRequestsResponse) FromModels(models []model.ServiceRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Requests = make([]ServiceRequestResponse, len(models))
	for i, mod := range models {
		r.Requests[i].FromModel(mod)
	}
}
