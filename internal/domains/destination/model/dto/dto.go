package dto

import (
	"concierge/internal/domains/destination/model"
	"concierge/shared"
	gDto "concierge/shared/dto"
	gModel "concierge/shared/model"
	"concierge/shared/timezone"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateDestinationRequest struct {
	Title       string   `json:"title"       validate:"required,min=3,max=150"`
	Description string   `json:"description" validate:"omitempty,max=4000"`
	Distance    string   `json:"distance"    validate:"omitempty,max=50"`
	Images      []string `json:"images"      validate:"omitempty,dive,url"`
	Featured    bool     `json:"featured"`
}

func (c *CreateDestinationRequest) ToModel(user string) model.Destination {
	images := pq.StringArray(c.Images)
	if images == nil {
		images = pq.StringArray{}
	}

	return model.Destination{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		Distance:    c.Distance,
		Images:      images,
		Featured:    c.Featured,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateDestinationRequest struct {
	Title       string         `db:"title"       json:"title"       validate:"omitempty,min=3,max=150"`
	Description string         `db:"description" json:"description" validate:"omitempty,max=4000"`
	Distance    string         `db:"distance"    json:"distance"    validate:"omitempty,max=50"`
	Images      pq.StringArray `db:"images"      json:"images"      validate:"omitempty,dive,url" swaggertype:"array,string"`
}

type SetFeaturedRequest struct {
	Featured *bool `db:"featured" json:"featured" validate:"required"`
}

type DestinationResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Distance    string   `json:"distance"`
	Images      []string `json:"images"`
	Featured    bool     `json:"featured"`
	gDto.Metadata
}

func (r *DestinationResponse) FromModel(m model.Destination) {
	r.ID = m.ID
	r.Title = m.Title
	r.Description = m.Description
	r.Distance = m.Distance
	r.Images = []string(m.Images)

	if r.Images == nil {
		r.Images = []string{}
	}

	r.Featured = m.Featured
	r.Metadata.FromModel(m.Metadata)
}

type GetDestinationsResponse struct {
	Destinations []DestinationResponse `json:"destinations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetDestinationsResponse) FromModels(models []model.Destination, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Destinations = make([]DestinationResponse, len(models))
	for i, m := range models {
		r.Destinations[i].FromModel(m)
	}
}

type AddImageRequest struct {
	Image     *multipart.FileHeader `json:"image" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
}

type AddImageResponse struct {
	URL    string   `json:"url"`
	Images []string `json:"images"`
}

type RemoveImagesRequest struct {
	ImageURLs []string `json:"image_urls" validate:"required,min=1,dive,url"`
}
