package dto_test

import (
	"testing"

	"concierge/internal/domains/destination/model"
	"concierge/internal/domains/destination/model/dto"
	gModel "concierge/shared/model"
	"concierge/shared/timezone"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestCreateDestinationRequest_ToModel(t *testing.T) {
	req := dto.CreateDestinationRequest{
		Title:    "Old Town Market",
		Distance: "1.2 km",
		Images:   []string{"https://example.com/market.jpg"},
		Featured: true,
	}

	destination := req.ToModel("admin-1")

	assert.NotEmpty(t, destination.ID)
	assert.Equal(t, req.Title, destination.Title)
	assert.Equal(t, req.Distance, destination.Distance)
	assert.Equal(t, pq.StringArray{"https://example.com/market.jpg"}, destination.Images)
	assert.True(t, destination.Featured)
	assert.Equal(t, "admin-1", destination.CreatedBy)
	assert.False(t, destination.CreatedAt.IsZero())
}

func TestCreateDestinationRequest_ToModel_NoImages(t *testing.T) {
	req := dto.CreateDestinationRequest{Title: "Beach"}

	destination := req.ToModel("admin-1")

	assert.NotNil(t, destination.Images)
	assert.Empty(t, destination.Images)
}

func TestDestinationResponse_FromModel(t *testing.T) {
	now := timezone.Now()

	var response dto.DestinationResponse
	response.FromModel(model.Destination{
		ID:       "d-1",
		Title:    "Temple",
		Images:   nil,
		Metadata: gModel.Metadata{CreatedAt: now, ModifiedAt: now, CreatedBy: "admin"},
	})

	assert.Equal(t, "d-1", response.ID)
	assert.Equal(t, []string{}, response.Images)
	assert.Equal(t, "admin", response.CreatedBy)
}

func TestGetDestinationsResponse_FromModels(t *testing.T) {
	var response dto.GetDestinationsResponse
	response.FromModels([]model.Destination{{ID: "d-1"}, {ID: "d-2"}}, 12, 5)

	assert.Len(t, response.Destinations, 2)
	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 3, response.TotalPage)
}
