package model

import (
	"concierge/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "destinations"
	EntityName = "destination"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDistance    = "distance"
	FieldImages      = "images"
	FieldFeatured    = "featured"
)

// Destination is a nearby attraction recommended to guests.
type Destination struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Distance    string         `db:"distance"`
	Images      pq.StringArray `db:"images"`
	Featured    bool           `db:"featured"`
	model.Metadata
}
