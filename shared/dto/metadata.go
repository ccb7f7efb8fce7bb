package dto

import (
	"concierge/shared/constant"
	"concierge/shared/model"
	"concierge/shared/timezone"
)

// Metadata is the audit trail shown on every resource. CreatedBy is empty for rows
// written by internal callers.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(src model.Metadata) {
	*m = Metadata{
		CreatedAt:  timezone.Format(src.CreatedAt, constant.DateFormat),
		ModifiedAt: timezone.Format(src.ModifiedAt, constant.DateFormat),
		CreatedBy:  src.CreatedBy,
		ModifiedBy: src.ModifiedBy,
	}
}

// OwnedBy reports whether userID created the resource.
func (m Metadata) OwnedBy(userID string) bool {
	return userID != constant.Empty && m.CreatedBy == userID
}
