package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// WantedResource is a need listing: an item a participant is looking for,
// published for donors to browse. It is independent of requests against
// donated resources and grants no chat standing on its own.
type WantedResource struct {
	ID             string         `gorm:"primaryKey" json:"id"`
	OwnerID        string         `gorm:"type:text;not null;index" json:"owner_id"`
	Name           string         `gorm:"type:text;not null" json:"name"`
	Category       string         `gorm:"type:text" json:"category"`
	CustomCategory string         `gorm:"type:text" json:"custom_category,omitempty"`
	Description    string         `gorm:"type:text" json:"description"`
	Location       string         `gorm:"type:text" json:"location"`
	Images         pq.StringArray `gorm:"type:text[]" json:"images"`
	Quantity       int            `json:"quantity"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (w *WantedResource) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return
}
