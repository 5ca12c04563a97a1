package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Resource lifecycle states.
const (
	ResourceStatusAvailable = "available"
	ResourceStatusClaimed   = "claimed"
	ResourceStatusRemoved   = "removed"
)

// Resource is a donated item listed by a donor. Once claimed, only the
// status field may change; removal is done by the owner or an administrator.
type Resource struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	OwnerID     string         `gorm:"type:text;not null;index" json:"owner_id"`
	Name        string         `gorm:"type:text;not null" json:"name"`
	Category    string         `gorm:"type:text" json:"category"`
	Description string         `gorm:"type:text" json:"description"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"`
	Quantity    int            `json:"quantity"`
	Status      string         `gorm:"type:text;not null;default:available" json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (r *Resource) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Status == "" {
		r.Status = ResourceStatusAvailable
	}
	return
}
