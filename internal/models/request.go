package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Request records a requester's claim of interest in a specific resource.
// The resource metadata is copied in at creation time so the request stays
// self-describing even if the resource is later edited or deleted. A request
// is never mutated; only an administrator may delete one.
//
// The composite unique index backs the one-request-per-(requester, resource)
// rule at the storage layer.
type Request struct {
	ID          string `gorm:"primaryKey" json:"id"`
	RequesterID string `gorm:"type:text;not null;uniqueIndex:idx_requester_resource;index" json:"requester_id"`
	ResourceID  string `gorm:"type:text;not null;uniqueIndex:idx_requester_resource;index" json:"resource_id"`
	DonorID     string `gorm:"type:text;not null;index" json:"donor_id"`

	// Snapshot of the resource at request time.
	ResourceName string         `gorm:"type:text;not null" json:"resource_name"`
	Category     string         `gorm:"type:text" json:"category"`
	Description  string         `gorm:"type:text" json:"description"`
	Images       pq.StringArray `gorm:"type:text[]" json:"images"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *Request) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}
