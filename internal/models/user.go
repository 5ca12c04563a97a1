package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a participant on the platform. A user becomes a donor by
// publishing a resource and a requester by claiming one; the account itself
// carries no role.
type User struct {
	ID         string `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"type:text;not null" json:"name"`
	Email      string `gorm:"uniqueIndex" json:"email"`
	ProfilePic string `gorm:"type:text" json:"profile_pic,omitempty"`
}

// BeforeCreate is a GORM hook that assigns a fresh UUID when the record has
// no ID yet.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
