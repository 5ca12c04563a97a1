package models

import (
	"time"

	"gorm.io/gorm"
)

// ContactMessage is a stored contact-form submission.
type ContactMessage struct {
	gorm.Model

	UserID  string `gorm:"type:text;not null;index"`
	Name    string `gorm:"type:text;not null"`
	Email   string `gorm:"type:text;not null"`
	Subject string `gorm:"type:text;not null"`
	Message string `gorm:"type:text;not null"`

	SubmittedAt time.Time
}
