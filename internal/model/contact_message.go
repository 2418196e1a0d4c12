package model

import (
	"time"

	"gorm.io/gorm"
)

// ContactMessage is one contact-form submission.
type ContactMessage struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	PublicID  string         `json:"publicId" gorm:"not null;uniqueIndex"`
	Name      string         `json:"name" gorm:"not null"`
	Email     string         `json:"email" gorm:"not null;index"`
	Subject   string         `json:"subject" gorm:"not null"`
	Type      string         `json:"type" gorm:"not null"` // general, partnership, support, feedback
	Message   string         `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
