package model

import (
	"time"

	"gorm.io/gorm"
)

// NewsletterSignup is one newsletter subscription. Source records which page
// or campaign the signup came from; it defaults to "Website".
type NewsletterSignup struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	PublicID  string         `json:"publicId" gorm:"not null;uniqueIndex"`
	Email     string         `json:"email" gorm:"not null;index"`
	Source    string         `json:"source"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
