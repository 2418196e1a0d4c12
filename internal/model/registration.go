package model

import (
	"time"

	"gorm.io/gorm"
)

// Registration is a community membership application captured from the
// registration funnel. PublicID is the identifier echoed back to the client.
type Registration struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	PublicID          string         `json:"publicId" gorm:"not null;uniqueIndex"`
	FullName          string         `json:"fullName" gorm:"not null"`
	Email             string         `json:"email" gorm:"not null;index"`
	PhoneNumber       string         `json:"phoneNumber" gorm:"not null"`
	YearsOfExperience int            `json:"yearsOfExperience"`
	LearningGoals     []string       `json:"learningGoals" gorm:"serializer:json"`
	CurrentSkills     []string       `json:"currentSkills" gorm:"serializer:json"`
	Availability      []string       `json:"availability" gorm:"serializer:json"`
	Motivation        string         `json:"motivation" gorm:"type:text"`
	QuizScore         *int           `json:"quizScore,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}
