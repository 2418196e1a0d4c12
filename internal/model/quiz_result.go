package model

import (
	"time"

	"gorm.io/gorm"
)

// QuizResult is a finished assessment attempt. Answers holds the raw
// question-id to answer map as submitted; TimeSpent is in whole minutes.
type QuizResult struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	PublicID        string         `json:"publicId" gorm:"not null;uniqueIndex"`
	Answers         map[string]any `json:"answers" gorm:"serializer:json"`
	Score           int            `json:"score"`
	TimeSpent       int            `json:"timeSpent"`
	SkillLevel      string         `json:"skillLevel"`
	Recommendations []string       `json:"recommendations" gorm:"serializer:json"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
