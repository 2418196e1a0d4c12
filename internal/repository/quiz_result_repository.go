package repository

import (
	"github.com/codersden/backend/internal/model"
	"gorm.io/gorm"
)

type QuizResultRepository interface {
	Create(result *model.QuizResult) error
	FindByPublicID(publicID string) (*model.QuizResult, error)
	FindAll() ([]model.QuizResult, error)
}

type quizResultRepository struct {
	db *gorm.DB
}

func NewQuizResultRepository(db *gorm.DB) QuizResultRepository {
	return &quizResultRepository{db: db}
}

func (r *quizResultRepository) Create(result *model.QuizResult) error {
	return r.db.Create(result).Error
}

func (r *quizResultRepository) FindByPublicID(publicID string) (*model.QuizResult, error) {
	var result model.QuizResult
	err := r.db.Where("public_id = ?", publicID).First(&result).Error
	return &result, err
}

func (r *quizResultRepository) FindAll() ([]model.QuizResult, error) {
	var results []model.QuizResult
	err := r.db.Order("created_at DESC").Find(&results).Error
	return results, err
}
