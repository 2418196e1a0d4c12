package repository

import (
	"github.com/codersden/backend/internal/model"
	"gorm.io/gorm"
)

type NewsletterRepository interface {
	Create(signup *model.NewsletterSignup) error
	FindByEmail(email string) (*model.NewsletterSignup, error)
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) Create(signup *model.NewsletterSignup) error {
	return r.db.Create(signup).Error
}

func (r *newsletterRepository) FindByEmail(email string) (*model.NewsletterSignup, error) {
	var signup model.NewsletterSignup
	err := r.db.Where("email = ?", email).First(&signup).Error
	return &signup, err
}
