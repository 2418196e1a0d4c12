package repository

import (
	"github.com/codersden/backend/internal/model"
	"gorm.io/gorm"
)

type ContactMessageRepository interface {
	Create(message *model.ContactMessage) error
	FindAll() ([]model.ContactMessage, error)
}

type contactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (r *contactMessageRepository) Create(message *model.ContactMessage) error {
	return r.db.Create(message).Error
}

func (r *contactMessageRepository) FindAll() ([]model.ContactMessage, error) {
	var messages []model.ContactMessage
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}
