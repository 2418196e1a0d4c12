package repository

import (
	"github.com/codersden/backend/internal/model"
	"gorm.io/gorm"
)

type RegistrationRepository interface {
	Create(registration *model.Registration) error
	FindByPublicID(publicID string) (*model.Registration, error)
	FindAll() ([]model.Registration, error)
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(registration *model.Registration) error {
	return r.db.Create(registration).Error
}

func (r *registrationRepository) FindByPublicID(publicID string) (*model.Registration, error) {
	var registration model.Registration
	err := r.db.Where("public_id = ?", publicID).First(&registration).Error
	return &registration, err
}

func (r *registrationRepository) FindAll() ([]model.Registration, error) {
	var registrations []model.Registration
	err := r.db.Order("created_at DESC").Find(&registrations).Error
	return registrations, err
}
