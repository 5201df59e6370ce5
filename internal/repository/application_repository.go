package repository

import (
	"github.com/talentgrid/interview-management-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormApplicationRepository is a GORM implementation of ApplicationRepository
type GormApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &GormApplicationRepository{db: db}
}

// CreatePosition creates a job position
func (r *GormApplicationRepository) CreatePosition(position *models.Position) error {
	return r.db.Create(position).Error
}

// FindPositionByID finds a position by ID
func (r *GormApplicationRepository) FindPositionByID(id uint64) (*models.Position, error) {
	var position models.Position
	if err := r.db.First(&position, id).Error; err != nil {
		return nil, err
	}
	return &position, nil
}

// ListPositions returns positions, optionally only open ones
func (r *GormApplicationRepository) ListPositions(openOnly bool) ([]models.Position, error) {
	query := r.db.Model(&models.Position{})
	if openOnly {
		query = query.Where("status = ?", models.PositionStatusOpen)
	}

	var positions []models.Position
	if err := query.Order("created_at DESC").Find(&positions).Error; err != nil {
		return nil, err
	}
	return positions, nil
}

// UpdatePosition updates a position
func (r *GormApplicationRepository) UpdatePosition(position *models.Position) error {
	return r.db.Save(position).Error
}

// DeletePosition soft deletes a position
func (r *GormApplicationRepository) DeletePosition(id uint64) error {
	return r.db.Delete(&models.Position{}, id).Error
}

// CreateApplication creates an application
func (r *GormApplicationRepository) CreateApplication(application *models.Application) error {
	return r.db.Create(application).Error
}

// FindApplicationByID finds an application by ID with its position and candidate
func (r *GormApplicationRepository) FindApplicationByID(id uint64) (*models.Application, error) {
	var application models.Application
	if err := r.db.
		Preload("Position").
		Preload("Candidate").
		First(&application, id).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

// ListApplications returns applications, newest first
func (r *GormApplicationRepository) ListApplications() ([]models.Application, error) {
	var applications []models.Application
	if err := r.db.
		Preload("Position").
		Order("created_at DESC").
		Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

// UpdateApplication updates an application. Associations are omitted so a
// preloaded position or candidate is never written back as a side effect.
func (r *GormApplicationRepository) UpdateApplication(application *models.Application) error {
	return r.db.Omit(clause.Associations).Save(application).Error
}
