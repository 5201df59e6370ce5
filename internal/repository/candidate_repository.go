package repository

import (
	"github.com/talentgrid/interview-management-api/internal/models"
	"gorm.io/gorm"
)

// GormCandidateRepository is a GORM implementation of CandidateRepository
type GormCandidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository creates a new CandidateRepository
func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &GormCandidateRepository{db: db}
}

// Create creates a new candidate
func (r *GormCandidateRepository) Create(candidate *models.Candidate) error {
	return r.db.Create(candidate).Error
}

// FindByID finds a candidate by ID
func (r *GormCandidateRepository) FindByID(id uint64) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.First(&candidate, id).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

// List returns candidates, newest first, with the total count
func (r *GormCandidateRepository) List(offset, limit int) ([]models.Candidate, int64, error) {
	var candidates []models.Candidate

	query := r.db.Model(&models.Candidate{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("created_at DESC")
	if limit > 0 {
		listQuery = listQuery.Offset(offset).Limit(limit)
	}

	if err := listQuery.Find(&candidates).Error; err != nil {
		return nil, 0, err
	}

	return candidates, total, nil
}

// Update updates a candidate
func (r *GormCandidateRepository) Update(candidate *models.Candidate) error {
	return r.db.Save(candidate).Error
}

// Delete soft deletes a candidate
func (r *GormCandidateRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Candidate{}, id).Error
}
