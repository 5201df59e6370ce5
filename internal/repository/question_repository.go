package repository

import (
	"github.com/talentgrid/interview-management-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormQuestionRepository is a GORM implementation of QuestionRepository
type GormQuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new QuestionRepository
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &GormQuestionRepository{db: db}
}

// Create creates a new question
func (r *GormQuestionRepository) Create(question *models.Question) error {
	return r.db.Create(question).Error
}

// FindByID finds a question by ID with its lookups preloaded
func (r *GormQuestionRepository) FindByID(id uint64) (*models.Question, error) {
	var question models.Question
	if err := r.db.
		Preload("Technology").
		Preload("ExperienceLevel").
		Preload("QuestionType").
		First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// List retrieves questions matching the filter. Omitted filter fields
// impose no constraint; present fields are combined conjunctively.
func (r *GormQuestionRepository) List(filter QuestionFilter) ([]models.Question, error) {
	query := r.db.Model(&models.Question{})

	if filter.TechnologyID != nil {
		query = query.Where("technology_id = ?", *filter.TechnologyID)
	}
	if filter.ExperienceLevelID != nil {
		query = query.Where("experience_level_id = ?", *filter.ExperienceLevelID)
	}
	if filter.QuestionTypeID != nil {
		query = query.Where("question_type_id = ?", *filter.QuestionTypeID)
	}

	var questions []models.Question
	if err := query.
		Preload("Technology").
		Preload("ExperienceLevel").
		Preload("QuestionType").
		Order("questions.id ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Update updates a question. Associations are omitted so the preloaded
// lookup rows are never written back.
func (r *GormQuestionRepository) Update(question *models.Question) error {
	return r.db.Omit(clause.Associations).Save(question).Error
}

// Delete soft deletes a question without touching interview question rows
func (r *GormQuestionRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Question{}, id).Error
}

// ListTechnologies returns the technology lookup table
func (r *GormQuestionRepository) ListTechnologies() ([]models.Technology, error) {
	var technologies []models.Technology
	if err := r.db.Order("id ASC").Find(&technologies).Error; err != nil {
		return nil, err
	}
	return technologies, nil
}

// ListExperienceLevels returns the experience level lookup table
func (r *GormQuestionRepository) ListExperienceLevels() ([]models.ExperienceLevel, error) {
	var levels []models.ExperienceLevel
	if err := r.db.Order("id ASC").Find(&levels).Error; err != nil {
		return nil, err
	}
	return levels, nil
}

// ListQuestionTypes returns the question type lookup table
func (r *GormQuestionRepository) ListQuestionTypes() ([]models.QuestionType, error) {
	var types []models.QuestionType
	if err := r.db.Order("id ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
