package repository

import (
	"github.com/talentgrid/interview-management-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInterviewRepository is a GORM implementation of InterviewRepository
type GormInterviewRepository struct {
	db *gorm.DB
}

// NewInterviewRepository creates a new InterviewRepository
func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &GormInterviewRepository{db: db}
}

// Create creates a new interview
func (r *GormInterviewRepository) Create(interview *models.Interview) error {
	return r.db.Create(interview).Error
}

// FindByID finds an interview by ID with optional preloading
func (r *GormInterviewRepository) FindByID(id uint64, preload ...string) (*models.Interview, error) {
	var interview models.Interview
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&interview, id).Error; err != nil {
		return nil, err
	}

	return &interview, nil
}

// List retrieves interviews matching the filter, newest first
func (r *GormInterviewRepository) List(filter InterviewFilter) ([]models.Interview, error) {
	query := r.db.Model(&models.Interview{})

	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.CandidateID != nil {
		query = query.Where("candidate_id = ?", *filter.CandidateID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var interviews []models.Interview
	if err := query.
		Preload("Candidate").
		Preload("Assignee").
		Order("date DESC").
		Find(&interviews).Error; err != nil {
		return nil, err
	}
	return interviews, nil
}

// Update updates an interview. Associations are omitted so preloaded
// candidate/assignee/question rows are never written back as a side effect.
func (r *GormInterviewRepository) Update(interview *models.Interview) error {
	return r.db.Omit(clause.Associations).Save(interview).Error
}

// Delete deletes an interview and its question rows in a transaction
func (r *GormInterviewRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("interview_id = ?", id).Delete(&models.InterviewQuestion{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Interview{}, id).Error
	})
}

// CreateQuestion attaches a question row to an interview
func (r *GormInterviewRepository) CreateQuestion(iq *models.InterviewQuestion) error {
	return r.db.Create(iq).Error
}

// FindQuestionByID finds an interview question row by ID
func (r *GormInterviewRepository) FindQuestionByID(id uint64) (*models.InterviewQuestion, error) {
	var iq models.InterviewQuestion
	if err := r.db.Preload("Question").Preload("Interview").First(&iq, id).Error; err != nil {
		return nil, err
	}
	return &iq, nil
}

// ListQuestions returns an interview's question rows with parent questions.
// A deleted parent question leaves iq.Question nil; callers must not assume
// the reference resolves.
func (r *GormInterviewRepository) ListQuestions(interviewID uint64) ([]models.InterviewQuestion, error) {
	var questions []models.InterviewQuestion
	if err := r.db.
		Preload("Question").
		Where("interview_id = ?", interviewID).
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// UpdateQuestion updates an interview question row
func (r *GormInterviewRepository) UpdateQuestion(iq *models.InterviewQuestion) error {
	return r.db.Omit(clause.Associations).Save(iq).Error
}

// DeleteQuestion removes an interview question row
func (r *GormInterviewRepository) DeleteQuestion(id uint64) error {
	return r.db.Delete(&models.InterviewQuestion{}, id).Error
}
