package repository

import (
	"github.com/talentgrid/interview-management-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// List returns all users
	List() ([]models.User, error)

	// Update updates a user
	Update(user *models.User) error

	// Delete soft deletes a user
	Delete(id uint64) error

	// CountActiveAdmins counts users with the admin role that are active
	CountActiveAdmins() (int64, error)
}

// QuestionFilter holds the conjunctive equality predicates for question
// queries. Nil fields impose no constraint.
type QuestionFilter struct {
	TechnologyID      *uint64
	ExperienceLevelID *uint64
	QuestionTypeID    *uint64
}

// QuestionRepository defines the interface for question bank data access
type QuestionRepository interface {
	// Create creates a new question
	Create(question *models.Question) error

	// FindByID finds a question by ID
	FindByID(id uint64) (*models.Question, error)

	// List retrieves questions matching the filter
	List(filter QuestionFilter) ([]models.Question, error)

	// Update updates a question
	Update(question *models.Question) error

	// Delete soft deletes a question. Existing interview questions keep
	// their dangling reference; see the scoring engine for how orphans
	// are handled.
	Delete(id uint64) error

	// ListTechnologies returns the technology lookup table
	ListTechnologies() ([]models.Technology, error)

	// ListExperienceLevels returns the experience level lookup table
	ListExperienceLevels() ([]models.ExperienceLevel, error)

	// ListQuestionTypes returns the question type lookup table
	ListQuestionTypes() ([]models.QuestionType, error)
}

// CandidateRepository defines the interface for candidate data access
type CandidateRepository interface {
	// Create creates a new candidate
	Create(candidate *models.Candidate) error

	// FindByID finds a candidate by ID
	FindByID(id uint64) (*models.Candidate, error)

	// List returns candidates, newest first, with the total count
	List(offset, limit int) ([]models.Candidate, int64, error)

	// Update updates a candidate
	Update(candidate *models.Candidate) error

	// Delete soft deletes a candidate
	Delete(id uint64) error
}

// InterviewFilter holds filtering options for listing interviews
type InterviewFilter struct {
	AssigneeID  *uint64
	CandidateID *uint64
	Status      *models.InterviewStatus
}

// InterviewRepository defines the interface for interview aggregate data
// access, including the owned interview question rows.
type InterviewRepository interface {
	// Create creates a new interview
	Create(interview *models.Interview) error

	// FindByID finds an interview by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Interview, error)

	// List retrieves interviews matching the filter, newest first
	List(filter InterviewFilter) ([]models.Interview, error)

	// Update updates an interview
	Update(interview *models.Interview) error

	// Delete deletes an interview together with its question rows
	Delete(id uint64) error

	// CreateQuestion attaches a question row to an interview
	CreateQuestion(iq *models.InterviewQuestion) error

	// FindQuestionByID finds an interview question row by ID
	FindQuestionByID(id uint64) (*models.InterviewQuestion, error)

	// ListQuestions returns an interview's question rows with their
	// parent questions preloaded
	ListQuestions(interviewID uint64) ([]models.InterviewQuestion, error)

	// UpdateQuestion updates an interview question row
	UpdateQuestion(iq *models.InterviewQuestion) error

	// DeleteQuestion removes an interview question row
	DeleteQuestion(id uint64) error
}

// ApplicationRepository defines the interface for job board data access
type ApplicationRepository interface {
	// CreatePosition creates a job position
	CreatePosition(position *models.Position) error

	// FindPositionByID finds a position by ID
	FindPositionByID(id uint64) (*models.Position, error)

	// ListPositions returns positions, optionally only open ones
	ListPositions(openOnly bool) ([]models.Position, error)

	// UpdatePosition updates a position
	UpdatePosition(position *models.Position) error

	// DeletePosition soft deletes a position
	DeletePosition(id uint64) error

	// CreateApplication creates an application
	CreateApplication(application *models.Application) error

	// FindApplicationByID finds an application by ID
	FindApplicationByID(id uint64) (*models.Application, error)

	// ListApplications returns applications, newest first
	ListApplications() ([]models.Application, error)

	// UpdateApplication updates an application
	UpdateApplication(application *models.Application) error
}
