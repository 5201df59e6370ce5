package services

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/talentgrid/interview-management-api/internal/constants"
	"github.com/talentgrid/interview-management-api/internal/models"
	"github.com/talentgrid/interview-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrQuestionNotFound      = errors.New("question not found")
	ErrQuestionTitleRequired = errors.New("question title is required")
)

// QuestionService handles question bank business logic.
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
	}
}

// RandomQuestionsInput holds the filter and draw size for a random draw.
type RandomQuestionsInput struct {
	Filter repository.QuestionFilter
	Count  int
}

// ListQuestions returns questions matching the filter.
func (s *QuestionService) ListQuestions(filter repository.QuestionFilter) ([]models.Question, error) {
	questions, err := s.questionRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

// GetRandomQuestions applies the filter, deduplicates by id, shuffles and
// truncates to the requested count (default 3). The dedup is defensive:
// the filter should already produce unique rows, but the contract
// guarantees unique ids regardless.
func (s *QuestionService) GetRandomQuestions(input RandomQuestionsInput) ([]models.Question, error) {
	count := input.Count
	if count <= 0 {
		count = constants.DefaultRandomQuestionCount
	}

	questions, err := s.questionRepo.List(input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	seen := make(map[uint64]bool, len(questions))
	unique := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		if seen[q.ID] {
			continue
		}
		seen[q.ID] = true
		unique = append(unique, q)
	}

	rand.Shuffle(len(unique), func(i, j int) {
		unique[i], unique[j] = unique[j], unique[i]
	})

	if len(unique) > count {
		unique = unique[:count]
	}

	return unique, nil
}

// GetQuestion retrieves a question by ID.
func (s *QuestionService) GetQuestion(id uint64) (*models.Question, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to find question: %w", err)
	}
	return question, nil
}

// CreateQuestion adds a question to the bank.
func (s *QuestionService) CreateQuestion(question *models.Question) error {
	if question.Title == "" {
		return ErrQuestionTitleRequired
	}
	if err := s.questionRepo.Create(question); err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// UpdateQuestionInput represents a partial question edit.
type UpdateQuestionInput struct {
	Title                   *string
	Content                 *string
	Answer                  *string
	TechnologyID            *uint64
	ExperienceLevelID       *uint64
	QuestionTypeID          *uint64
	EvaluatesTechnical      *bool
	EvaluatesProblemSolving *bool
	EvaluatesCommunication  *bool
}

// UpdateQuestion applies a partial edit to a bank question.
func (s *QuestionService) UpdateQuestion(id uint64, input UpdateQuestionInput) (*models.Question, error) {
	question, err := s.GetQuestion(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrQuestionTitleRequired
		}
		question.Title = *input.Title
	}
	if input.Content != nil {
		question.Content = *input.Content
	}
	if input.Answer != nil {
		question.Answer = *input.Answer
	}
	if input.TechnologyID != nil {
		question.TechnologyID = *input.TechnologyID
	}
	if input.ExperienceLevelID != nil {
		question.ExperienceLevelID = *input.ExperienceLevelID
	}
	if input.QuestionTypeID != nil {
		question.QuestionTypeID = *input.QuestionTypeID
	}
	if input.EvaluatesTechnical != nil {
		question.EvaluatesTechnical = *input.EvaluatesTechnical
	}
	if input.EvaluatesProblemSolving != nil {
		question.EvaluatesProblemSolving = *input.EvaluatesProblemSolving
	}
	if input.EvaluatesCommunication != nil {
		question.EvaluatesCommunication = *input.EvaluatesCommunication
	}

	if err := s.questionRepo.Update(question); err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}
	return question, nil
}

// DeleteQuestion removes a question from the bank. Interview question rows
// referencing it are left in place and drop out of scoring.
func (s *QuestionService) DeleteQuestion(id uint64) error {
	if _, err := s.GetQuestion(id); err != nil {
		return err
	}
	if err := s.questionRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return nil
}

// ListTechnologies returns the technology lookup table.
func (s *QuestionService) ListTechnologies() ([]models.Technology, error) {
	return s.questionRepo.ListTechnologies()
}

// ListExperienceLevels returns the experience level lookup table.
func (s *QuestionService) ListExperienceLevels() ([]models.ExperienceLevel, error) {
	return s.questionRepo.ListExperienceLevels()
}

// ListQuestionTypes returns the question type lookup table.
func (s *QuestionService) ListQuestionTypes() ([]models.QuestionType, error) {
	return s.questionRepo.ListQuestionTypes()
}
