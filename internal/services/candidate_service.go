package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/talentgrid/interview-management-api/internal/models"
	"github.com/talentgrid/interview-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCandidateNameRequired  = errors.New("candidate name is required")
	ErrCandidateEmailRequired = errors.New("candidate email is required")
	ErrInvalidCandidateStatus = errors.New("invalid candidate status")
)

// CandidateService handles candidate business logic.
type CandidateService struct {
	candidateRepo repository.CandidateRepository
}

// NewCandidateService creates a new CandidateService.
func NewCandidateService(candidateRepo repository.CandidateRepository) *CandidateService {
	return &CandidateService{
		candidateRepo: candidateRepo,
	}
}

// CreateCandidateInput represents input for creating a candidate directly.
type CreateCandidateInput struct {
	Name       string
	Email      string
	Phone      string
	Notes      string
	ResumePath string
}

// CreateCandidate creates a candidate with status new.
func (s *CandidateService) CreateCandidate(input CreateCandidateInput) (*models.Candidate, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCandidateNameRequired
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, ErrCandidateEmailRequired
	}

	candidate := &models.Candidate{
		Name:       name,
		Email:      input.Email,
		Phone:      input.Phone,
		Notes:      input.Notes,
		ResumePath: input.ResumePath,
		Status:     models.CandidateStatusNew,
	}
	if err := s.candidateRepo.Create(candidate); err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return candidate, nil
}

// GetCandidate retrieves a candidate by ID.
func (s *CandidateService) GetCandidate(id uint64) (*models.Candidate, error) {
	candidate, err := s.candidateRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}
	return candidate, nil
}

// ListCandidates returns candidates with the total count.
func (s *CandidateService) ListCandidates(offset, limit int) ([]models.Candidate, int64, error) {
	candidates, total, err := s.candidateRepo.List(offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, total, nil
}

// UpdateCandidateInput represents a partial candidate edit.
type UpdateCandidateInput struct {
	Name       *string
	Email      *string
	Phone      *string
	Notes      *string
	ResumePath *string
	Status     *models.CandidateStatus
}

// UpdateCandidate applies a partial edit.
func (s *CandidateService) UpdateCandidate(id uint64, input UpdateCandidateInput) (*models.Candidate, error) {
	candidate, err := s.GetCandidate(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrCandidateNameRequired
		}
		candidate.Name = *input.Name
	}
	if input.Email != nil {
		candidate.Email = *input.Email
	}
	if input.Phone != nil {
		candidate.Phone = *input.Phone
	}
	if input.Notes != nil {
		candidate.Notes = *input.Notes
	}
	if input.ResumePath != nil {
		candidate.ResumePath = *input.ResumePath
	}
	if input.Status != nil {
		switch *input.Status {
		case models.CandidateStatusNew, models.CandidateStatusInProgress,
			models.CandidateStatusHired, models.CandidateStatusRejected:
			candidate.Status = *input.Status
		default:
			return nil, ErrInvalidCandidateStatus
		}
	}

	if err := s.candidateRepo.Update(candidate); err != nil {
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}
	return candidate, nil
}

// DeleteCandidate removes a candidate.
func (s *CandidateService) DeleteCandidate(id uint64) error {
	if _, err := s.GetCandidate(id); err != nil {
		return err
	}
	if err := s.candidateRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	return nil
}
