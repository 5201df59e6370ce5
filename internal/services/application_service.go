package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/talentgrid/interview-management-api/internal/models"
	"github.com/talentgrid/interview-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrPositionNotFound    = errors.New("position not found")
	ErrPositionClosed      = errors.New("position is not accepting applications")
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationDecided  = errors.New("application has already been decided")
)

// ApplicationService handles the public job board: positions, application
// intake and the accept/reject flow that drives candidate status.
type ApplicationService struct {
	applicationRepo repository.ApplicationRepository
	candidateRepo   repository.CandidateRepository
	notifier        Notifier
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(applicationRepo repository.ApplicationRepository, candidateRepo repository.CandidateRepository, notifier Notifier) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		candidateRepo:   candidateRepo,
		notifier:        notifier,
	}
}

// CreatePositionInput represents input for posting a job position.
type CreatePositionInput struct {
	Title        string
	Description  string
	Requirements string
}

// CreatePosition posts a new open position.
func (s *ApplicationService) CreatePosition(input CreatePositionInput) (*models.Position, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	position := &models.Position{
		Title:        input.Title,
		Description:  input.Description,
		Requirements: input.Requirements,
		Status:       models.PositionStatusOpen,
	}
	if err := s.applicationRepo.CreatePosition(position); err != nil {
		return nil, fmt.Errorf("failed to create position: %w", err)
	}
	return position, nil
}

// ListPositions returns positions; openOnly restricts to open ones for the
// public board.
func (s *ApplicationService) ListPositions(openOnly bool) ([]models.Position, error) {
	positions, err := s.applicationRepo.ListPositions(openOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	return positions, nil
}

// GetPosition retrieves a position by ID.
func (s *ApplicationService) GetPosition(id uint64) (*models.Position, error) {
	position, err := s.applicationRepo.FindPositionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to find position: %w", err)
	}
	return position, nil
}

// UpdatePositionInput represents a partial position edit.
type UpdatePositionInput struct {
	Title        *string
	Description  *string
	Requirements *string
	Status       *models.PositionStatus
}

// UpdatePosition applies a partial edit, including opening/closing.
func (s *ApplicationService) UpdatePosition(id uint64, input UpdatePositionInput) (*models.Position, error) {
	position, err := s.GetPosition(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleRequired
		}
		position.Title = *input.Title
	}
	if input.Description != nil {
		position.Description = *input.Description
	}
	if input.Requirements != nil {
		position.Requirements = *input.Requirements
	}
	if input.Status != nil {
		position.Status = *input.Status
	}

	if err := s.applicationRepo.UpdatePosition(position); err != nil {
		return nil, fmt.Errorf("failed to update position: %w", err)
	}
	return position, nil
}

// DeletePosition removes a position from the board.
func (s *ApplicationService) DeletePosition(id uint64) error {
	if _, err := s.GetPosition(id); err != nil {
		return err
	}
	if err := s.applicationRepo.DeletePosition(id); err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	return nil
}

// SubmitApplicationInput represents a public job-board submission.
type SubmitApplicationInput struct {
	PositionID  uint64
	Name        string
	Email       string
	Phone       string
	CoverLetter string
	ResumePath  string
}

// SubmitApplication records a public application against an open position
// and creates the backing candidate with status new. The confirmation
// email is fire-and-forget.
func (s *ApplicationService) SubmitApplication(input SubmitApplicationInput) (*models.Application, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrCandidateNameRequired
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, ErrCandidateEmailRequired
	}

	position, err := s.GetPosition(input.PositionID)
	if err != nil {
		return nil, err
	}
	if position.Status != models.PositionStatusOpen {
		return nil, ErrPositionClosed
	}

	candidate := &models.Candidate{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		ResumePath: input.ResumePath,
		Status:     models.CandidateStatusNew,
	}
	if err := s.candidateRepo.Create(candidate); err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	application := &models.Application{
		PositionID:  input.PositionID,
		CandidateID: candidate.ID,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		CoverLetter: input.CoverLetter,
		ResumePath:  input.ResumePath,
		Status:      models.ApplicationStatusPending,
	}
	if err := s.applicationRepo.CreateApplication(application); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	s.notify(input.Email, "Application received",
		fmt.Sprintf("Thank you for applying to %s. We will be in touch.", position.Title))

	return application, nil
}

// ListApplications returns applications, newest first.
func (s *ApplicationService) ListApplications() ([]models.Application, error) {
	applications, err := s.applicationRepo.ListApplications()
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}

// GetApplication retrieves an application by ID.
func (s *ApplicationService) GetApplication(id uint64) (*models.Application, error) {
	application, err := s.applicationRepo.FindApplicationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return application, nil
}

// AcceptApplication accepts a pending application and moves the candidate
// to in_progress so interviews can be scheduled.
func (s *ApplicationService) AcceptApplication(id uint64) (*models.Application, error) {
	return s.decide(id, true)
}

// RejectApplication rejects a pending application. The candidate returns
// to new: rejection of an application re-opens the candidate rather than
// closing them out.
func (s *ApplicationService) RejectApplication(id uint64) (*models.Application, error) {
	return s.decide(id, false)
}

func (s *ApplicationService) decide(id uint64, accepted bool) (*models.Application, error) {
	application, err := s.GetApplication(id)
	if err != nil {
		return nil, err
	}
	if application.Status != models.ApplicationStatusPending {
		return nil, ErrApplicationDecided
	}

	candidate, err := s.candidateRepo.FindByID(application.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}

	var subject, body string
	if accepted {
		application.Status = models.ApplicationStatusAccepted
		candidate.Status = models.CandidateStatusInProgress
		subject = "Your application is moving forward"
		body = "We would like to continue with your application. Our team will contact you to schedule an interview."
	} else {
		application.Status = models.ApplicationStatusRejected
		candidate.Status = models.CandidateStatusNew
		subject = "Update on your application"
		body = "Thank you for your interest. We have decided not to proceed with this application."
	}

	if err := s.applicationRepo.UpdateApplication(application); err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	if err := s.candidateRepo.Update(candidate); err != nil {
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}

	s.notify(application.Email, subject, body)

	return application, nil
}

// notify dispatches in the background so delivery never blocks or fails
// the triggering request.
func (s *ApplicationService) notify(to, subject, body string) {
	if s.notifier == nil {
		return
	}
	go func() {
		if err := s.notifier.Send(to, subject, body); err != nil {
			log.Printf("Failed to send notification to %s: %v", to, err)
		}
	}()
}
