package dto

import (
	"time"

	"github.com/talentgrid/interview-management-api/internal/models"
)

// PositionDTO represents a job position in API responses
type PositionDTO struct {
	ID           uint64                `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Requirements string                `json:"requirements"`
	Status       models.PositionStatus `json:"status"`
	CreatedAt    time.Time             `json:"created_at"`
}

// ApplicationDTO represents a job application in API responses
type ApplicationDTO struct {
	ID          uint64                   `json:"id"`
	PositionID  uint64                   `json:"position_id"`
	CandidateID uint64                   `json:"candidate_id"`
	Name        string                   `json:"name"`
	Email       string                   `json:"email"`
	Phone       string                   `json:"phone"`
	CoverLetter string                   `json:"cover_letter"`
	ResumePath  string                   `json:"resume_path"`
	Status      models.ApplicationStatus `json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
	Position    *PositionDTO             `json:"position,omitempty"`
}

// ToPositionDTO converts a Position model to PositionDTO
func ToPositionDTO(position models.Position) PositionDTO {
	return PositionDTO{
		ID:           position.ID,
		Title:        position.Title,
		Description:  position.Description,
		Requirements: position.Requirements,
		Status:       position.Status,
		CreatedAt:    position.CreatedAt,
	}
}

// ToPositionDTOs converts a slice of positions
func ToPositionDTOs(positions []models.Position) []PositionDTO {
	dtos := make([]PositionDTO, len(positions))
	for i, position := range positions {
		dtos[i] = ToPositionDTO(position)
	}
	return dtos
}

// ToApplicationDTO converts an Application model to ApplicationDTO
func ToApplicationDTO(application models.Application) ApplicationDTO {
	dto := ApplicationDTO{
		ID:          application.ID,
		PositionID:  application.PositionID,
		CandidateID: application.CandidateID,
		Name:        application.Name,
		Email:       application.Email,
		Phone:       application.Phone,
		CoverLetter: application.CoverLetter,
		ResumePath:  application.ResumePath,
		Status:      application.Status,
		CreatedAt:   application.CreatedAt,
	}

	if application.Position.ID != 0 {
		position := ToPositionDTO(application.Position)
		dto.Position = &position
	}

	return dto
}

// ToApplicationDTOs converts a slice of applications
func ToApplicationDTOs(applications []models.Application) []ApplicationDTO {
	dtos := make([]ApplicationDTO, len(applications))
	for i, application := range applications {
		dtos[i] = ToApplicationDTO(application)
	}
	return dtos
}
