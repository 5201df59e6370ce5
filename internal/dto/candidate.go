package dto

import (
	"time"

	"github.com/talentgrid/interview-management-api/internal/models"
)

// CandidateDTO represents a candidate in API responses
type CandidateDTO struct {
	ID         uint64                 `json:"id"`
	Name       string                 `json:"name"`
	Email      string                 `json:"email"`
	Phone      string                 `json:"phone"`
	Notes      string                 `json:"notes"`
	ResumePath string                 `json:"resume_path"`
	Status     models.CandidateStatus `json:"status"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// CandidateListResponse represents a paginated list of candidates
type CandidateListResponse struct {
	Candidates []CandidateDTO `json:"candidates"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	Total      int64          `json:"total"`
}

// ToCandidateDTO converts a Candidate model to CandidateDTO
func ToCandidateDTO(candidate models.Candidate) CandidateDTO {
	return CandidateDTO{
		ID:         candidate.ID,
		Name:       candidate.Name,
		Email:      candidate.Email,
		Phone:      candidate.Phone,
		Notes:      candidate.Notes,
		ResumePath: candidate.ResumePath,
		Status:     candidate.Status,
		CreatedAt:  candidate.CreatedAt,
		UpdatedAt:  candidate.UpdatedAt,
	}
}

// ToCandidateListResponse converts candidates plus pagination metadata
func ToCandidateListResponse(candidates []models.Candidate, page, limit int, total int64) CandidateListResponse {
	dtos := make([]CandidateDTO, len(candidates))
	for i, candidate := range candidates {
		dtos[i] = ToCandidateDTO(candidate)
	}
	return CandidateListResponse{
		Candidates: dtos,
		Page:       page,
		Limit:      limit,
		Total:      total,
	}
}
