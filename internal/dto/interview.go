package dto

import (
	"time"

	"github.com/talentgrid/interview-management-api/internal/models"
)

// InterviewDTO represents an interview in API responses
type InterviewDTO struct {
	ID                  uint64                 `json:"id"`
	Title               string                 `json:"title"`
	CandidateID         uint64                 `json:"candidate_id"`
	Date                time.Time              `json:"date"`
	Status              models.InterviewStatus `json:"status"`
	AssigneeID          *uint64                `json:"assignee_id"`
	TechnicalScore      *int                   `json:"technical_score"`
	ProblemSolvingScore *int                   `json:"problem_solving_score"`
	CommunicationScore  *int                   `json:"communication_score"`
	OverallScore        *int                   `json:"overall_score"`
	Recommendation      *models.Recommendation `json:"recommendation"`
	Notes               string                 `json:"notes"`
	HRNotes             string                 `json:"hr_notes"`
	CreatedByAdmin      bool                   `json:"created_by_admin"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
	Candidate           *CandidateDTO          `json:"candidate,omitempty"`
	Assignee            *UserDTO               `json:"assignee,omitempty"`
	Questions           []InterviewQuestionDTO `json:"questions,omitempty"`
}

// InterviewQuestionDTO represents an attached, scorable question row. The
// question field is nil when the bank question has been deleted since it
// was attached.
type InterviewQuestionDTO struct {
	ID          uint64       `json:"id"`
	InterviewID uint64       `json:"interview_id"`
	QuestionID  uint64       `json:"question_id"`
	Score       *int         `json:"score"`
	Notes       string       `json:"notes"`
	Skipped     bool         `json:"skipped"`
	Question    *QuestionDTO `json:"question,omitempty"`
}

// ScorePreviewResponse carries the interactive running average. It mirrors
// the client-side preview computation and is not the persisted aggregate.
type ScorePreviewResponse struct {
	PreviewOverall float64 `json:"preview_overall"`
}

// ToInterviewDTO converts an Interview model to InterviewDTO
func ToInterviewDTO(interview models.Interview) InterviewDTO {
	dto := InterviewDTO{
		ID:                  interview.ID,
		Title:               interview.Title,
		CandidateID:         interview.CandidateID,
		Date:                interview.Date,
		Status:              interview.Status,
		AssigneeID:          interview.AssigneeID,
		TechnicalScore:      interview.TechnicalScore,
		ProblemSolvingScore: interview.ProblemSolvingScore,
		CommunicationScore:  interview.CommunicationScore,
		OverallScore:        interview.OverallScore,
		Recommendation:      interview.Recommendation,
		Notes:               interview.Notes,
		HRNotes:             interview.HRNotes,
		CreatedByAdmin:      interview.CreatedByAdmin,
		CreatedAt:           interview.CreatedAt,
		UpdatedAt:           interview.UpdatedAt,
	}

	// Include candidate if preloaded
	if interview.Candidate.ID != 0 {
		candidate := ToCandidateDTO(interview.Candidate)
		dto.Candidate = &candidate
	}

	// Include assignee if preloaded
	if interview.Assignee != nil && interview.Assignee.ID != 0 {
		assignee := ToUserDTO(*interview.Assignee)
		dto.Assignee = &assignee
	}

	// Include question rows if preloaded
	if len(interview.Questions) > 0 {
		dto.Questions = ToInterviewQuestionDTOs(interview.Questions)
	}

	return dto
}

// ToInterviewDTOs converts a slice of interviews
func ToInterviewDTOs(interviews []models.Interview) []InterviewDTO {
	dtos := make([]InterviewDTO, len(interviews))
	for i, interview := range interviews {
		dtos[i] = ToInterviewDTO(interview)
	}
	return dtos
}

// ToInterviewQuestionDTO converts an InterviewQuestion model
func ToInterviewQuestionDTO(iq models.InterviewQuestion) InterviewQuestionDTO {
	dto := InterviewQuestionDTO{
		ID:          iq.ID,
		InterviewID: iq.InterviewID,
		QuestionID:  iq.QuestionID,
		Score:       iq.Score,
		Notes:       iq.Notes,
		Skipped:     iq.Skipped,
	}

	if iq.Question != nil && iq.Question.ID != 0 {
		question := ToQuestionDTO(*iq.Question)
		dto.Question = &question
	}

	return dto
}

// ToInterviewQuestionDTOs converts a slice of interview question rows
func ToInterviewQuestionDTOs(rows []models.InterviewQuestion) []InterviewQuestionDTO {
	dtos := make([]InterviewQuestionDTO, len(rows))
	for i, row := range rows {
		dtos[i] = ToInterviewQuestionDTO(row)
	}
	return dtos
}
