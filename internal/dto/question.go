package dto

import (
	"time"

	"github.com/talentgrid/interview-management-api/internal/models"
)

// LookupDTO represents a Technology/ExperienceLevel/QuestionType entry
type LookupDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// QuestionDTO represents a bank question in API responses
type QuestionDTO struct {
	ID                      uint64     `json:"id"`
	Title                   string     `json:"title"`
	Content                 string     `json:"content"`
	Answer                  string     `json:"answer"`
	TechnologyID            uint64     `json:"technology_id"`
	ExperienceLevelID       uint64     `json:"experience_level_id"`
	QuestionTypeID          uint64     `json:"question_type_id"`
	EvaluatesTechnical      bool       `json:"evaluates_technical"`
	EvaluatesProblemSolving bool       `json:"evaluates_problem_solving"`
	EvaluatesCommunication  bool       `json:"evaluates_communication"`
	IsCustom                bool       `json:"is_custom"`
	CreatedAt               time.Time  `json:"created_at"`
	Technology              *LookupDTO `json:"technology,omitempty"`
	ExperienceLevel         *LookupDTO `json:"experience_level,omitempty"`
	QuestionType            *LookupDTO `json:"question_type,omitempty"`
}

// ToQuestionDTO converts a Question model to QuestionDTO
func ToQuestionDTO(question models.Question) QuestionDTO {
	dto := QuestionDTO{
		ID:                      question.ID,
		Title:                   question.Title,
		Content:                 question.Content,
		Answer:                  question.Answer,
		TechnologyID:            question.TechnologyID,
		ExperienceLevelID:       question.ExperienceLevelID,
		QuestionTypeID:          question.QuestionTypeID,
		EvaluatesTechnical:      question.EvaluatesTechnical,
		EvaluatesProblemSolving: question.EvaluatesProblemSolving,
		EvaluatesCommunication:  question.EvaluatesCommunication,
		IsCustom:                question.IsCustom,
		CreatedAt:               question.CreatedAt,
	}

	// Include lookups if preloaded
	if question.Technology.ID != 0 {
		dto.Technology = &LookupDTO{ID: question.Technology.ID, Name: question.Technology.Name, Description: question.Technology.Description}
	}
	if question.ExperienceLevel.ID != 0 {
		dto.ExperienceLevel = &LookupDTO{ID: question.ExperienceLevel.ID, Name: question.ExperienceLevel.Name, Description: question.ExperienceLevel.Description}
	}
	if question.QuestionType.ID != 0 {
		dto.QuestionType = &LookupDTO{ID: question.QuestionType.ID, Name: question.QuestionType.Name, Description: question.QuestionType.Description}
	}

	return dto
}

// ToQuestionDTOs converts a slice of questions
func ToQuestionDTOs(questions []models.Question) []QuestionDTO {
	dtos := make([]QuestionDTO, len(questions))
	for i, question := range questions {
		dtos[i] = ToQuestionDTO(question)
	}
	return dtos
}
