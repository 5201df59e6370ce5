package models

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID                uint64 `gorm:"primarykey" json:"id"`
	Title             string `gorm:"type:varchar(255);not null" json:"title"`
	Content           string `gorm:"type:text;not null" json:"content"`
	Answer            string `gorm:"type:text" json:"answer"`
	TechnologyID      uint64 `gorm:"not null" json:"technology_id"`
	ExperienceLevelID uint64 `gorm:"not null" json:"experience_level_id"`
	QuestionTypeID    uint64 `gorm:"not null" json:"question_type_id"`

	// A question may evaluate any combination of the three skills,
	// including none.
	EvaluatesTechnical      bool `gorm:"not null;default:false" json:"evaluates_technical"`
	EvaluatesProblemSolving bool `gorm:"not null;default:false" json:"evaluates_problem_solving"`
	EvaluatesCommunication  bool `gorm:"not null;default:false" json:"evaluates_communication"`

	IsCustom  bool           `gorm:"not null;default:false" json:"is_custom"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Technology      Technology      `gorm:"foreignKey:TechnologyID" json:"technology,omitempty"`
	ExperienceLevel ExperienceLevel `gorm:"foreignKey:ExperienceLevelID" json:"experience_level,omitempty"`
	QuestionType    QuestionType    `gorm:"foreignKey:QuestionTypeID" json:"question_type,omitempty"`
}
