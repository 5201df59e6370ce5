package models

import (
	"time"

	"gorm.io/gorm"
)

// InterviewQuestion links one Interview to one Question and carries the
// interview-specific scoring state. Skipped questions stay attached but are
// excluded from every aggregate computation.
type InterviewQuestion struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	InterviewID uint64         `gorm:"not null;index" json:"interview_id"`
	QuestionID  uint64         `gorm:"not null;index" json:"question_id"`
	Score       *int           `json:"score"`
	Notes       string         `gorm:"type:text" json:"notes"`
	Skipped     bool           `gorm:"not null;default:false" json:"skipped"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Interview Interview `gorm:"foreignKey:InterviewID" json:"interview,omitempty"`
	Question  *Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
}
