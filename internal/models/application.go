package models

import (
	"time"

	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Application is a public job-board submission. Submitting one creates a
// Candidate record; accepting or rejecting the application drives the
// candidate's status.
type Application struct {
	ID          uint64            `gorm:"primarykey" json:"id"`
	PositionID  uint64            `gorm:"not null" json:"position_id"`
	CandidateID uint64            `gorm:"not null" json:"candidate_id"`
	Name        string            `gorm:"type:varchar(255);not null" json:"name"`
	Email       string            `gorm:"type:varchar(255);not null" json:"email"`
	Phone       string            `gorm:"type:varchar(50)" json:"phone"`
	CoverLetter string            `gorm:"type:text" json:"cover_letter"`
	ResumePath  string            `gorm:"type:varchar(512)" json:"resume_path"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relations
	Position  Position  `gorm:"foreignKey:PositionID" json:"position,omitempty"`
	Candidate Candidate `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`
}
