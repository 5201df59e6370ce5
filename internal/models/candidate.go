package models

import (
	"time"

	"gorm.io/gorm"
)

type CandidateStatus string

const (
	CandidateStatusNew        CandidateStatus = "new"
	CandidateStatusInProgress CandidateStatus = "in_progress"
	CandidateStatusHired      CandidateStatus = "hired"
	CandidateStatusRejected   CandidateStatus = "rejected"
)

type Candidate struct {
	ID         uint64          `gorm:"primarykey" json:"id"`
	Name       string          `gorm:"type:varchar(255);not null" json:"name"`
	Email      string          `gorm:"type:varchar(255);not null" json:"email"`
	Phone      string          `gorm:"type:varchar(50)" json:"phone"`
	Notes      string          `gorm:"type:text" json:"notes"`
	ResumePath string          `gorm:"type:varchar(512)" json:"resume_path"`
	Status     CandidateStatus `gorm:"type:varchar(20);not null;default:'new'" json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relations
	Interviews []Interview `gorm:"foreignKey:CandidateID" json:"interviews,omitempty"`
}
