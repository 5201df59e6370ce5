package models

import (
	"time"

	"gorm.io/gorm"
)

type InterviewStatus string

const (
	InterviewStatusScheduled  InterviewStatus = "scheduled"
	InterviewStatusInProgress InterviewStatus = "in_progress"
	InterviewStatusCompleted  InterviewStatus = "completed"
	InterviewStatusCancelled  InterviewStatus = "cancelled"
)

// IsTerminal reports whether no further status transitions are allowed.
func (s InterviewStatus) IsTerminal() bool {
	return s == InterviewStatusCompleted || s == InterviewStatusCancelled
}

// CanTransitionTo reports whether the status transition s -> next is legal.
// Legal transitions: scheduled -> in_progress -> completed, with cancelled
// reachable from any non-terminal status.
func (s InterviewStatus) CanTransitionTo(next InterviewStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch next {
	case InterviewStatusInProgress:
		return s == InterviewStatusScheduled
	case InterviewStatusCompleted:
		return s == InterviewStatusInProgress
	case InterviewStatusCancelled:
		return true
	}
	return false
}

type Recommendation string

const (
	RecommendationStrongHire Recommendation = "strong_hire"
	RecommendationHire       Recommendation = "hire"
	RecommendationConsider   Recommendation = "consider"
	RecommendationPass       Recommendation = "pass"
)

type Interview struct {
	ID          uint64          `gorm:"primarykey" json:"id"`
	Title       string          `gorm:"type:varchar(255);not null" json:"title"`
	CandidateID uint64          `gorm:"not null" json:"candidate_id"`
	Date        time.Time       `json:"date"`
	Status      InterviewStatus `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`
	AssigneeID  *uint64         `json:"assignee_id"`

	// Score fields are nil until summary generation writes them. They are
	// snapshots of the scored-question set at recomputation time, not
	// incrementally maintained.
	TechnicalScore      *int            `json:"technical_score"`
	ProblemSolvingScore *int            `json:"problem_solving_score"`
	CommunicationScore  *int            `json:"communication_score"`
	OverallScore        *int            `json:"overall_score"`
	Recommendation      *Recommendation `gorm:"type:varchar(20)" json:"recommendation"`

	Notes          string         `gorm:"type:text" json:"notes"`
	HRNotes        string         `gorm:"type:text" json:"hr_notes"`
	CreatedByAdmin bool           `gorm:"not null;default:false" json:"created_by_admin"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Candidate Candidate           `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`
	Assignee  *User               `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	Questions []InterviewQuestion `gorm:"foreignKey:InterviewID" json:"questions,omitempty"`
}
