package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin                Role = "admin"
	RoleHR                   Role = "hr"
	RoleTechnicalInterviewer Role = "technical_interviewer"
	RoleDirector             Role = "director"
)

// ValidRole reports whether r is one of the four known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleHR, RoleTechnicalInterviewer, RoleDirector:
		return true
	}
	return false
}

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Username     string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role           `gorm:"type:varchar(30);not null;default:'technical_interviewer'" json:"role"`
	Active       bool           `gorm:"not null;default:false" json:"active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	AssignedInterviews []Interview `gorm:"foreignKey:AssigneeID" json:"-"`
}
