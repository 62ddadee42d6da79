// Package model contain gorm model for recording data to database
package model

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Role constants for User.Role
const (
	RoleRecruiter = "recruiter"
	RoleJobSeeker = "jobseeker"
	RoleAdmin     = "admin"
)

// User is the account record shared by every role
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Username string    `gorm:"type:text;uniqueIndex;not null" json:"username"`
	Password string    `gorm:"type:text" json:"-"`
	Email    *string   `gorm:"type:text" json:"email"`
	Role     string    `gorm:"type:text;not null;check:role IN ('recruiter', 'jobseeker', 'admin')" json:"role"`
}

// RecruiterProfile is created alongside a recruiter account
type RecruiterProfile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	FirstName   string    `gorm:"type:text" json:"first_name"`
	LastName    string    `gorm:"type:text" json:"last_name"`
	CompanyName string    `gorm:"type:text" json:"company_name"`
}

// JobSeekerProfile is created alongside a job seeker account
type JobSeekerProfile struct {
	UserID    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	FirstName string         `gorm:"type:text" json:"first_name"`
	LastName  string         `gorm:"type:text" json:"last_name"`
	Skills    pq.StringArray `gorm:"type:text[]" json:"skills"`
}
