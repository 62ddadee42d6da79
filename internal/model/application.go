package model

import (
	"time"

	"github.com/google/uuid"
)

// Application represents a job application record. Its existence means the seeker applied.
type Application struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AppliedAt   time.Time `gorm:"type:timestamptz;default:CURRENT_TIMESTAMP" json:"applied_at"`
	CoverLetter string    `gorm:"type:text" json:"cover_letter"`

	// JobSeekerID references JobSeekerProfile.UserID (uuid)
	JobSeekerID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_application_seeker_post" json:"job_seeker_id"`
	JobSeeker   JobSeekerProfile `gorm:"foreignKey:JobSeekerID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`

	// PostID references JobPost.ID
	PostID uint `gorm:"not null;index;uniqueIndex:idx_application_seeker_post" json:"post_id"`
}

// SavedJob marks a job post bookmarked by a job seeker
type SavedJob struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SavedAt time.Time `gorm:"type:timestamptz;default:CURRENT_TIMESTAMP" json:"saved_at"`

	JobSeekerID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_saved_seeker_post" json:"job_seeker_id"`
	JobSeeker   JobSeekerProfile `gorm:"foreignKey:JobSeekerID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`

	PostID uint `gorm:"not null;index;uniqueIndex:idx_saved_seeker_post" json:"post_id"`
}
