package model

import (
	"time"

	"github.com/google/uuid"
)

// JobType is the employment type of a job post
type JobType string

// Job types accepted by EditableJobPostInfo.JobType
const (
	JobTypePartTime   JobType = "Part-Time"
	JobTypeFullTime   JobType = "Full-Time"
	JobTypeFreelance  JobType = "Freelance"
	JobTypeInternship JobType = "Internship"
)

// AllJobTypes lists every job type in canonical order
var AllJobTypes = []JobType{JobTypePartTime, JobTypeFullTime, JobTypeFreelance, JobTypeInternship}

// WorkMode tells where the work is done
type WorkMode string

// Work modes accepted by EditableJobPostInfo.Remote
const (
	WorkModeRemoteOnly    WorkMode = "Remote-Only"
	WorkModeOfficeOnly    WorkMode = "Office-Only"
	WorkModePartialRemote WorkMode = "Partial-Remote"
)

// AllWorkModes lists every work mode in canonical order
var AllWorkModes = []WorkMode{WorkModeRemoteOnly, WorkModeOfficeOnly, WorkModePartialRemote}

// JobLocation is where a job takes place
type JobLocation struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	City    string `gorm:"type:text" json:"city"`
	State   string `gorm:"type:text" json:"state"`
	Country string `gorm:"type:text" json:"country"`
}

// JobCompany is the hiring company shown on a job post
type JobCompany struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:text" json:"name"`
	Logo string `gorm:"type:text" json:"logo"`
}

// EditableJobPostInfo is part of job post that can be edited by its owner
type EditableJobPostInfo struct {
	Title               string   `gorm:"type:text" json:"title" form:"title" validate:"required,max=200"`
	JobType             JobType  `gorm:"type:text;index" json:"job_type" form:"job_type" validate:"required,oneof=Part-Time Full-Time Freelance Internship"`
	Remote              WorkMode `gorm:"type:text;index" json:"remote" form:"remote" validate:"required,oneof=Remote-Only Office-Only Partial-Remote"`
	Salary              string   `gorm:"type:text" json:"salary" form:"salary"`
	Description         string   `gorm:"type:text" json:"description" form:"description"`
	JobLocationID       *uint    `json:"job_location_id" form:"job_location_id"`
	JobCompanyID        *uint    `json:"job_company_id" form:"job_company_id"`
	ExperienceRequired  string   `gorm:"type:text" json:"experience_required" form:"experience_required"`
	CertificateRequired string   `gorm:"type:text" json:"certificate_required" form:"certificate_required"`
	Field               string   `gorm:"type:text" json:"field" form:"field"`
	Number              string   `gorm:"type:text" json:"number" form:"number"`
}

// JobPost is gorm model for store job post data in DB
type JobPost struct {
	ID          uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	PostedByID  uuid.UUID    `gorm:"type:uuid;not null;index;<-:create" json:"posted_by_id"`
	PostedBy    User         `gorm:"foreignKey:PostedByID;references:ID" json:"-"`
	PostedDate  *time.Time   `gorm:"type:timestamptz;index;<-:create" json:"posted_date"`
	JobLocation *JobLocation `gorm:"foreignKey:JobLocationID;references:ID" json:"job_location,omitempty"`
	JobCompany  *JobCompany  `gorm:"foreignKey:JobCompanyID;references:ID" json:"job_company,omitempty"`
	EditableJobPostInfo

	Applications []Application `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	SavedBy      []SavedJob    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

// RecruiterJobSummary is a recruiter's own post together with how many seekers applied
type RecruiterJobSummary struct {
	JobPostID       uint        `json:"job_post_id"`
	Title           string      `json:"title"`
	TotalCandidates int64       `json:"total_candidates"`
	Location        JobLocation `json:"location"`
	Company         JobCompany  `json:"company"`
}
