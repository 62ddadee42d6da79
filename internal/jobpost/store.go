package jobpost

import (
	"context"
	"io"

	"jobportal-backend/internal/model"

	"github.com/google/uuid"
)

// JobStore persists job posts. Every listing is ordered by posted date descending, then id ascending.
// FindByID returns an error wrapping ErrNotFound when the id does not exist.
type JobStore interface {
	FindByID(ctx context.Context, id uint) (*model.JobPost, error)
	ListAll(ctx context.Context) ([]model.JobPost, error)
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]model.JobPost, error)
	// SearchByOwner filters the owner's posts by keyword and location only. Empty strings mean no filter.
	SearchByOwner(ctx context.Context, owner uuid.UUID, keyword, location string) ([]model.JobPost, error)
	Search(ctx context.Context, spec SearchSpec) ([]model.JobPost, error)
	SearchByKeyword(ctx context.Context, keyword, location string) ([]model.JobPost, error)

	Create(ctx context.Context, post *model.JobPost) error
	UpdateEditable(ctx context.Context, id uint, info model.EditableJobPostInfo) error
	Delete(ctx context.Context, id uint) error
	AttachCompanyLogo(ctx context.Context, companyID uint, logo string) error

	RecruiterSummaries(ctx context.Context, owner uuid.UUID) ([]model.RecruiterJobSummary, error)
}

// ActivityStore holds job seekers' application and saved-job records.
// Create methods return an error wrapping ErrConflict on duplicates and ErrNotFound on an unknown post.
type ActivityStore interface {
	ListApplications(ctx context.Context, seeker uuid.UUID) ([]model.Application, error)
	ListSavedJobs(ctx context.Context, seeker uuid.UUID) ([]model.SavedJob, error)
	CreateApplication(ctx context.Context, app *model.Application) error
	CreateSavedJob(ctx context.Context, saved *model.SavedJob) error
}

// FileStore writes uploaded files
type FileStore interface {
	SaveFile(ctx context.Context, dir, filename string, content io.Reader) error
}
