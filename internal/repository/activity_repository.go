package repository

import (
	"context"
	"errors"
	"fmt"

	"jobportal-backend/internal/database"
	"jobportal-backend/internal/jobpost"
	"jobportal-backend/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// ActivityRepository is the gorm backed jobpost.ActivityStore
type ActivityRepository struct {
	DB *database.DBinstanceStruct
}

// NewActivityRepository creates a new instance of ActivityRepository
func NewActivityRepository(db *database.DBinstanceStruct) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

var _ jobpost.ActivityStore = (*ActivityRepository)(nil)

func (r *ActivityRepository) ListApplications(ctx context.Context, seeker uuid.UUID) ([]model.Application, error) {
	apps := []model.Application{}
	if err := r.DB.WithContext(ctx).
		Where("job_seeker_id = ?", seeker).
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ActivityRepository) ListSavedJobs(ctx context.Context, seeker uuid.UUID) ([]model.SavedJob, error) {
	saved := []model.SavedJob{}
	if err := r.DB.WithContext(ctx).
		Where("job_seeker_id = ?", seeker).
		Order("id ASC").
		Find(&saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *ActivityRepository) CreateApplication(ctx context.Context, app *model.Application) error {
	if err := r.DB.WithContext(ctx).Omit("JobSeeker").Create(app).Error; err != nil {
		return translateActivity(err, "application")
	}
	return nil
}

func (r *ActivityRepository) CreateSavedJob(ctx context.Context, saved *model.SavedJob) error {
	if err := r.DB.WithContext(ctx).Omit("JobSeeker").Create(saved).Error; err != nil {
		return translateActivity(err, "saved job")
	}
	return nil
}

// translateActivity reports a missing post or seeker profile as not found
func translateActivity(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", jobpost.ErrConflict, what)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s references a missing record", jobpost.ErrNotFound, what)
		}
	}
	return err
}
