// Package repository implements the job post stores on top of gorm and postgres.
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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// JobPostRepository is the gorm backed jobpost.JobStore
type JobPostRepository struct {
	DB *database.DBinstanceStruct
}

// NewJobPostRepository creates a new instance of JobPostRepository
func NewJobPostRepository(db *database.DBinstanceStruct) *JobPostRepository {
	return &JobPostRepository{DB: db}
}

var _ jobpost.JobStore = (*JobPostRepository)(nil)

func (r *JobPostRepository) base(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Model(&model.JobPost{}).
		Preload("JobLocation").
		Preload("JobCompany")
}

// ordered applies posted_date DESC NULLS LAST, id ASC
func ordered(q *gorm.DB) *gorm.DB {
	return q.Order(clause.OrderBy{Expression: clause.Expr{
		SQL: "job_posts.posted_date DESC NULLS LAST, job_posts.id ASC",
	}})
}

func likePattern(s string) string {
	return "%" + s + "%"
}

// whereText narrows by keyword on title or description and by location on the joined job_locations row
func whereText(q *gorm.DB, keyword, location string) *gorm.DB {
	if keyword != "" {
		q = q.Where("(job_posts.title ILIKE ? OR job_posts.description ILIKE ?)", likePattern(keyword), likePattern(keyword))
	}
	if location != "" {
		q = q.Joins("JOIN job_locations ON job_locations.id = job_posts.job_location_id").
			Where("(job_locations.city ILIKE ? OR job_locations.state ILIKE ? OR job_locations.country ILIKE ?)",
				likePattern(location), likePattern(location), likePattern(location))
	}
	return q
}

func (r *JobPostRepository) find(q *gorm.DB) ([]model.JobPost, error) {
	posts := []model.JobPost{}
	if err := ordered(q).Find(&posts).Error; err != nil {
		return nil, translate(err)
	}
	return posts, nil
}

// FindByID loads one post with its location and company
func (r *JobPostRepository) FindByID(ctx context.Context, id uint) (*model.JobPost, error) {
	post := model.JobPost{}
	if err := r.base(ctx).Where("job_posts.id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: job post %d", jobpost.ErrNotFound, id)
		}
		return nil, translate(err)
	}
	return &post, nil
}

func (r *JobPostRepository) ListAll(ctx context.Context) ([]model.JobPost, error) {
	return r.find(r.base(ctx))
}

func (r *JobPostRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]model.JobPost, error) {
	return r.find(r.base(ctx).Where("job_posts.posted_by_id = ?", owner))
}

func (r *JobPostRepository) SearchByOwner(ctx context.Context, owner uuid.UUID, keyword, location string) ([]model.JobPost, error) {
	q := r.base(ctx).Where("job_posts.posted_by_id = ?", owner)
	return r.find(whereText(q, keyword, location))
}

// Search applies every predicate of spec. A defaulted facet adds no condition and an
// empty active facet matches nothing.
func (r *JobPostRepository) Search(ctx context.Context, spec jobpost.SearchSpec) ([]model.JobPost, error) {
	q := whereText(r.base(ctx), spec.Keyword, spec.Location)

	if !spec.Types.Defaulted {
		if len(spec.Types.Values) == 0 {
			return []model.JobPost{}, nil
		}
		q = q.Where("job_posts.job_type IN ?", spec.Types.Strings())
	}
	if !spec.Modes.Defaulted {
		if len(spec.Modes.Values) == 0 {
			return []model.JobPost{}, nil
		}
		q = q.Where("job_posts.remote IN ?", spec.Modes.Strings())
	}
	if spec.Since != nil {
		q = q.Where("job_posts.posted_date >= ?", *spec.Since)
	}

	return r.find(q)
}

func (r *JobPostRepository) SearchByKeyword(ctx context.Context, keyword, location string) ([]model.JobPost, error) {
	return r.find(whereText(r.base(ctx), keyword, location))
}

// Create inserts the post without touching its associations
func (r *JobPostRepository) Create(ctx context.Context, post *model.JobPost) error {
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(post).Error; err != nil {
		return translate(err)
	}
	return nil
}

// UpdateEditable writes every editable column, zero values included
func (r *JobPostRepository) UpdateEditable(ctx context.Context, id uint, info model.EditableJobPostInfo) error {
	res := r.DB.WithContext(ctx).
		Model(&model.JobPost{ID: id}).
		Select(
			"Title", "JobType", "Remote", "Salary", "Description",
			"JobLocationID", "JobCompanyID",
			"ExperienceRequired", "CertificateRequired", "Field", "Number",
		).
		Updates(model.JobPost{EditableJobPostInfo: info})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: job post %d", jobpost.ErrNotFound, id)
	}
	return nil
}

// Delete removes the post. Applications and saved jobs go with it through ON DELETE CASCADE.
func (r *JobPostRepository) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&model.JobPost{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: job post %d", jobpost.ErrNotFound, id)
	}
	return nil
}

func (r *JobPostRepository) AttachCompanyLogo(ctx context.Context, companyID uint, logo string) error {
	res := r.DB.WithContext(ctx).
		Model(&model.JobCompany{}).
		Where("id = ?", companyID).
		Update("logo", logo)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: company %d", jobpost.ErrNotFound, companyID)
	}
	return nil
}

// FindCompany loads one company by id
func (r *JobPostRepository) FindCompany(ctx context.Context, id uint) (*model.JobCompany, error) {
	company := model.JobCompany{}
	if err := r.DB.WithContext(ctx).First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: company %d", jobpost.ErrNotFound, id)
		}
		return nil, err
	}
	return &company, nil
}

// ListCompanies returns every company ordered by id
func (r *JobPostRepository) ListCompanies(ctx context.Context) ([]model.JobCompany, error) {
	companies := []model.JobCompany{}
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// RecruiterSummaries lists the owner's posts with how many applications each received
func (r *JobPostRepository) RecruiterSummaries(ctx context.Context, owner uuid.UUID) ([]model.RecruiterJobSummary, error) {
	posts, err := r.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return []model.RecruiterJobSummary{}, nil
	}

	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	var counts []struct {
		PostID uint
		Total  int64
	}
	if err := r.DB.WithContext(ctx).
		Model(&model.Application{}).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", ids).
		Group("post_id").
		Scan(&counts).Error; err != nil {
		return nil, translate(err)
	}
	totals := make(map[uint]int64, len(counts))
	for _, c := range counts {
		totals[c.PostID] = c.Total
	}

	summaries := make([]model.RecruiterJobSummary, 0, len(posts))
	for _, p := range posts {
		s := model.RecruiterJobSummary{
			JobPostID:       p.ID,
			Title:           p.Title,
			TotalCandidates: totals[p.ID],
		}
		if p.JobLocation != nil {
			s.Location = *p.JobLocation
		}
		if p.JobCompany != nil {
			s.Company = *p.JobCompany
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// translate maps postgres constraint errors onto the jobpost error kinds
func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", jobpost.ErrConflict, pgErr.Detail)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", jobpost.ErrValidation, pgErr.Detail)
		}
	}
	return err
}
