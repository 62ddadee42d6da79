// Package jobpost resolves job search filters and runs ownership-checked job post operations.
package jobpost

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"jobportal-backend/internal/logging"
	"jobportal-backend/internal/model"

	"github.com/go-playground/validator/v10"
)

// JobPostView is a job post plus the fields computed for the viewer
type JobPostView struct {
	model.JobPost
	Applied         bool `json:"applied"`
	Saved           bool `json:"saved"`
	DaysSincePosted int  `json:"days_since_posted"`
	Decorated       bool `json:"decorated"`
}

// LogoUpload is a company logo sent along with a new job post
type LogoUpload struct {
	Filename string
	Content  io.Reader
}

type decoration int

const (
	decorateNone decoration = iota
	// decorateAge fills DaysSincePosted only, flags stay false
	decorateAge
	decorateFull
)

// CompanyLogoDir is the storage directory holding a company's logo files
func CompanyLogoDir(companyID uint) string {
	return fmt.Sprintf("company/%d", companyID)
}

// Service implements job search and job post mutations
type Service struct {
	jobs     JobStore
	activity ActivityStore
	files    FileStore
	log      *logging.Logger
	validate *validator.Validate

	now func() time.Time
	loc *time.Location
}

// Option customizes a Service
type Option func(*Service)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation sets the zone calendar days are counted in. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

// NewService creates a Service over the given stores
func NewService(jobs JobStore, activity ActivityStore, files FileStore, log *logging.Logger, opts ...Option) *Service {
	if log == nil {
		log = logging.Nop()
	}
	s := &Service{
		jobs:     jobs,
		activity: activity,
		files:    files,
		log:      log,
		validate: validator.New(),
		now:      time.Now,
		loc:      time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) clock() time.Time {
	return s.now().In(s.loc)
}

// Dashboard lists posts for the viewer's dashboard. Recruiters only ever see their own
// posts, filtered by keyword and location. Everyone else gets the full faceted search.
func (s *Service) Dashboard(ctx context.Context, v Viewer, p RawParams) ([]JobPostView, error) {
	switch v.Kind {
	case Recruiter:
		keyword, location := normalizeText(p.Job), normalizeText(p.Location)

		var (
			posts []model.JobPost
			err   error
		)
		if keyword == "" && location == "" {
			posts, err = s.jobs.ListByOwner(ctx, v.UserID)
		} else {
			posts, err = s.jobs.SearchByOwner(ctx, v.UserID, keyword, location)
		}
		if err != nil {
			return nil, wrapStore("list own job posts", err)
		}
		return s.decorate(ctx, v, posts, decorateNone)
	default:
		spec, unfiltered := Resolve(p, s.clock())
		return s.Search(ctx, v, spec, unfiltered)
	}
}

// Search runs a resolved spec. Job seekers get applied/saved flags and post age.
func (s *Service) Search(ctx context.Context, v Viewer, spec SearchSpec, unfiltered bool) ([]JobPostView, error) {
	posts, err := s.find(ctx, spec, unfiltered)
	if err != nil {
		return nil, err
	}
	mode := decorateNone
	if v.Kind == JobSeeker {
		mode = decorateFull
	}
	return s.decorate(ctx, v, posts, mode)
}

// GlobalSearch is the faceted search for every role, recruiters included. Post age is
// filled for every viewer.
func (s *Service) GlobalSearch(ctx context.Context, v Viewer, p RawParams) ([]JobPostView, error) {
	spec, unfiltered := Resolve(p, s.clock())
	posts, err := s.find(ctx, spec, unfiltered)
	if err != nil {
		return nil, err
	}
	mode := decorateAge
	if v.Kind == JobSeeker {
		mode = decorateFull
	}
	return s.decorate(ctx, v, posts, mode)
}

// SearchOnly filters by keyword and location without facets or recency
func (s *Service) SearchOnly(ctx context.Context, v Viewer, keyword, location string) ([]JobPostView, error) {
	keyword, location = strings.TrimSpace(keyword), strings.TrimSpace(location)

	var (
		posts []model.JobPost
		err   error
	)
	if keyword == "" && location == "" {
		posts, err = s.jobs.ListAll(ctx)
	} else {
		posts, err = s.jobs.SearchByKeyword(ctx, keyword, location)
	}
	if err != nil {
		return nil, wrapStore("search job posts", err)
	}

	mode := decorateNone
	if v.Kind == JobSeeker {
		mode = decorateFull
	}
	return s.decorate(ctx, v, posts, mode)
}

func (s *Service) find(ctx context.Context, spec SearchSpec, unfiltered bool) ([]model.JobPost, error) {
	var (
		posts []model.JobPost
		err   error
	)
	if unfiltered {
		posts, err = s.jobs.ListAll(ctx)
	} else {
		posts, err = s.jobs.Search(ctx, spec)
	}
	if err != nil {
		return nil, wrapStore("search job posts", err)
	}
	return posts, nil
}

// GetOne loads a single post, decorated when the viewer is a job seeker
func (s *Service) GetOne(ctx context.Context, v Viewer, id uint) (*JobPostView, error) {
	post, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, wrapStore("get job post", err)
	}
	mode := decorateNone
	if v.Kind == JobSeeker {
		mode = decorateFull
	}
	views, err := s.decorate(ctx, v, []model.JobPost{*post}, mode)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// RecruiterJobs summarizes the recruiter's own posts with their candidate counts
func (s *Service) RecruiterJobs(ctx context.Context, v Viewer) ([]model.RecruiterJobSummary, error) {
	if err := requireKind(v, Recruiter, "view recruiter jobs"); err != nil {
		return nil, err
	}
	summaries, err := s.jobs.RecruiterSummaries(ctx, v.UserID)
	if err != nil {
		return nil, wrapStore("summarize recruiter jobs", err)
	}
	return summaries, nil
}

// AddNew creates a post owned by the calling recruiter. When a logo is given and the post
// has a company, the logo is written after the post is saved. A failed logo write leaves
// the post in place and returns it together with an ErrStorage error.
func (s *Service) AddNew(ctx context.Context, v Viewer, post *model.JobPost, logo *LogoUpload) (*model.JobPost, error) {
	if err := requireKind(v, Recruiter, "create job posts"); err != nil {
		return nil, err
	}
	if err := s.validateForm(post.EditableJobPostInfo); err != nil {
		return nil, err
	}

	post.ID = 0
	post.PostedByID = v.UserID
	if post.PostedDate == nil {
		now := s.now()
		post.PostedDate = &now
	}

	if err := s.jobs.Create(ctx, post); err != nil {
		return nil, wrapStore("create job post", err)
	}
	log := s.log.With("post_id", post.ID, "user_id", v.UserID.String())
	log.Info("job post created")

	if logo == nil || post.JobCompanyID == nil {
		return post, nil
	}
	filename := cleanFilename(logo.Filename)
	if filename == "" {
		return post, nil
	}

	dir := CompanyLogoDir(*post.JobCompanyID)
	if err := s.files.SaveFile(ctx, dir, filename, logo.Content); err != nil {
		log.Error("failed to save company logo", "error", err)
		return post, fmt.Errorf("%w: save company logo: %v", ErrStorage, err)
	}
	if err := s.jobs.AttachCompanyLogo(ctx, *post.JobCompanyID, filename); err != nil {
		log.Error("failed to attach company logo", "error", err)
		return post, wrapStore("attach company logo", err)
	}
	if post.JobCompany != nil {
		post.JobCompany.Logo = filename
	}

	return post, nil
}

// UpdateFromForm overwrites the editable fields of a post owned by the caller.
// The id, owner and posted date are never touched.
func (s *Service) UpdateFromForm(ctx context.Context, v Viewer, id uint, form model.EditableJobPostInfo) (*model.JobPost, error) {
	if _, err := s.ownedPost(ctx, v, id, "edit"); err != nil {
		return nil, err
	}
	if err := s.validateForm(form); err != nil {
		return nil, err
	}

	if err := s.jobs.UpdateEditable(ctx, id, form); err != nil {
		return nil, wrapStore("update job post", err)
	}
	s.log.Info("job post updated", "post_id", id, "user_id", v.UserID.String())

	updated, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, wrapStore("reload job post", err)
	}
	return updated, nil
}

// Delete removes a post owned by the caller. Applications and saved records go with it
// through the store's cascading foreign keys.
func (s *Service) Delete(ctx context.Context, v Viewer, id uint) error {
	if _, err := s.ownedPost(ctx, v, id, "delete"); err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, id); err != nil {
		return wrapStore("delete job post", err)
	}
	s.log.Info("job post deleted", "post_id", id, "user_id", v.UserID.String())
	return nil
}

// Apply records that the calling job seeker applied to a post
func (s *Service) Apply(ctx context.Context, v Viewer, postID uint, coverLetter string) (*model.Application, error) {
	if err := requireKind(v, JobSeeker, "apply to job posts"); err != nil {
		return nil, err
	}
	if _, err := s.jobs.FindByID(ctx, postID); err != nil {
		return nil, wrapStore("get job post", err)
	}

	app := &model.Application{
		JobSeekerID: v.UserID,
		PostID:      postID,
		CoverLetter: strings.TrimSpace(coverLetter),
		AppliedAt:   s.now(),
	}
	if err := s.activity.CreateApplication(ctx, app); err != nil {
		return nil, wrapStore("create application", err)
	}
	s.log.Info("application created", "post_id", postID, "user_id", v.UserID.String())
	return app, nil
}

// Save bookmarks a post for the calling job seeker
func (s *Service) Save(ctx context.Context, v Viewer, postID uint) (*model.SavedJob, error) {
	if err := requireKind(v, JobSeeker, "save job posts"); err != nil {
		return nil, err
	}
	if _, err := s.jobs.FindByID(ctx, postID); err != nil {
		return nil, wrapStore("get job post", err)
	}

	saved := &model.SavedJob{
		JobSeekerID: v.UserID,
		PostID:      postID,
		SavedAt:     s.now(),
	}
	if err := s.activity.CreateSavedJob(ctx, saved); err != nil {
		return nil, wrapStore("save job post", err)
	}
	return saved, nil
}

// ownedPost checks authentication before loading so anonymous callers learn nothing
// about which ids exist.
func (s *Service) ownedPost(ctx context.Context, v Viewer, id uint, action string) (*model.JobPost, error) {
	if !v.Authenticated() {
		return nil, fmt.Errorf("%w: sign in to %s job posts", ErrUnauthenticated, action)
	}
	post, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, wrapStore("get job post", err)
	}
	if post.PostedByID != v.UserID {
		return nil, fmt.Errorf("%w: you are not allowed to %s this job post", ErrPermissionDenied, action)
	}
	return post, nil
}

func (s *Service) validateForm(info model.EditableJobPostInfo) error {
	if err := s.validate.Struct(info); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	return nil
}

func (s *Service) decorate(ctx context.Context, v Viewer, posts []model.JobPost, mode decoration) ([]JobPostView, error) {
	views := make([]JobPostView, len(posts))
	for i := range posts {
		views[i].JobPost = posts[i]
	}
	if mode == decorateNone || len(views) == 0 {
		return views, nil
	}

	applied := map[uint]bool{}
	saved := map[uint]bool{}
	if mode == decorateFull && v.Kind == JobSeeker {
		apps, err := s.activity.ListApplications(ctx, v.UserID)
		if err != nil {
			return nil, wrapStore("list applications", err)
		}
		for _, a := range apps {
			applied[a.PostID] = true
		}

		bookmarks, err := s.activity.ListSavedJobs(ctx, v.UserID)
		if err != nil {
			return nil, wrapStore("list saved jobs", err)
		}
		for _, b := range bookmarks {
			saved[b.PostID] = true
		}
	}

	today := s.clock()
	for i := range views {
		views[i].DaysSincePosted = daysBetween(views[i].PostedDate, today, s.loc)
		views[i].Applied = applied[views[i].ID]
		views[i].Saved = saved[views[i].ID]
		views[i].Decorated = true
	}
	return views, nil
}

// daysBetween counts calendar days from posted to today in loc. A nil date counts as 0.
func daysBetween(posted *time.Time, today time.Time, loc *time.Location) int {
	if posted == nil {
		return 0
	}
	py, pm, pd := posted.In(loc).Date()
	ty, tm, td := today.In(loc).Date()
	from := time.Date(py, pm, pd, 0, 0, 0, 0, time.UTC)
	to := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

func requireKind(v Viewer, kind ViewerKind, action string) error {
	if !v.Authenticated() {
		return fmt.Errorf("%w: sign in to %s", ErrUnauthenticated, action)
	}
	if v.Kind != kind {
		return fmt.Errorf("%w: only %s users can %s", ErrPermissionDenied, kind, action)
	}
	return nil
}

// wrapStore keeps not-found and conflict errors as they are and marks everything else as a storage failure
func wrapStore(op string, err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) || errors.Is(err, ErrValidation) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}

// cleanFilename strips directories from an uploaded file name
func cleanFilename(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	base := path.Base(path.Clean("/" + name))
	if base == "/" || base == "." || base == ".." {
		return ""
	}
	return base
}
