package jobpost

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"jobportal-backend/internal/model"

	"github.com/google/uuid"
)

// memJobStore is an in-memory JobStore with the same ordering and matching rules as the gorm repository
type memJobStore struct {
	mu        sync.Mutex
	posts     map[uint]model.JobPost
	locations map[uint]model.JobLocation
	companies map[uint]model.JobCompany
	nextID    uint
	failWith  error
}

func newMemJobStore() *memJobStore {
	return &memJobStore{
		posts:     map[uint]model.JobPost{},
		locations: map[uint]model.JobLocation{},
		companies: map[uint]model.JobCompany{},
		nextID:    1,
	}
}

func (m *memJobStore) put(p model.JobPost) model.JobPost {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == 0 {
		p.ID = m.nextID
	}
	if p.ID >= m.nextID {
		m.nextID = p.ID + 1
	}
	m.posts[p.ID] = p
	return p
}

func (m *memJobStore) hydrate(p model.JobPost) model.JobPost {
	if p.JobLocationID != nil {
		if loc, ok := m.locations[*p.JobLocationID]; ok {
			p.JobLocation = &loc
		}
	}
	if p.JobCompanyID != nil {
		if c, ok := m.companies[*p.JobCompanyID]; ok {
			p.JobCompany = &c
		}
	}
	return p
}

func (m *memJobStore) filter(keep func(model.JobPost) bool) ([]model.JobPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []model.JobPost{}
	for _, p := range m.posts {
		if keep(p) {
			out = append(out, m.hydrate(p))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.PostedDate == nil && b.PostedDate == nil:
			return a.ID < b.ID
		case a.PostedDate == nil:
			return false
		case b.PostedDate == nil:
			return true
		case !a.PostedDate.Equal(*b.PostedDate):
			return a.PostedDate.After(*b.PostedDate)
		default:
			return a.ID < b.ID
		}
	})
	return out, nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func (m *memJobStore) matchText(p model.JobPost, keyword, location string) bool {
	if keyword != "" && !containsFold(p.Title, keyword) && !containsFold(p.Description, keyword) {
		return false
	}
	if location != "" {
		if p.JobLocationID == nil {
			return false
		}
		loc := m.locations[*p.JobLocationID]
		if !containsFold(loc.City, location) && !containsFold(loc.State, location) && !containsFold(loc.Country, location) {
			return false
		}
	}
	return true
}

func (m *memJobStore) FindByID(_ context.Context, id uint) (*model.JobPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return nil, fmt.Errorf("%w: job post %d", ErrNotFound, id)
	}
	p = m.hydrate(p)
	return &p, nil
}

func (m *memJobStore) ListAll(context.Context) ([]model.JobPost, error) {
	return m.filter(func(model.JobPost) bool { return true })
}

func (m *memJobStore) ListByOwner(_ context.Context, owner uuid.UUID) ([]model.JobPost, error) {
	return m.filter(func(p model.JobPost) bool { return p.PostedByID == owner })
}

func (m *memJobStore) SearchByOwner(_ context.Context, owner uuid.UUID, keyword, location string) ([]model.JobPost, error) {
	return m.filter(func(p model.JobPost) bool {
		return p.PostedByID == owner && m.matchText(p, keyword, location)
	})
}

func (m *memJobStore) Search(_ context.Context, spec SearchSpec) ([]model.JobPost, error) {
	return m.filter(func(p model.JobPost) bool {
		if !m.matchText(p, spec.Keyword, spec.Location) {
			return false
		}
		if !spec.Types.Contains(p.JobType) || !spec.Modes.Contains(p.Remote) {
			return false
		}
		if spec.Since != nil && (p.PostedDate == nil || p.PostedDate.Before(*spec.Since)) {
			return false
		}
		return true
	})
}

func (m *memJobStore) SearchByKeyword(_ context.Context, keyword, location string) ([]model.JobPost, error) {
	return m.filter(func(p model.JobPost) bool { return m.matchText(p, keyword, location) })
}

func (m *memJobStore) Create(_ context.Context, post *model.JobPost) error {
	if m.failWith != nil {
		return m.failWith
	}
	stored := m.put(*post)
	post.ID = stored.ID
	return nil
}

func (m *memJobStore) UpdateEditable(_ context.Context, id uint, info model.EditableJobPostInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return fmt.Errorf("%w: job post %d", ErrNotFound, id)
	}
	p.EditableJobPostInfo = info
	m.posts[id] = p
	return nil
}

func (m *memJobStore) Delete(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.posts[id]; !ok {
		return fmt.Errorf("%w: job post %d", ErrNotFound, id)
	}
	delete(m.posts, id)
	return nil
}

func (m *memJobStore) AttachCompanyLogo(_ context.Context, companyID uint, logo string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.companies[companyID]
	if !ok {
		return fmt.Errorf("%w: company %d", ErrNotFound, companyID)
	}
	c.Logo = logo
	m.companies[companyID] = c
	return nil
}

func (m *memJobStore) RecruiterSummaries(ctx context.Context, owner uuid.UUID) ([]model.RecruiterJobSummary, error) {
	posts, err := m.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	out := make([]model.RecruiterJobSummary, 0, len(posts))
	for _, p := range posts {
		s := model.RecruiterJobSummary{JobPostID: p.ID, Title: p.Title}
		if p.JobLocation != nil {
			s.Location = *p.JobLocation
		}
		if p.JobCompany != nil {
			s.Company = *p.JobCompany
		}
		out = append(out, s)
	}
	return out, nil
}

type memActivityStore struct {
	mu    sync.Mutex
	apps  []model.Application
	saved []model.SavedJob
}

func (m *memActivityStore) ListApplications(_ context.Context, seeker uuid.UUID) ([]model.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Application{}
	for _, a := range m.apps {
		if a.JobSeekerID == seeker {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memActivityStore) ListSavedJobs(_ context.Context, seeker uuid.UUID) ([]model.SavedJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.SavedJob{}
	for _, s := range m.saved {
		if s.JobSeekerID == seeker {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memActivityStore) CreateApplication(_ context.Context, app *model.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.apps {
		if a.JobSeekerID == app.JobSeekerID && a.PostID == app.PostID {
			return fmt.Errorf("%w: application", ErrConflict)
		}
	}
	app.ID = uint(len(m.apps) + 1)
	m.apps = append(m.apps, *app)
	return nil
}

func (m *memActivityStore) CreateSavedJob(_ context.Context, saved *model.SavedJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.saved {
		if s.JobSeekerID == saved.JobSeekerID && s.PostID == saved.PostID {
			return fmt.Errorf("%w: saved job", ErrConflict)
		}
	}
	saved.ID = uint(len(m.saved) + 1)
	m.saved = append(m.saved, *saved)
	return nil
}

type memFileStore struct {
	files    map[string][]byte
	failWith error
}

func (m *memFileStore) SaveFile(_ context.Context, dir, filename string, content io.Reader) error {
	if m.failWith != nil {
		return m.failWith
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, content); err != nil {
		return err
	}
	if m.files == nil {
		m.files = map[string][]byte{}
	}
	m.files[dir+"/"+filename] = buf.Bytes()
	return nil
}

var errDiskFull = errors.New("disk full")
