// Package scheduler runs the periodic maintenance jobs of the API server.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"jobportal-backend/internal/jobpost"
	"jobportal-backend/internal/logging"
	"jobportal-backend/internal/model"
	"jobportal-backend/internal/storage"

	"github.com/robfig/cron/v3"
)

// Default cron specs
const (
	BlacklistCleanupSpec = "@every 5m"
	LogoPruneSpec        = "@every 24h"
)

// LogoGracePeriod is how old an unreferenced logo must be before it is pruned.
// A job post upload writes the file before the company row points at it.
const LogoGracePeriod = 15 * time.Minute

// ExpiringBlacklist is a token blacklist that must be pruned by hand
type ExpiringBlacklist interface {
	CleanUpExpired() int
}

// CompanyLister lists every company with its current logo
type CompanyLister interface {
	ListCompanies(ctx context.Context) ([]model.JobCompany, error)
}

// Scheduler wraps robfig/cron and owns the maintenance jobs.
type Scheduler struct {
	cron *cron.Cron
	log  *logging.Logger

	blacklist ExpiringBlacklist
	companies CompanyLister
	files     storage.Store

	grace time.Duration
	now   func() time.Time
}

// New creates a Scheduler. A nil dependency disables the job that needs it.
func New(log *logging.Logger, blacklist ExpiringBlacklist, companies CompanyLister, files storage.Store) *Scheduler {
	if log == nil {
		log = logging.Nop()
	}
	return &Scheduler{
		cron:      cron.New(),
		log:       log.With("component", "scheduler"),
		blacklist: blacklist,
		companies: companies,
		files:     files,
		grace:     LogoGracePeriod,
		now:       time.Now,
	}
}

// Start registers the enabled jobs and starts the cron loop
func (s *Scheduler) Start(ctx context.Context) error {
	if s.blacklist != nil {
		if _, err := s.cron.AddFunc(BlacklistCleanupSpec, s.CleanBlacklist); err != nil {
			return fmt.Errorf("cron.AddFunc: %w", err)
		}
	}
	if s.companies != nil && s.files != nil {
		_, err := s.cron.AddFunc(LogoPruneSpec, func() {
			if _, err := s.PruneLogos(ctx); err != nil {
				s.log.Error("logo prune failed", "error", err)
			}
		})
		if err != nil {
			return fmt.Errorf("cron.AddFunc: %w", err)
		}
	}

	s.cron.Start()
	s.log.Info("cron started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop halts the cron loop and waits for running jobs to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("cron stopped")
}

// CleanBlacklist drops expired tokens from the in-memory blacklist
func (s *Scheduler) CleanBlacklist() {
	if removed := s.blacklist.CleanUpExpired(); removed > 0 {
		s.log.Debug("expired tokens removed", "count", removed)
	}
}

// PruneLogos removes files under company/<id> that are not the company's current logo
// and are older than the grace period. It keeps going after a failed company and
// returns the first error.
func (s *Scheduler) PruneLogos(ctx context.Context) (int, error) {
	companies, err := s.companies.ListCompanies(ctx)
	if err != nil {
		return 0, fmt.Errorf("list companies: %w", err)
	}

	cutoff := s.now().Add(-s.grace)
	var firstErr error
	removed := 0
	for _, company := range companies {
		dir := jobpost.CompanyLogoDir(company.ID)
		files, err := s.files.List(ctx, dir)
		if err != nil {
			s.log.Warn("list logos failed", "company_id", company.ID, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		for _, f := range files {
			if f.Name == company.Logo || f.ModTime.After(cutoff) {
				continue
			}
			if err := s.files.Remove(ctx, dir, f.Name); err != nil {
				s.log.Warn("remove logo failed", "company_id", company.ID, "file", f.Name, "error", err)
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			removed++
		}
	}

	if removed > 0 {
		s.log.Info("orphaned logos removed", "count", removed)
	}
	return removed, firstErr
}
