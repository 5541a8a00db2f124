package scheduler

import (
	"countdown/internal/pkg/logger"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
)

// Scheduler manages cron jobs.
type Scheduler struct {
	cron *cron.Cron
	log  logger.Logger
	mu   sync.Mutex // To protect access to job management
}

// NewScheduler creates and starts a cron scheduler with seconds precision.
func NewScheduler(log logger.Logger, opts ...cron.Option) *Scheduler {
	opts = append([]cron.Option{cron.WithSeconds()}, opts...)
	c := cron.New(opts...)
	c.Start()
	log.Info("Cron scheduler started.")
	return &Scheduler{
		cron: c,
		log:  log,
	}
}

// AddJob adds a new job to the scheduler.
// spec follows the six-field cron format (e.g., "0 30 * * * *").
func (s *Scheduler) AddJob(spec string, cmd func()) (cron.EntryID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.cron.AddFunc(spec, cmd)
	if err != nil {
		s.log.Error("Failed to add cron job", err)
		return 0, fmt.Errorf("failed to add cron job: %w", err)
	}
	s.log.Debug(fmt.Sprintf("Added cron job with ID %d, spec: %s", id, spec))
	return id, nil
}

// RemoveJob removes a job from the scheduler by its EntryID.
func (s *Scheduler) RemoveJob(id cron.EntryID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cron.Remove(id)
	s.log.Debug(fmt.Sprintf("Removed cron job with ID %d", id))
}

// Stop stops the cron scheduler and waits for running jobs to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	ctx := s.cron.Stop()
	s.mu.Unlock()

	// Running jobs may still call RemoveJob, so wait without holding the lock.
	<-ctx.Done()
	s.log.Info("Cron scheduler stopped.")
}

// GetEntries returns the list of scheduled entries.
func (s *Scheduler) GetEntries() []cron.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cron.Entries()
}
