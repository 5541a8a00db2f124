package scheduler

import (
	"countdown/internal/pkg/logger"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
)

func TestSchedulerRunsJob(t *testing.T) {
	s := NewScheduler(logger.Nop())
	defer s.Stop()

	fired := make(chan struct{}, 1)
	if _, err := s.AddJob("* * * * * *", func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	}); err != nil {
		t.Fatalf("AddJob() error = %v", err)
	}

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatalf("job did not fire within 3s")
	}
}

func TestSchedulerRemoveJob(t *testing.T) {
	s := NewScheduler(logger.Nop())
	defer s.Stop()

	id, err := s.AddJob("0 0 0 1 1 *", func() {})
	if err != nil {
		t.Fatalf("AddJob() error = %v", err)
	}
	if got := len(s.GetEntries()); got != 1 {
		t.Fatalf("entries = %d, want 1", got)
	}

	s.RemoveJob(id)
	if got := len(s.GetEntries()); got != 0 {
		t.Fatalf("entries after remove = %d, want 0", got)
	}
}

func TestSchedulerRejectsBadSpec(t *testing.T) {
	s := NewScheduler(logger.Nop())
	defer s.Stop()

	if _, err := s.AddJob("not a spec", func() {}); err == nil {
		t.Fatalf("AddJob() error = nil, want parse error")
	}
}

func TestSchedulerStopWhileJobRemovesItself(t *testing.T) {
	s := NewScheduler(logger.Nop())

	started := make(chan struct{})
	release := make(chan struct{})
	idCh := make(chan cron.EntryID, 1)
	id, err := s.AddJob("* * * * * *", func() {
		select {
		case started <- struct{}{}:
		default:
			return
		}
		<-release
		s.RemoveJob(<-idCh)
	})
	if err != nil {
		t.Fatalf("AddJob() error = %v", err)
	}
	idCh <- id

	select {
	case <-started:
	case <-time.After(3 * time.Second):
		t.Fatalf("job did not start within 3s")
	}

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()
	close(release)

	select {
	case <-stopped:
	case <-time.After(3 * time.Second):
		t.Fatalf("Stop() deadlocked with a job calling RemoveJob")
	}
}
