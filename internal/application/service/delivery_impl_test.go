package service

import (
	"context"
	"countdown/internal/domain/entity"
	appErrors "countdown/internal/pkg/errors"
	"countdown/internal/pkg/logger"
	"errors"
	"testing"
	"time"
)

func newTestDeliveryService(repo *fakeDeliveryRepo, runner *fakeRunner) *deliveryService {
	s := NewDeliveryService(repo, runner, logger.Nop()).(*deliveryService)
	s.now = func() time.Time { return testNow }
	return s
}

func TestListRecentClampsLimit(t *testing.T) {
	repo := &fakeDeliveryRepo{}
	s := newTestDeliveryService(repo, newFakeRunner())

	for _, limit := range []int{0, -3, 1000} {
		if _, err := s.ListRecent(context.Background(), limit); err != nil {
			t.Fatalf("ListRecent(%d) error = %v", limit, err)
		}
		if repo.lastLimit != defaultDeliveryLimit {
			t.Fatalf("ListRecent(%d) used limit %d, want %d", limit, repo.lastLimit, defaultDeliveryLimit)
		}
	}
}

func TestListRecentMapsRecords(t *testing.T) {
	repo := &fakeDeliveryRepo{records: []*entity.Delivery{
		{Handle: "a", Title: "A", DeliveredAt: testNow},
		{Handle: "b", Title: "B", DeliveredAt: testNow, Error: "boom"},
	}}
	s := newTestDeliveryService(repo, newFakeRunner())

	got, err := s.ListRecent(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(got) != 2 || got[0].Title != "B" || got[0].Error != "boom" || got[1].Title != "A" {
		t.Fatalf("ListRecent() = %+v, want [B(boom) A]", got)
	}
}

func TestListRecentWrapsRepoError(t *testing.T) {
	s := newTestDeliveryService(&fakeDeliveryRepo{findErr: errors.New("locked")}, newFakeRunner())

	if _, err := s.ListRecent(context.Background(), 5); !errors.Is(err, appErrors.ErrDatabaseOperation) {
		t.Fatalf("ListRecent() error = %v, want ErrDatabaseOperation", err)
	}
}

func TestSchedulePruneRunsPrune(t *testing.T) {
	repo := &fakeDeliveryRepo{}
	runner := newFakeRunner()
	s := newTestDeliveryService(repo, runner)

	if err := s.SchedulePrune("0 0 3 * * *", 7*24*time.Hour); err != nil {
		t.Fatalf("SchedulePrune() error = %v", err)
	}
	ids := runner.ids()
	if len(ids) != 1 {
		t.Fatalf("jobs = %d, want 1", len(ids))
	}
	job, _ := runner.job(ids[0])
	if job.spec != "0 0 3 * * *" {
		t.Fatalf("spec = %q, want daily 03:00", job.spec)
	}

	job.cmd()

	if len(repo.deletedAt) != 1 || !repo.deletedAt[0].Equal(testNow.Add(-7*24*time.Hour)) {
		t.Fatalf("prune thresholds = %v, want [%v]", repo.deletedAt, testNow.Add(-7*24*time.Hour))
	}
}
