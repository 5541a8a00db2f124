package service

import (
	"context"
	"countdown/internal/domain/entity"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

type scheduleCall struct {
	at time.Time
	n  entity.Notification
}

// fakeScheduler records calls and hands out sequential handles.
type fakeScheduler struct {
	scheduleErr  error
	emptyHandle  bool
	cancelErr    error
	scheduled    []scheduleCall
	cancelled    []string
	handleSerial int
}

func (f *fakeScheduler) Schedule(ctx context.Context, at time.Time, n entity.Notification) (string, error) {
	f.scheduled = append(f.scheduled, scheduleCall{at: at, n: n})
	if f.scheduleErr != nil {
		return "", f.scheduleErr
	}
	if f.emptyHandle {
		return "", nil
	}
	f.handleSerial++
	return fmt.Sprintf("handle-%d", f.handleSerial), nil
}

func (f *fakeScheduler) Cancel(ctx context.Context, handle string) error {
	f.cancelled = append(f.cancelled, handle)
	return f.cancelErr
}

type fakeJob struct {
	spec string
	cmd  func()
}

// fakeRunner stands in for the cron scheduler; jobs run only when fired by the test.
type fakeRunner struct {
	mu      sync.Mutex
	next    cron.EntryID
	jobs    map[cron.EntryID]fakeJob
	removed []cron.EntryID
	addErr  error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{jobs: make(map[cron.EntryID]fakeJob)}
}

func (r *fakeRunner) AddJob(spec string, cmd func()) (cron.EntryID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.addErr != nil {
		return 0, r.addErr
	}
	r.next++
	r.jobs[r.next] = fakeJob{spec: spec, cmd: cmd}
	return r.next, nil
}

func (r *fakeRunner) RemoveJob(id cron.EntryID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.jobs, id)
	r.removed = append(r.removed, id)
}

func (r *fakeRunner) job(id cron.EntryID) (fakeJob, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	return j, ok
}

func (r *fakeRunner) ids() []cron.EntryID {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]cron.EntryID, 0, len(r.jobs))
	for id := range r.jobs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type fakeDeliverer struct {
	err       error
	delivered []entity.Notification
}

func (d *fakeDeliverer) Deliver(ctx context.Context, n entity.Notification) error {
	d.delivered = append(d.delivered, n)
	return d.err
}

type fakeDeliveryRepo struct {
	records   []*entity.Delivery
	createErr error
	findErr   error
	deletedAt []time.Time
	lastLimit int
}

func (r *fakeDeliveryRepo) Create(ctx context.Context, d *entity.Delivery) (uint, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	r.records = append(r.records, d)
	d.ID = uint(len(r.records))
	return d.ID, nil
}

func (r *fakeDeliveryRepo) FindByHandle(ctx context.Context, handle string) (*entity.Delivery, error) {
	for _, d := range r.records {
		if d.Handle == handle {
			return d, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeDeliveryRepo) FindRecent(ctx context.Context, limit int) ([]*entity.Delivery, error) {
	r.lastLimit = limit
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]*entity.Delivery, 0, limit)
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}

func (r *fakeDeliveryRepo) DeleteOlderThan(ctx context.Context, threshold time.Time) error {
	r.deletedAt = append(r.deletedAt, threshold)
	return nil
}
