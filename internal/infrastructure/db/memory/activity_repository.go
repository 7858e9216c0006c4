package memory

import (
	"context"
	"sync"

	"github.com/campuslife/activity-system/internal/core/domain"
)

// ActivityRepository is a volatile, process-lifetime activity store.
// Creation order doubles as list order. All mutations and membership checks
// happen under one mutex, keeping the no-duplicate-participant invariant
// intact across concurrent joins.
type ActivityRepository struct {
	mu         sync.Mutex
	activities []*domain.Activity
	nextID     int64
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{nextID: 1}
}

func (r *ActivityRepository) Create(_ context.Context, activity *domain.Activity) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := &domain.Activity{
		ID:           r.nextID,
		Title:        activity.Title,
		Description:  activity.Description,
		Date:         activity.Date,
		Participants: []string{},
	}
	r.nextID++
	r.activities = append(r.activities, stored)

	return cloneActivity(stored), nil
}

func (r *ActivityRepository) Update(_ context.Context, id int64, patch domain.ActivityPatch) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity := r.findLocked(id)
	if activity == nil {
		return nil, domain.ErrActivityNotFound
	}

	patch.Apply(activity)
	return cloneActivity(activity), nil
}

func (r *ActivityRepository) List(_ context.Context) ([]*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Activity, 0, len(r.activities))
	for _, a := range r.activities {
		out = append(out, cloneActivity(a))
	}
	return out, nil
}

func (r *ActivityRepository) AddParticipant(_ context.Context, id int64, username string) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity := r.findLocked(id)
	if activity == nil {
		return nil, domain.ErrActivityNotFound
	}
	if activity.HasParticipant(username) {
		return nil, domain.ErrAlreadyJoined
	}

	activity.Participants = append(activity.Participants, username)
	return cloneActivity(activity), nil
}

// findLocked returns the stored record for id, or nil. Caller holds r.mu.
func (r *ActivityRepository) findLocked(id int64) *domain.Activity {
	for _, a := range r.activities {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// cloneActivity copies the record so callers never hold a reference into the
// store's mutable state.
func cloneActivity(a *domain.Activity) *domain.Activity {
	out := *a
	out.Participants = append([]string(nil), a.Participants...)
	return &out
}
