package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campuslife/activity-system/internal/core/domain"
	"github.com/campuslife/activity-system/internal/core/ports"
)

type stubActivityRepo struct {
	activities []*domain.Activity
	nextID     int64
}

func newStubActivityRepo() *stubActivityRepo {
	return &stubActivityRepo{nextID: 1}
}

func (r *stubActivityRepo) find(id int64) *domain.Activity {
	for _, a := range r.activities {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (r *stubActivityRepo) Create(_ context.Context, activity *domain.Activity) (*domain.Activity, error) {
	stored := &domain.Activity{
		ID:           r.nextID,
		Title:        activity.Title,
		Description:  activity.Description,
		Date:         activity.Date,
		Participants: []string{},
	}
	r.nextID++
	r.activities = append(r.activities, stored)
	return stored, nil
}

func (r *stubActivityRepo) Update(_ context.Context, id int64, patch domain.ActivityPatch) (*domain.Activity, error) {
	a := r.find(id)
	if a == nil {
		return nil, domain.ErrActivityNotFound
	}
	patch.Apply(a)
	return a, nil
}

func (r *stubActivityRepo) List(_ context.Context) ([]*domain.Activity, error) {
	return r.activities, nil
}

func (r *stubActivityRepo) AddParticipant(_ context.Context, id int64, username string) (*domain.Activity, error) {
	a := r.find(id)
	if a == nil {
		return nil, domain.ErrActivityNotFound
	}
	if a.HasParticipant(username) {
		return nil, domain.ErrAlreadyJoined
	}
	a.Participants = append(a.Participants, username)
	return a, nil
}

func newActivityService(repo ports.ActivityRepository) *ActivityService {
	return NewActivityService(repo, zerolog.Nop())
}

func TestActivityService_Create_Success(t *testing.T) {
	svc := newActivityService(newStubActivityRepo())

	activity, err := svc.Create(context.Background(), ports.CreateActivityInput{
		Title:       "Hackathon",
		Description: "24h coding",
		Date:        "2026-09-12",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if activity.ID != 1 {
		t.Fatalf("expected id 1, got %d", activity.ID)
	}
	if len(activity.Participants) != 0 {
		t.Fatalf("expected empty participant set, got %v", activity.Participants)
	}
}

func TestActivityService_Create_MissingFields(t *testing.T) {
	svc := newActivityService(newStubActivityRepo())

	inputs := []ports.CreateActivityInput{
		{Description: "d", Date: "2026-01-01"},
		{Title: "t", Date: "2026-01-01"},
		{Title: "t", Description: "d"},
	}
	for _, in := range inputs {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", in, err)
		}
	}
}

func TestActivityService_Update_Partial(t *testing.T) {
	repo := newStubActivityRepo()
	svc := newActivityService(repo)

	created, err := svc.Create(context.Background(), ports.CreateActivityInput{
		Title:       "Workshop",
		Description: "Intro to Go",
		Date:        "2026-10-01",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateActivityInput{Title: "Advanced Workshop"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Advanced Workshop" {
		t.Fatalf("title not updated: %s", updated.Title)
	}
	if updated.Description != "Intro to Go" || updated.Date != "2026-10-01" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestActivityService_Update_NotFound(t *testing.T) {
	svc := newActivityService(newStubActivityRepo())

	if _, err := svc.Update(context.Background(), 99, ports.UpdateActivityInput{Title: "x"}); !errors.Is(err, domain.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
}

func TestActivityService_List_CreationOrder(t *testing.T) {
	svc := newActivityService(newStubActivityRepo())

	for _, title := range []string{"first", "second", "third"} {
		if _, err := svc.Create(context.Background(), ports.CreateActivityInput{
			Title: title, Description: "d", Date: "2026-01-01",
		}); err != nil {
			t.Fatalf("create %s failed: %v", title, err)
		}
	}

	activities, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(activities) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(activities))
	}
	for i, want := range []string{"first", "second", "third"} {
		if activities[i].Title != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, activities[i].Title)
		}
	}
}

func TestActivityService_Join_OnceThenRejected(t *testing.T) {
	svc := newActivityService(newStubActivityRepo())

	created, err := svc.Create(context.Background(), ports.CreateActivityInput{
		Title: "Chess Club", Description: "weekly games", Date: "2026-03-03",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	result, err := svc.Join(context.Background(), created.ID, "alice")
	if err != nil {
		t.Fatalf("first join failed: %v", err)
	}
	if result.ActivityTitle != "Chess Club" {
		t.Fatalf("expected title in result, got %q", result.ActivityTitle)
	}

	if _, err := svc.Join(context.Background(), created.ID, "alice"); !errors.Is(err, domain.ErrAlreadyJoined) {
		t.Fatalf("expected ErrAlreadyJoined, got %v", err)
	}

	activities, _ := svc.List(context.Background())
	if got := len(activities[0].Participants); got != 1 {
		t.Fatalf("expected exactly 1 participant, got %d", got)
	}
}

func TestActivityService_Join_UnknownActivity(t *testing.T) {
	svc := newActivityService(newStubActivityRepo())

	if _, err := svc.Join(context.Background(), 404, "alice"); !errors.Is(err, domain.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
}
