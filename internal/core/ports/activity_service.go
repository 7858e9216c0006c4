package ports

import (
	"context"

	"github.com/campuslife/activity-system/internal/core/domain"
)

// CreateActivityInput carries all data needed to create a new activity.
type CreateActivityInput struct {
	Title       string
	Description string
	Date        string
}

// UpdateActivityInput carries a partial update; empty fields are left alone.
type UpdateActivityInput struct {
	Title       string
	Description string
	Date        string
}

// JoinResult is returned after a successful join and references the
// activity's title for the confirmation message.
type JoinResult struct {
	ActivityID    int64
	ActivityTitle string
}

// ActivityService defines use-case operations for the activity catalog and
// participant registration.
type ActivityService interface {
	Create(ctx context.Context, input CreateActivityInput) (*domain.Activity, error)
	Update(ctx context.Context, id int64, input UpdateActivityInput) (*domain.Activity, error)
	List(ctx context.Context) ([]*domain.Activity, error)
	Join(ctx context.Context, activityID int64, username string) (*JoinResult, error)
}
