package ports

import (
	"context"

	"github.com/campuslife/activity-system/internal/core/domain"
)

// ActivityRepository defines persistence operations for the activity catalog.
// Implementations must make every check-then-write sequence atomic.
type ActivityRepository interface {
	// Create assigns the next sequential id, initialises an empty
	// participant set, and stores the activity.
	Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	// Update applies a partial patch to an existing activity and returns the
	// updated record, or domain.ErrActivityNotFound.
	Update(ctx context.Context, id int64, patch domain.ActivityPatch) (*domain.Activity, error)
	// List returns all activities in creation order, participant sets included.
	List(ctx context.Context) ([]*domain.Activity, error)
	// AddParticipant inserts username into the activity's participant set.
	// It returns domain.ErrActivityNotFound for an unknown id and
	// domain.ErrAlreadyJoined when the username is already present; the
	// membership check and the insert are one atomic step. On success the
	// updated activity is returned.
	AddParticipant(ctx context.Context, id int64, username string) (*domain.Activity, error)
}
