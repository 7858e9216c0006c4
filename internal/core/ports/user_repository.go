package ports

import (
	"context"

	"github.com/campuslife/activity-system/internal/core/domain"
)

// UserRepository defines persistence operations for identities.
type UserRepository interface {
	// Create assigns the next sequential id and stores the user. The
	// username-uniqueness check and the insert are a single atomic step.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByCredentials matches username and password exactly. It returns
	// domain.ErrInvalidCredentials on any mismatch, without revealing which
	// field was wrong.
	FindByCredentials(ctx context.Context, username, password string) (*domain.User, error)
}
