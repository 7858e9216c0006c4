package memory

import (
	"context"
	"sync"

	"github.com/campuslife/activity-system/internal/core/domain"
)

// UserRepository is a volatile, process-lifetime credential store. A single
// mutex makes each check-then-write sequence atomic, so the username
// uniqueness invariant holds under concurrent registrations.
type UserRepository struct {
	mu     sync.Mutex
	users  []domain.User
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{nextID: 1}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}

	stored := *user
	stored.ID = r.nextID
	r.nextID++
	r.users = append(r.users, stored)

	out := stored
	return &out, nil
}

func (r *UserRepository) FindByCredentials(_ context.Context, username, password string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username && u.Password == password {
			out := u
			return &out, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}
