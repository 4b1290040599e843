package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mkhalfin/accounts/pkg/auth"
)

// UserRepository is an in-memory auth.UserRepository. It honors the same
// contract as the PostgreSQL implementation (lowercased emails, atomic
// uniqueness) and is used in tests.
type UserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]auth.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byEmail: make(map[string]auth.User)}
}

func (r *UserRepository) Create(ctx context.Context, user auth.User) error {
	email := strings.ToLower(user.Email)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[email]; exists {
		return auth.ErrEmailTaken
	}
	user.Email = email
	r.byEmail[email] = user
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return auth.User{}, auth.ErrNotFound
}
