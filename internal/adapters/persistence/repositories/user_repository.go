package repositories

import (
	"context"
	"sync"

	"amps-backend/internal/adapters/persistence/blob"
	"amps-backend/internal/core/domain"
)

// userRepository implements UserRepository over the blob store
type userRepository struct {
	mu      sync.RWMutex
	store   blob.Store
	users   []domain.User
	session *domain.User
}

// NewUserRepository creates a user repository, hydrating from storage and
// falling back to the seed list and an empty session
func NewUserRepository(store blob.Store, seed []domain.User) UserRepository {
	return &userRepository{
		store:   store,
		users:   loadCollection(store, KeyUsers, seed),
		session: loadCollection[*domain.User](store, KeySession, nil),
	}
}

// List returns a copy of the user list in insertion order
func (r *userRepository) List(_ context.Context) []domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out
}

// GetByID gets a user by ID
func (r *userRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// GetByEmail gets a user by exact email match
func (r *userRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Create appends a new user
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, *user)
	return persist(ctx, r.store, KeyUsers, r.users)
}

// Update replaces the stored user with matching ID wholesale. The persisted
// session is refreshed when it refers to the same user.
func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = *user
			found = true
			break
		}
	}
	if !found {
		return domain.ErrUserNotFound
	}

	if err := persist(ctx, r.store, KeyUsers, r.users); err != nil {
		return err
	}

	if r.session != nil && r.session.ID == user.ID {
		u := *user
		r.session = &u
		return persist(ctx, r.store, KeySession, r.session)
	}
	return nil
}

// Session returns the current session user, or nil
func (r *userRepository) Session(_ context.Context) *domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.session == nil {
		return nil
	}
	u := *r.session
	return &u
}

// SetSession sets or clears (nil) the current session
func (r *userRepository) SetSession(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user == nil {
		r.session = nil
	} else {
		u := *user
		r.session = &u
	}
	return persist(ctx, r.store, KeySession, r.session)
}
