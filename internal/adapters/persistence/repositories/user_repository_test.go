package repositories

import (
	"context"
	"testing"

	"amps-backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUsers() []domain.User {
	return []domain.User{
		{ID: "u1", Name: "Principal", Email: "principal@school.com", Role: domain.RolePrincipal},
		{ID: "u2", Name: "Admin", Email: "admin@school.com", Role: domain.RoleAdmin},
	}
}

func TestUserRepositoryHydratesFromSeed(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestStore(t), seedUsers())

	assert.Len(t, repo.List(ctx), 2)

	user, err := repo.GetByEmail(ctx, "admin@school.com")
	require.NoError(t, err)
	assert.Equal(t, "u2", user.ID)

	_, err = repo.GetByEmail(ctx, "nobody@school.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepositorySessionPersists(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	repo := NewUserRepository(store, seedUsers())
	assert.Nil(t, repo.Session(ctx))

	user, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	require.NoError(t, repo.SetSession(ctx, user))

	// A fresh repository over the same store restores the session
	rehydrated := NewUserRepository(store, seedUsers())
	session := rehydrated.Session(ctx)
	require.NotNil(t, session)
	assert.Equal(t, "u1", session.ID)

	require.NoError(t, rehydrated.SetSession(ctx, nil))
	assert.Nil(t, rehydrated.Session(ctx))
}

func TestUserRepositoryUpdateRefreshesSession(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestStore(t), seedUsers())

	user, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	require.NoError(t, repo.SetSession(ctx, user))

	user.Name = "Renamed"
	require.NoError(t, repo.Update(ctx, user))

	session := repo.Session(ctx)
	require.NotNil(t, session)
	assert.Equal(t, "Renamed", session.Name)
}

func TestUserRepositoryUpdateUnknownID(t *testing.T) {
	repo := NewUserRepository(newTestStore(t), seedUsers())
	err := repo.Update(context.Background(), &domain.User{ID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
