package services

import (
	"context"
	"testing"

	"amps-backend/internal/adapters/persistence/repositories"
	"amps-backend/internal/config"
	"amps-backend/internal/core/domain"
	"amps-backend/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthEnv(t *testing.T) (*AuthService, repositories.UserRepository) {
	t.Helper()

	seed, err := config.BuildSeedData(password.MinCost)
	require.NoError(t, err)

	userRepo := repositories.NewUserRepository(newTestStore(t), seed.Users)
	return NewAuthService(userRepo, testConfig()), userRepo
}

func TestLoginSeedAccounts(t *testing.T) {
	svc, _ := newAuthEnv(t)
	ctx := context.Background()

	cases := []struct {
		email    string
		password string
		role     domain.Role
	}{
		{"principal@school.com", "123", domain.RolePrincipal},
		{"mic@school.com", "123", domain.RoleMasterInCharge},
		{"admin@school.com", "Rugby@al", domain.RoleAdmin},
		{"parent@school.com", "123", domain.RoleParent},
		{"rugby@school.com", "Rugby", domain.RoleCoach},
		{"kungfu@school.com", "Kung Fu", domain.RoleCoach},
	}

	for _, tc := range cases {
		result, err := svc.Login(ctx, &LoginInput{Email: tc.email, Password: tc.password})
		require.NoError(t, err, tc.email)
		assert.Equal(t, tc.role, result.User.Role, tc.email)
		assert.NotEmpty(t, result.AccessToken, tc.email)
	}
}

func TestLoginCoachTokenCarriesTeam(t *testing.T) {
	svc, _ := newAuthEnv(t)

	result, err := svc.Login(context.Background(), &LoginInput{Email: "rugby@school.com", Password: "Rugby"})
	require.NoError(t, err)
	assert.Equal(t, "t1", result.User.AssignedTeamID)

	claims, err := svc.ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "t1", claims.AssignedTeamID)
	assert.Equal(t, string(domain.RoleCoach), claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthEnv(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, &LoginInput{Email: "principal@school.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginInput{Email: "nobody@school.com", Password: "123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// A failed login leaves the session untouched
	assert.Nil(t, svc.CurrentSession(ctx))
}

func TestLoginSetsSessionAndLogoutClearsIt(t *testing.T) {
	svc, _ := newAuthEnv(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, &LoginInput{Email: "admin@school.com", Password: "Rugby@al"})
	require.NoError(t, err)

	session := svc.CurrentSession(ctx)
	require.NotNil(t, session)
	assert.Equal(t, "admin@school.com", session.Email)

	require.NoError(t, svc.Logout(ctx))
	assert.Nil(t, svc.CurrentSession(ctx))
}

func TestForgotPassword(t *testing.T) {
	svc, _ := newAuthEnv(t)
	ctx := context.Background()

	assert.True(t, svc.ForgotPassword(ctx, "admin@school.com"))
	assert.False(t, svc.ForgotPassword(ctx, "nobody@school.com"))
}

func TestAdminResetPassword(t *testing.T) {
	svc, _ := newAuthEnv(t)
	ctx := context.Background()

	require.NoError(t, svc.AdminResetPassword(ctx, "u1", "newpass123"))

	_, err := svc.Login(ctx, &LoginInput{Email: "principal@school.com", Password: "123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	result, err := svc.Login(ctx, &LoginInput{Email: "principal@school.com", Password: "newpass123"})
	require.NoError(t, err)
	assert.Equal(t, "u1", result.User.ID)

	err = svc.AdminResetPassword(ctx, "ghost", "whatever1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
