package services

import (
	"context"
	"errors"
	"log"

	"amps-backend/internal/adapters/persistence/repositories"
	"amps-backend/internal/config"
	"amps-backend/internal/core/domain"
	"amps-backend/internal/pkg/jwt"
	"amps-backend/internal/pkg/password"
)

// AuthService handles authentication and session business logic
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User        *domain.PublicUser `json:"user"`
	AccessToken string             `json:"access_token"`
}

// Login authenticates a user by exact email match and password verification.
// On success the session is set and a token issued; on failure the session is
// left unchanged.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.userRepo.SetSession(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s [%s]", user.Email, user.Role)

	return &AuthResponse{
		User:        user.Public(),
		AccessToken: token,
	}, nil
}

// Logout clears the current session unconditionally
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.userRepo.SetSession(ctx, nil); err != nil {
		return err
	}
	log.Printf("✅ User logged out")
	return nil
}

// ForgotPassword reports whether an account with that email exists. No mail
// is sent; callers must not assume delivery.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) bool {
	_, err := s.userRepo.GetByEmail(ctx, email)
	return err == nil
}

// AdminResetPassword overwrites the target user's password hash. The
// repository refreshes the session if the target is the current user.
// Role gating is the caller's responsibility.
func (s *AuthService) AdminResetPassword(ctx context.Context, userID, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	hash, err := password.HashWithCost(newPassword, s.cfg.BcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	log.Printf("✅ Password reset for user: %s", user.Email)
	return nil
}

// CurrentSession returns the current session user, or nil
func (s *AuthService) CurrentSession(ctx context.Context) *domain.PublicUser {
	user := s.userRepo.Session(ctx)
	if user == nil {
		return nil
	}
	return user.Public()
}

// ValidateAccessToken validates an access token
func (s *AuthService) ValidateAccessToken(accessToken string) (*jwt.Claims, error) {
	return jwt.ValidateAccessToken(accessToken, s.cfg.JWT.Secret)
}

// generateToken issues an access token carrying the scoping claims
func (s *AuthService) generateToken(user *domain.User) (string, error) {
	return jwt.GenerateAccessToken(
		user.ID,
		user.Email,
		user.Name,
		string(user.Role),
		user.AssignedTeamID,
		user.LinkedPlayerID,
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
}
