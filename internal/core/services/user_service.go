package services

import (
	"context"
	"errors"
	"log"

	"amps-backend/internal/adapters/persistence/repositories"
	"amps-backend/internal/config"
	"amps-backend/internal/core/domain"
	"amps-backend/internal/pkg/password"

	"github.com/google/uuid"
)

// UserService handles account management business logic
type UserService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository, cfg *config.Config) *UserService {
	return &UserService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// ListUsers returns every account without credential fields
func (s *UserService) ListUsers(ctx context.Context) []*domain.PublicUser {
	users := s.userRepo.List(ctx)
	out := make([]*domain.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out
}

// GetUserByID gets a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id string) (*domain.PublicUser, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// CreateUserInput represents admin account-creation input
type CreateUserInput struct {
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Password       string      `json:"password"`
	Role           domain.Role `json:"role"`
	AssignedTeamID string      `json:"assignedTeamId"`
	LinkedPlayerID string      `json:"linkedPlayerId"`
	AvatarURL      string      `json:"avatarUrl"`
}

// CreateUser creates a new account (admin action)
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*domain.PublicUser, error) {
	if !input.Role.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := password.HashWithCost(input.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Email:          input.Email,
		PasswordHash:   hash,
		Role:           input.Role,
		AssignedTeamID: input.AssignedTeamID,
		LinkedPlayerID: input.LinkedPlayerID,
		AvatarURL:      input.AvatarURL,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User created: %s [%s]", user.Email, user.Role)
	return user.Public(), nil
}

// UpdateUserInput carries the replaceable profile fields of an account
type UpdateUserInput struct {
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Role           domain.Role `json:"role"`
	AssignedTeamID string      `json:"assignedTeamId"`
	LinkedPlayerID string      `json:"linkedPlayerId"`
	AvatarURL      string      `json:"avatarUrl"`
}

// ErrSelfRoleChange guards an admin demoting themselves by accident
var ErrSelfRoleChange = errors.New("cannot change your own role")

// UpdateUser replaces the stored user's profile fields wholesale, keeping the
// password hash (passwords change only via reset). The repository refreshes
// the session if the target is the current user.
func (s *UserService) UpdateUser(ctx context.Context, id, actorID string, input *UpdateUserInput) (*domain.PublicUser, error) {
	if !input.Role.IsValid() {
		return nil, domain.ErrInvalidInput
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if id == actorID && input.Role != user.Role {
		return nil, ErrSelfRoleChange
	}

	if input.Email != user.Email {
		if other, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil && other.ID != id {
			return nil, domain.ErrEmailTaken
		}
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Role = input.Role
	user.AssignedTeamID = input.AssignedTeamID
	user.LinkedPlayerID = input.LinkedPlayerID
	user.AvatarURL = input.AvatarURL

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// UpdateProfileInput carries the self-editable profile fields
type UpdateProfileInput struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// UpdateProfile updates the caller's own name and avatar reference
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*domain.PublicUser, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = input.Name
	user.AvatarURL = input.AvatarURL

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.Public(), nil
}
