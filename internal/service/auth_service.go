package service

import (
	"context"
	"errors"
	"fmt"

	"tacocat/internal/auth"
	apperrors "tacocat/internal/errors"
	"tacocat/internal/model"
)

// AuthService handles login, logout and session resolution.
type AuthService interface {
	// Login verifies credentials and issues a session token. Unknown email and
	// wrong password both yield ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	// Logout revokes the session. A nil session is a no-op.
	Logout(ctx context.Context, session *auth.Claims) error
	// Authenticate resolves a session token to its user. Sessions whose user no
	// longer exists are reported as ErrSessionInvalid.
	Authenticate(ctx context.Context, token string) (*auth.Claims, *model.User, error)
}

type authService struct {
	users    UserService
	hasher   auth.PasswordHasher
	sessions *auth.SessionManager
}

// NewAuthService creates a new authentication service.
func NewAuthService(users UserService, hasher auth.PasswordHasher, sessions *auth.SessionManager) AuthService {
	return &authService{
		users:    users,
		hasher:   hasher,
		sessions: sessions,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.sessions.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("issue session: %w", err)
	}
	return token, user, nil
}

func (s *authService) Logout(ctx context.Context, session *auth.Claims) error {
	if session == nil {
		return nil
	}
	if err := s.sessions.Revoke(ctx, session); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*auth.Claims, *model.User, error) {
	claims, err := s.sessions.Parse(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.users.GetUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil, apperrors.ErrSessionInvalid
		}
		return nil, nil, fmt.Errorf("load session user: %w", err)
	}
	return claims, user, nil
}
