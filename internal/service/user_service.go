package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"tacocat/internal/auth"
	"tacocat/internal/cache"
	apperrors "tacocat/internal/errors"
	"tacocat/internal/model"
	"tacocat/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes user registration and lookup.
type UserService interface {
	CreateUser(ctx context.Context, email, password string) (*model.User, error)
	// EnsureUser creates the user unless the email is already registered.
	EnsureUser(ctx context.Context, email, password string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
}

type userService struct {
	repo   repository.UserRepository
	hasher auth.PasswordHasher
	cache  *cache.Client
}

// NewUserService builds a UserService with repository, hasher and cache.
func NewUserService(repo repository.UserRepository, hasher auth.PasswordHasher, cache *cache.Client) UserService {
	return &userService{repo: repo, hasher: hasher, cache: cache}
}

// NormalizeEmail is applied to every email before it reaches storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) CreateUser(ctx context.Context, email, password string) (*model.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{Email: email, PasswordHash: hash}
	err = s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.UserRepository) error {
		return repo.Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateUser) {
			return nil, apperrors.ErrDuplicateUser
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) EnsureUser(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.CreateUser(ctx, email, password)
	if errors.Is(err, apperrors.ErrDuplicateUser) {
		return s.FindByEmail(ctx, email)
	}
	return user, err
}

func (s *userService) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.repo.FindByEmail(ctx, NormalizeEmail(email))
}

// GetUser reads through the cache. Cached users carry no password hash.
func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}
