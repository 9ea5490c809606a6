package service

import (
	"context"
	"errors"
	"strings"

	apperrors "tacocat/internal/errors"
	"tacocat/internal/model"
	"tacocat/internal/repository"
)

// DefaultFeedLimit caps the homepage feed when no positive limit is given.
const DefaultFeedLimit = 100

// TacoInput is the user-supplied part of a taco.
type TacoInput struct {
	Protein string
	Shell   string
	Cheese  bool
	Extras  string
}

// TacoService handles taco creation and the feed.
type TacoService interface {
	CreateTaco(ctx context.Context, ownerID uint, in TacoInput) (*model.Taco, error)
	ListTacos(ctx context.Context, limit int) ([]model.Taco, error)
}

type tacoService struct {
	repo repository.TacoRepository
}

// NewTacoService creates a new taco service.
func NewTacoService(repo repository.TacoRepository) TacoService {
	return &tacoService{repo: repo}
}

// CreateTaco stores a taco owned by ownerID. Extras are trimmed and may end up empty.
func (s *tacoService) CreateTaco(ctx context.Context, ownerID uint, in TacoInput) (*model.Taco, error) {
	protein := strings.TrimSpace(in.Protein)
	shell := strings.TrimSpace(in.Shell)
	if ownerID == 0 || protein == "" || shell == "" {
		return nil, apperrors.ErrInvalidInput
	}

	taco := &model.Taco{
		UserID:  ownerID,
		Protein: protein,
		Shell:   shell,
		Cheese:  in.Cheese,
		Extras:  strings.TrimSpace(in.Extras),
	}
	if err := s.repo.Create(ctx, taco); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrSessionInvalid
		}
		return nil, err
	}
	return taco, nil
}

// ListTacos returns the feed in insertion order.
func (s *tacoService) ListTacos(ctx context.Context, limit int) ([]model.Taco, error) {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	return s.repo.List(ctx, limit)
}
