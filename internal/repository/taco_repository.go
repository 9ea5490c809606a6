package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "tacocat/internal/errors"
	"tacocat/internal/model"
)

// TacoRepository defines taco persistence operations.
type TacoRepository interface {
	Create(ctx context.Context, taco *model.Taco) error
	List(ctx context.Context, limit int) ([]model.Taco, error)
	Count(ctx context.Context) (int64, error)
}

type tacoRepository struct {
	db *gorm.DB
}

// NewTacoRepository creates a new taco repository.
func NewTacoRepository(db *gorm.DB) TacoRepository {
	return &tacoRepository{db: db}
}

// Create inserts a taco. The owner is referenced by UserID only; the User
// association is never written.
func (r *tacoRepository) Create(ctx context.Context, taco *model.Taco) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(taco).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("insert taco: %w", err)
	}
	return nil
}

// List returns up to limit tacos in insertion order with their owners loaded.
func (r *tacoRepository) List(ctx context.Context, limit int) ([]model.Taco, error) {
	tacos := make([]model.Taco, 0)
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("id ASC").
		Limit(limit).
		Find(&tacos).Error; err != nil {
		return nil, fmt.Errorf("list tacos: %w", err)
	}
	return tacos, nil
}

// Count returns the total number of tacos.
func (r *tacoRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Taco{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count tacos: %w", err)
	}
	return n, nil
}
