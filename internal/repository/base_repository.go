package repository

import (
	"context"

	"gorm.io/gorm"

	appErr "github.com/portfolio-studio/showcase/pkg/errors"
)

// BaseRepository defines the operations shared by all tables.
type BaseRepository[T any] interface {
	Create(ctx context.Context, obj *T) error
	List(ctx context.Context) ([]T, error)
}

type baseRepository[T any] struct {
	db *gorm.DB
}

func NewBaseRepository[T any](db *gorm.DB) BaseRepository[T] {
	return &baseRepository[T]{db: db}
}

func (r *baseRepository[T]) Create(ctx context.Context, obj *T) error {
	if err := r.db.WithContext(ctx).Create(obj).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "create entity failed")
	}
	return nil
}

// List returns every row in primary key order.
func (r *baseRepository[T]) List(ctx context.Context) ([]T, error) {
	out := make([]T, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list entities failed")
	}
	return out, nil
}
