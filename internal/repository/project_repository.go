package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/portfolio-studio/showcase/internal/models"
	appErr "github.com/portfolio-studio/showcase/pkg/errors"
)

type ProjectRepository interface {
	BaseRepository[models.Project]
	// SeedIfEmpty inserts seeds only when the table has no rows and reports how
	// many rows were written. The check and the insert share one transaction.
	SeedIfEmpty(ctx context.Context, seeds []models.Project) (int, error)
}

type projectRepository struct {
	BaseRepository[models.Project]
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{BaseRepository: NewBaseRepository[models.Project](db), db: db}
}

func (r *projectRepository) SeedIfEmpty(ctx context.Context, seeds []models.Project) (int, error) {
	inserted := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Project{}).Count(&n).Error; err != nil {
			return appErr.Wrap(err, appErr.CodeInternal, "count projects failed")
		}
		if n > 0 || len(seeds) == 0 {
			return nil
		}
		rows := make([]models.Project, len(seeds))
		copy(rows, seeds)
		if err := tx.Create(&rows).Error; err != nil {
			return appErr.Wrap(err, appErr.CodeInternal, "insert seed projects failed")
		}
		inserted = len(rows)
		return nil
	})
	if err != nil {
		if appErr.CodeOf(err) == appErr.CodeUnknown {
			return 0, appErr.Wrap(err, appErr.CodeInternal, "seed transaction failed")
		}
		return 0, err
	}
	return inserted, nil
}
