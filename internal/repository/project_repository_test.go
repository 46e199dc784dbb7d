package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/portfolio-studio/showcase/internal/models"
	"github.com/portfolio-studio/showcase/pkg/database"
	appErr "github.com/portfolio-studio/showcase/pkg/errors"
	"github.com/portfolio-studio/showcase/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Replace(zap.NewNop())
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "projects.db"), "test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(ctx, db))
	return db
}

func TestProjectRepository_SeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository(setupTestDB(t))
	seeds := models.SeedProjects()

	n, err := repo.SeedIfEmpty(ctx, seeds)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Zero(t, seeds[0].ID, "caller's seeds must not be mutated")

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, p := range items {
		assert.Equal(t, int64(i+1), p.ID)
		assert.Equal(t, seeds[i].Title, p.Title)
		assert.Equal(t, seeds[i].Description, p.Description)
		assert.Equal(t, seeds[i].ImageURL, p.ImageURL)
	}

	t.Run("second run leaves rows untouched", func(t *testing.T) {
		n, err := repo.SeedIfEmpty(ctx, seeds)
		require.NoError(t, err)
		assert.Zero(t, n)

		again, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, items, again)
	})
}

func TestProjectRepository_SeedSkipsNonEmptyTable(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository(setupTestDB(t))

	own := models.Project{Title: "Mine", Description: "Existing", ImageURL: "https://example.com/a.png"}
	require.NoError(t, repo.Create(ctx, &own))

	n, err := repo.SeedIfEmpty(ctx, models.SeedProjects())
	require.NoError(t, err)
	assert.Zero(t, n)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Project{own}, items)
}

func TestProjectRepository_CreateAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository(setupTestDB(t))

	first := models.Project{Title: "A", Description: "B", ImageURL: "C"}
	second := models.Project{Title: "A", Description: "B", ImageURL: "C"}
	require.NoError(t, repo.Create(ctx, &first))
	require.NoError(t, repo.Create(ctx, &second))

	assert.Positive(t, first.ID)
	assert.Greater(t, second.ID, first.ID)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Project{first, second}, items)
}

func TestProjectRepository_ListEmpty(t *testing.T) {
	items, err := NewProjectRepository(setupTestDB(t)).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestProjectRepository_StorageFailureIsInternal(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	require.NoError(t, database.Close(db))

	_, err := repo.List(context.Background())
	assert.True(t, appErr.IsCode(err, appErr.CodeInternal))

	_, err = repo.SeedIfEmpty(context.Background(), models.SeedProjects())
	assert.True(t, appErr.IsCode(err, appErr.CodeInternal))
}
