package services

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/portfolio-studio/showcase/internal/api/validators"
	"github.com/portfolio-studio/showcase/internal/models"
	appErr "github.com/portfolio-studio/showcase/pkg/errors"
	"github.com/portfolio-studio/showcase/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Replace(zap.NewNop())
	os.Exit(m.Run())
}

type mockProjectRepository struct {
	mock.Mock
}

func (m *mockProjectRepository) Create(ctx context.Context, p *models.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectRepository) SeedIfEmpty(ctx context.Context, seeds []models.Project) (int, error) {
	args := m.Called(ctx, seeds)
	return args.Int(0), args.Error(1)
}

func TestCreateProject_AssignsIDAndEchoesInput(t *testing.T) {
	repo := new(mockProjectRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Project) bool {
		return p.ID == 0 && p.Title == "A" && p.Description == "B" && p.ImageURL == "C"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Project).ID = 4
	}).Return(nil)

	svc := NewProjectService(repo, validators.New())
	p, err := svc.CreateProject(context.Background(), &CreateProjectInput{Title: "A", Description: "B", ImageURL: "C"})
	require.NoError(t, err)

	assert.Equal(t, &models.Project{ID: 4, Title: "A", Description: "B", ImageURL: "C"}, p)
	repo.AssertExpectations(t)
}

func TestCreateProject_RejectsMissingFields(t *testing.T) {
	cases := map[string]*CreateProjectInput{
		"nil input":         nil,
		"all empty":         {},
		"missing title":     {Description: "B", ImageURL: "C"},
		"missing desc":      {Title: "A", ImageURL: "C"},
		"missing image_url": {Title: "A", Description: "B"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			repo := new(mockProjectRepository)
			svc := NewProjectService(repo, validators.New())

			_, err := svc.CreateProject(context.Background(), input)
			require.Error(t, err)
			assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))

			var ae *appErr.AppError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, MissingFieldsMessage, ae.Message)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateProject_PropagatesStorageError(t *testing.T) {
	repo := new(mockProjectRepository)
	storageErr := appErr.Wrap(errors.New("disk I/O error"), appErr.CodeInternal, "create entity failed")
	repo.On("Create", mock.Anything, mock.Anything).Return(storageErr)

	_, err := NewProjectService(repo, validators.New()).
		CreateProject(context.Background(), &CreateProjectInput{Title: "A", Description: "B", ImageURL: "C"})
	assert.ErrorIs(t, err, storageErr)
}

func TestBootstrap_SeedsFixedCatalogue(t *testing.T) {
	repo := new(mockProjectRepository)
	repo.On("SeedIfEmpty", mock.Anything, models.SeedProjects()).Return(3, nil).Once()
	repo.On("SeedIfEmpty", mock.Anything, models.SeedProjects()).Return(0, nil).Once()

	svc := NewProjectService(repo, validators.New())

	n, err := svc.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = svc.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	repo.AssertExpectations(t)
}

func TestListProjects_DelegatesToRepository(t *testing.T) {
	repo := new(mockProjectRepository)
	want := []models.Project{{ID: 1, Title: "Nexus Platform"}}
	repo.On("List", mock.Anything).Return(want, nil)

	got, err := NewProjectService(repo, validators.New()).ListProjects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
