package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/portfolio-studio/showcase/internal/models"
	"github.com/portfolio-studio/showcase/internal/repository"
	appErr "github.com/portfolio-studio/showcase/pkg/errors"
	"github.com/portfolio-studio/showcase/pkg/logger"
)

// MissingFieldsMessage is returned whenever a create request lacks a usable
// title, description or image_url.
const MissingFieldsMessage = "Missing required fields (title, description, image_url)"

type ProjectService interface {
	// Bootstrap seeds the demonstration projects into an empty table.
	Bootstrap(ctx context.Context) (int, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, input *CreateProjectInput) (*models.Project, error)
}

// CreateProjectInput carries client-supplied fields. Empty strings count as missing.
type CreateProjectInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"image_url" validate:"required"`
}

// Validator is satisfied by *validator.Validate.
type Validator interface {
	Struct(any) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
	validate    Validator
	seeds       []models.Project
}

func NewProjectService(projectRepo repository.ProjectRepository, v Validator) ProjectService {
	return &projectService{projectRepo: projectRepo, validate: v, seeds: models.SeedProjects()}
}

var _ ProjectService = (*projectService)(nil)

func (s *projectService) Bootstrap(ctx context.Context) (int, error) {
	n, err := s.projectRepo.SeedIfEmpty(ctx, s.seeds)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.L().Info("seeded projects table", zap.Int("rows", n))
	} else {
		logger.L().Debug("projects table already populated, skipping seed")
	}
	return n, nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.List(ctx)
}

// CreateProject stores a new project. The returned project echoes the input
// fields together with the storage-assigned ID.
func (s *projectService) CreateProject(ctx context.Context, input *CreateProjectInput) (*models.Project, error) {
	if input == nil {
		return nil, appErr.New(appErr.CodeInvalid, MissingFieldsMessage)
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInvalid, MissingFieldsMessage)
	}

	p := &models.Project{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}
	if err := s.projectRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	logger.L().Info("project created", zap.Int64("project_id", p.ID), zap.String("title", p.Title))
	return p, nil
}
