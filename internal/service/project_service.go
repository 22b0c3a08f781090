package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

// ProjectService coordina reglas de negocio para proyectos. La autenticación
// la garantiza el middleware; aquí solo se valida y se delega persistencia.
type ProjectService struct {
	logger   *zap.Logger
	projects repository.ProjectRepository
}

func NewProjectService(logger *zap.Logger, projects repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		logger:   logger,
		projects: projects,
	}
}

// ProjectInput trae los campos editables ya con technologies en forma
// canónica (el handler resuelve string-o-lista en el borde JSON).
type ProjectInput struct {
	Title        string
	Description  string
	ImageURL     string
	Technologies []string
	LiveDemoLink string
	GithubLink   string
}

var (
	ErrValidation      = errors.New("validation failed")
	ErrProjectNotFound = errors.New("project not found")
)

// List devuelve todos los proyectos, los más recientes primero.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	if s.projects == nil {
		return nil, errors.New("project service not configured")
	}
	return s.projects.List(ctx)
}

// Create valida el input y persiste un proyecto nuevo.
func (s *ProjectService) Create(ctx context.Context, input ProjectInput) (domain.Project, error) {
	if s.projects == nil {
		return domain.Project{}, errors.New("project service not configured")
	}

	input = trimInput(input)
	if err := validateInput(input); err != nil {
		return domain.Project{}, err
	}

	now := time.Now().UTC()
	project := domain.Project{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
		Technologies: domain.NormalizeTechnologies(input.Technologies),
		LiveDemoLink: input.LiveDemoLink,
		GithubLink:   input.GithubLink,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

// Update reemplaza todos los campos editables del proyecto (full replace: un
// campo omitido en el input no conserva su valor anterior) y refresca
// updated_at. ErrProjectNotFound si el id no existe.
func (s *ProjectService) Update(ctx context.Context, id string, input ProjectInput) (domain.Project, error) {
	if s.projects == nil {
		return domain.Project{}, errors.New("project service not configured")
	}

	existing, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Project{}, ErrProjectNotFound
		}
		return domain.Project{}, err
	}

	input = trimInput(input)
	if err := validateInput(input); err != nil {
		return domain.Project{}, err
	}

	project := domain.Project{
		ID:           existing.ID,
		Title:        input.Title,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
		Technologies: domain.NormalizeTechnologies(input.Technologies),
		LiveDemoLink: input.LiveDemoLink,
		GithubLink:   input.GithubLink,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    time.Now().UTC(),
	}

	if err := s.projects.Update(ctx, project); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Project{}, ErrProjectNotFound
		}
		return domain.Project{}, err
	}
	return project, nil
}

// Delete elimina un proyecto. ErrProjectNotFound si el id no existe.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if s.projects == nil {
		return errors.New("project service not configured")
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrProjectNotFound
		}
		return err
	}
	return nil
}

func trimInput(input ProjectInput) ProjectInput {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.ImageURL = strings.TrimSpace(input.ImageURL)
	input.LiveDemoLink = strings.TrimSpace(input.LiveDemoLink)
	input.GithubLink = strings.TrimSpace(input.GithubLink)
	return input
}

func validateInput(input ProjectInput) error {
	if input.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if input.Description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if input.ImageURL == "" {
		return fmt.Errorf("%w: imageURL is required", ErrValidation)
	}
	return nil
}
