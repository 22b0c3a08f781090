package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain"
)

// ProjectRepository define el contrato de persistencia para proyectos.
type ProjectRepository interface {
	Create(ctx context.Context, project domain.Project) error
	// List devuelve todos los proyectos ordenados por fecha de creación
	// descendente (los más recientes primero).
	List(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id string) (domain.Project, error)
	// Update reemplaza todas las columnas editables; pgx.ErrNoRows si el id
	// no existe.
	Update(ctx context.Context, project domain.Project) error
	Delete(ctx context.Context, id string) error
}

// PgProjectRepository implementa ProjectRepository usando pgxpool.
// technologies se guarda como text[].
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

func (r *PgProjectRepository) Create(ctx context.Context, project domain.Project) error {
	const query = `
		INSERT INTO projects (id, title, description, image_url, technologies,
			live_demo_link, github_link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		project.ID,
		project.Title,
		project.Description,
		project.ImageURL,
		project.Technologies,
		project.LiveDemoLink,
		project.GithubLink,
		project.CreatedAt,
		project.UpdatedAt,
	)
	return err
}

func (r *PgProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	const query = `
		SELECT id, title, description, image_url, technologies,
			live_demo_link, github_link, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]domain.Project, 0)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.ImageURL,
			&p.Technologies,
			&p.LiveDemoLink,
			&p.GithubLink,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (domain.Project, error) {
	const query = `
		SELECT id, title, description, image_url, technologies,
			live_demo_link, github_link, created_at, updated_at
		FROM projects
		WHERE id = $1
	`
	var p domain.Project
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.ImageURL,
		&p.Technologies,
		&p.LiveDemoLink,
		&p.GithubLink,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Project{}, err
	}
	return p, err
}

func (r *PgProjectRepository) Update(ctx context.Context, project domain.Project) error {
	const query = `
		UPDATE projects
		SET title = $2, description = $3, image_url = $4, technologies = $5,
			live_demo_link = $6, github_link = $7, updated_at = $8
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		project.ID,
		project.Title,
		project.Description,
		project.ImageURL,
		project.Technologies,
		project.LiveDemoLink,
		project.GithubLink,
		project.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM projects WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
