package http

import (
	"context"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/service"
)

type mockUserRepo struct {
	usersByID    map[string]domain.User
	usersByEmail map[string]string
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByID:    make(map[string]domain.User),
		usersByEmail: make(map[string]string),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	if _, exists := m.usersByEmail[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	m.usersByID[user.ID] = user
	m.usersByEmail[user.Email] = user.ID
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := m.usersByID[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	id, ok := m.usersByEmail[email]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.GetByID(context.Background(), id)
}

type mockProjectRepo struct {
	projects map[string]domain.Project
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{projects: make(map[string]domain.Project)}
}

func (m *mockProjectRepo) Create(_ context.Context, project domain.Project) error {
	m.projects[project.ID] = project
	return nil
}

func (m *mockProjectRepo) List(_ context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(m.projects))
	for _, p := range m.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *mockProjectRepo) GetByID(_ context.Context, id string) (domain.Project, error) {
	p, ok := m.projects[id]
	if !ok {
		return domain.Project{}, pgx.ErrNoRows
	}
	return p, nil
}

func (m *mockProjectRepo) Update(_ context.Context, project domain.Project) error {
	if _, ok := m.projects[project.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.projects[project.ID] = project
	return nil
}

func (m *mockProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.projects[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.projects, id)
	return nil
}

// newTestRouter arma el stack completo sobre repositorios en memoria.
func newTestRouter() (*gin.Engine, *service.JWTService) {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	jwtSvc := service.NewJWTServiceWithStore("secret", time.Hour, 30*time.Minute, service.NewMemoryRefreshTokenStore())
	hasher := service.NewPasswordHasher(4)
	userSvc := service.NewUserService(logger, newMockUserRepo(), hasher, nil)
	projectSvc := service.NewProjectService(logger, newMockProjectRepo())

	authH := NewAuthHandler(logger, userSvc, jwtSvc)
	projectH := NewProjectHandler(logger, projectSvc)
	return NewRouter(logger, authH, projectH, JWTAuthMiddleware(jwtSvc), nil), jwtSvc
}
