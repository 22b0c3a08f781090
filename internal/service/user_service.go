package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

// UserService coordina registro y autenticación de usuarios.
type UserService struct {
	logger  *zap.Logger
	users   repository.UserRepository
	hasher  *PasswordHasher
	limiter LoginRateLimiter
}

func NewUserService(logger *zap.Logger, users repository.UserRepository, hasher *PasswordHasher, limiter LoginRateLimiter) *UserService {
	if hasher == nil {
		hasher = NewPasswordHasher(0)
	}
	return &UserService{
		logger:  logger,
		users:   users,
		hasher:  hasher,
		limiter: limiter,
	}
}

var (
	ErrInvalidEmail = errors.New("invalid email")
	ErrEmailTaken   = errors.New("email already registered")
	// ErrInvalidCredentials cubre tanto email desconocido como contraseña
	// incorrecta; ambos casos deben verse idénticos desde fuera.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRateLimited        = errors.New("rate limited")
)

// Register crea un usuario nuevo con la contraseña hasheada. Email duplicado
// produce ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, emailAddr, password string) (domain.User, error) {
	if s.users == nil {
		return domain.User{}, errors.New("user service not configured")
	}

	emailAddr = normalizeEmail(emailAddr)
	password = strings.TrimSpace(password)
	if emailAddr == "" {
		return domain.User{}, ErrInvalidEmail
	}
	if password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	if _, err := s.users.GetByEmail(ctx, emailAddr); err == nil {
		return domain.User{}, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, err
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        emailAddr,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		// La verificación previa no cubre inserciones concurrentes; el
		// índice único sí.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}

	return user, nil
}

// Authenticate valida credenciales. Cualquier fallo (email desconocido,
// contraseña incorrecta) produce el mismo ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, emailAddr, password string) (domain.User, error) {
	if s.users == nil {
		return domain.User{}, errors.New("user service not configured")
	}

	emailAddr = normalizeEmail(emailAddr)
	password = strings.TrimSpace(password)
	if emailAddr == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	if s.limiter != nil && !s.limiter.Allow(emailAddr) {
		return domain.User{}, ErrRateLimited
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if user.PasswordHash == "" {
		return domain.User{}, ErrInvalidCredentials
	}
	if !s.hasher.Check(password, user.PasswordHash) {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func normalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ""
	}
	return email
}
