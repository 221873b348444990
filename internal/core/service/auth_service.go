package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/markobarraza/cafe-marketplace/internal/core/domain"
	"github.com/markobarraza/cafe-marketplace/internal/core/ports"
	"github.com/markobarraza/cafe-marketplace/internal/security/password"
	"github.com/markobarraza/cafe-marketplace/internal/security/token"
)

type authService struct {
	users   ports.UserRepository
	issuer  *token.Issuer
	limiter ports.LoginLimiter
	audit   ports.AuditPublisher
	log     zerolog.Logger
}

// NewAuthService returns an AuthService implementation. limiter and audit may
// be nil, in which case throttling and audit publishing are skipped.
func NewAuthService(
	users ports.UserRepository,
	issuer *token.Issuer,
	limiter ports.LoginLimiter,
	audit ports.AuditPublisher,
	log zerolog.Logger,
) ports.AuthService {
	return &authService{
		users:   users,
		issuer:  issuer,
		limiter: limiter,
		audit:   audit,
		log:     log,
	}
}

func (s *authService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}
	if !domain.ValidRole(in.Role) {
		return nil, domain.ErrValidation
	}

	digest, err := password.Hash(in.Password)
	if err != nil {
		if errors.Is(err, password.ErrEmptyPassword) {
			return nil, domain.ErrValidation
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: digest,
		Address:      in.Address,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.publish(domain.NewAuditEvent(created.ID, domain.AuditUserRegistered, "user", created.ID))
	s.log.Info().Int64("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login resolves the account by email and checks the password. Both failure
// paths run a bcrypt comparison and collapse into ErrInvalidCredentials, so
// neither the response nor its timing reveals whether the email exists.
func (s *authService) Login(ctx context.Context, email, pass string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || pass == "" {
		return "", domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("login limiter unavailable, allowing attempt")
		} else if !allowed {
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			password.Verify(pass, password.DummyDigest)
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}

	if !password.Verify(pass, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	signed, err := s.issuer.Issue(user)
	if err != nil {
		return "", fmt.Errorf("login: sign token: %w", err)
	}

	s.publish(domain.NewAuditEvent(user.ID, domain.AuditLoginSucceeded, "user", user.ID))
	s.log.Info().Int64("user_id", user.ID).Msg("login succeeded")
	return signed, nil
}

func (s *authService) publish(event domain.AuditEvent) {
	if s.audit != nil {
		s.audit.Publish(event)
	}
}
