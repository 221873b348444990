package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/markobarraza/cafe-marketplace/internal/core/domain"
	"github.com/markobarraza/cafe-marketplace/internal/core/ports"
)

type userService struct {
	users ports.UserRepository
	audit ports.AuditPublisher
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, audit ports.AuditPublisher, log zerolog.Logger) ports.UserService {
	return &userService{users: users, audit: audit, log: log}
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *userService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Update changes profile fields on the target account. Only the account owner
// or an admin may do so; anyone else gets ErrForbidden without learning more
// than that the account exists.
func (s *userService) Update(ctx context.Context, actor ports.Actor, id int64, in ports.UpdateUserInput) (*domain.User, error) {
	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !target.CanMutateUser(actor.ID, actor.Role) {
		return nil, domain.ErrForbidden
	}

	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrValidation
	}
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	updated, err := s.users.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}

	s.publish(domain.NewAuditEvent(actor.ID, domain.AuditUserUpdated, "user", id))
	return updated, nil
}

func (s *userService) Delete(ctx context.Context, actor ports.Actor, id int64) error {
	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !target.CanMutateUser(actor.ID, actor.Role) {
		return domain.ErrForbidden
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(domain.NewAuditEvent(actor.ID, domain.AuditUserDeleted, "user", id))
	s.log.Info().Int64("user_id", id).Int64("actor_id", actor.ID).Msg("user deleted")
	return nil
}

func (s *userService) publish(event domain.AuditEvent) {
	if s.audit != nil {
		s.audit.Publish(event)
	}
}
