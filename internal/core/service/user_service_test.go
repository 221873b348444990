package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/markobarraza/cafe-marketplace/internal/core/domain"
	"github.com/markobarraza/cafe-marketplace/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, email, role string) *domain.User {
	t.Helper()
	created, err := repo.Create(context.Background(), &domain.User{
		Name:         "Fixture",
		Email:        email,
		PasswordHash: "$2a$10$fixture",
		Role:         role,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return created
}

func TestUserService_Update_SelfAllowed(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())
	user := seedUser(t, repo, "a@x.com", domain.RoleBuyer)

	updated, err := svc.Update(context.Background(), ports.Actor{ID: user.ID, Role: user.Role}, user.ID, ports.UpdateUserInput{
		Name:    "Nuevo Nombre",
		Email:   "a@x.com",
		Address: "Calle 2",
	})
	if err != nil {
		t.Fatalf("self update failed: %v", err)
	}
	if updated.Name != "Nuevo Nombre" || updated.Address != "Calle 2" {
		t.Fatalf("unexpected result: %+v", updated)
	}
}

func TestUserService_Update_OtherUserForbidden(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())
	target := seedUser(t, repo, "a@x.com", domain.RoleBuyer)
	intruder := seedUser(t, repo, "b@x.com", domain.RoleBuyer)

	_, err := svc.Update(context.Background(), ports.Actor{ID: intruder.ID, Role: intruder.Role}, target.ID, ports.UpdateUserInput{
		Name:  "Hacked",
		Email: "a@x.com",
	})
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_Delete_AdminAllowed(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())
	target := seedUser(t, repo, "a@x.com", domain.RoleBuyer)
	admin := seedUser(t, repo, "admin@x.com", domain.RoleAdmin)

	if err := svc.Delete(context.Background(), ports.Actor{ID: admin.ID, Role: admin.Role}, target.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), target.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), nil, zerolog.Nop())
	_, err := svc.Update(context.Background(), ports.Actor{ID: 1, Role: domain.RoleAdmin}, 99, ports.UpdateUserInput{Name: "x", Email: "x@x.com"})
	if err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
