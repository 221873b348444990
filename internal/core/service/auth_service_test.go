package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/markobarraza/cafe-marketplace/internal/core/domain"
	"github.com/markobarraza/cafe-marketplace/internal/core/ports"
	"github.com/markobarraza/cafe-marketplace/internal/security/password"
	"github.com/markobarraza/cafe-marketplace/internal/security/token"
)

type stubUserRepo struct {
	nextID int64
	users  map[int64]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{nextID: 1, users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	stored := cloneUser(user)
	stored.ID = r.nextID
	r.nextID++
	r.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id int64, in ports.UpdateUserInput) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	for otherID, other := range r.users {
		if otherID != id && other.Email == in.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	u.Name, u.Email, u.Address = in.Name, in.Email, in.Address
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubLimiter struct {
	allowed bool
}

func (l *stubLimiter) Allow(context.Context, string) (bool, error) {
	return l.allowed, nil
}

func newAuthService(repo *stubUserRepo, limiter ports.LoginLimiter) ports.AuthService {
	issuer := token.NewIssuer("fixture-secret", time.Hour)
	return NewAuthService(repo, issuer, limiter, nil, zerolog.Nop())
}

func registerInput() ports.RegisterInput {
	return ports.RegisterInput{
		Name:     "Alice",
		Email:    "A@X.com",
		Password: "pw123",
		Address:  "Calle 1",
		Role:     domain.RoleSeller,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	user, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Email != "a@x.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if user.PasswordHash == "pw123" {
		t.Fatalf("expected password to be hashed")
	}
	if !password.Verify("pw123", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
	if user.Role != domain.RoleSeller {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	in := registerInput()
	in.Password = ""
	if _, err := svc.Register(context.Background(), in); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for empty password, got %v", err)
	}

	in = registerInput()
	in.Role = "superuser"
	if _, err := svc.Register(context.Background(), in); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for unknown role, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), registerInput()); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	signed, err := svc.Login(context.Background(), "a@x.com", "pw123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims, err := token.NewIssuer("fixture-secret", time.Hour).Verify(signed)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.Email != "a@x.com" || claims.Role != domain.RoleSeller {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Fatalf("expected 1h lifetime, got %v", got)
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)
	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), "a@x.com", "nope")
	_, noSuchUser := svc.Login(context.Background(), "ghost@x.com", "nope")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if noSuchUser != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noSuchUser)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubLimiter{allowed: false})
	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), "a@x.com", "pw123"); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}
