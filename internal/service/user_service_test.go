package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"careerscope/internal/domain"
	"careerscope/internal/repository"
)

func newUserService() *UserService {
	return NewUserService(zap.NewNop(), repository.NewMemoryUserRepository())
}

func TestUserServiceRegister_Success(t *testing.T) {
	svc := newUserService()

	user, err := svc.Register(context.Background(), RegisterInput{
		FullName: "  Ada Lovelace  ",
		Email:    "Ada@Example.com",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.FullName != "Ada Lovelace" {
		t.Fatalf("expected trimmed name, got %q", user.FullName)
	}
	if user.Role != domain.RoleMember {
		t.Fatalf("expected member role, got %q", user.Role)
	}
	if user.PasswordHash == "" || user.PasswordHash == "s3cret-pass" {
		t.Fatalf("expected hashed password")
	}
}

func TestUserServiceRegister_EmailTaken(t *testing.T) {
	svc := newUserService()
	input := RegisterInput{Email: "ada@example.com", Password: "s3cret-pass"}

	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserServiceRegister_InvalidInput(t *testing.T) {
	svc := newUserService()

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "not-an-email", Password: "s3cret-pass"}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if _, err := svc.Register(context.Background(), RegisterInput{Email: "ada@example.com", Password: "short"}); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestUserServiceAuthenticate(t *testing.T) {
	svc := newUserService()

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "ada@example.com", Password: "s3cret-pass"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), "ADA@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.Authenticate(context.Background(), "ada@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "ghost@example.com", "s3cret-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestUserServiceCreateGuest(t *testing.T) {
	svc := newUserService()

	guest, err := svc.CreateGuest(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if guest.Role != domain.RoleGuest {
		t.Fatalf("expected guest role, got %q", guest.Role)
	}
	if guest.ID == "" || guest.FullName != "Guest" {
		t.Fatalf("unexpected guest user: %+v", guest)
	}

	// Un guest no tiene credenciales: nunca autentica.
	if _, err := svc.Authenticate(context.Background(), guest.Email, "anything"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserServiceGetByID(t *testing.T) {
	svc := newUserService()

	created, err := svc.Register(context.Background(), RegisterInput{Email: "ada@example.com", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	user, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
