package usecase

import (
	"context"
	"testing"

	"coffee-house/internal/data/repository/demo"
	"coffee-house/internal/dto/request"
	"coffee-house/pkg/utils"

	"go.uber.org/zap"
)

func newAuthFixture(t *testing.T) AuthService {
	t.Helper()
	repo := demo.NewSeededRepository(zap.NewNop())
	config := &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
	}
	return NewAuthService(repo, config, zap.NewNop())
}

func TestLogin(t *testing.T) {
	service := newAuthFixture(t)

	resp, err := service.Login(context.Background(), &request.LoginRequest{
		Email:    "admin@coffeehouse.local",
		Password: "changeme",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if resp.Token == "" {
		t.Error("token is empty")
	}
	if resp.Role != "admin" {
		t.Errorf("role = %q, want admin", resp.Role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	service := newAuthFixture(t)

	_, err := service.Login(context.Background(), &request.LoginRequest{
		Email:    "admin@coffeehouse.local",
		Password: "wrongpassword",
	})
	if err == nil || err.Error() != "invalid credentials" {
		t.Errorf("err = %v, want invalid credentials", err)
	}
}

func TestLoginUnknownAccount(t *testing.T) {
	service := newAuthFixture(t)

	_, err := service.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@coffeehouse.local",
		Password: "changeme",
	})
	if err == nil || err.Error() != "invalid credentials" {
		t.Errorf("err = %v, want invalid credentials", err)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	repo := demo.NewSeededRepository(zap.NewNop())
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}
	service := NewAuthService(repo, config, zap.NewNop())

	resp, err := service.Login(context.Background(), &request.LoginRequest{
		Email:    "admin@coffeehouse.local",
		Password: "changeme",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := service.Logout(context.Background(), resp.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	session, err := repo.Session.FindValidSession(context.Background(), resp.Token)
	if err != nil {
		t.Fatalf("FindValidSession: %v", err)
	}
	if session != nil {
		t.Error("session still valid after logout")
	}
}
