package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/internal/model"
	"github.com/Capp3/broadcast-flow-control-system/pkg/session"
)

func setupTestAuthService(t *testing.T) (AuthService, *mockUserRepo, session.Store) {
	t.Helper()

	repo := newMockRepository()
	userRepo := repo.User.(*mockUserRepo)
	sessions := session.NewMemoryStore(time.Hour)
	svc := NewAuthService(repo, sessions, zap.NewNop())
	return svc, userRepo, sessions
}

func seedUser(t *testing.T, userRepo *mockUserRepo, username, password string) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    "Alex",
		LastName:     "Operator",
		PasswordHash: string(hash),
	}
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, userRepo, _ := setupTestAuthService(t)
	seedUser(t, userRepo, "alex", "s3cret")

	user, sess, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alex",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("Login should succeed: %v", err)
	}
	if user.Username != "alex" {
		t.Errorf("expected username alex, got %s", user.Username)
	}
	if sess == nil || sess.Token == "" {
		t.Fatal("expected a session with a token")
	}
	if sess.CSRFToken == "" {
		t.Error("expected the session to carry a CSRF token")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, userRepo, _ := setupTestAuthService(t)
	seedUser(t, userRepo, "alex", "s3cret")

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alex",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestAuthService_Login_UnknownUserSameError(t *testing.T) {
	svc, userRepo, _ := setupTestAuthService(t)
	seedUser(t, userRepo, "alex", "s3cret")

	_, _, errUnknown := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nobody",
		Password: "s3cret",
	})
	_, _, errWrongPw := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alex",
		Password: "wrong",
	})

	// unknown username and wrong password must be indistinguishable
	if !errors.Is(errUnknown, ErrInvalidCredentials) || !errors.Is(errWrongPw, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for both, got %v and %v", errUnknown, errWrongPw)
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	svc, userRepo, sessions := setupTestAuthService(t)
	seedUser(t, userRepo, "alex", "s3cret")

	_, sess, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alex", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Login should succeed: %v", err)
	}

	if err := svc.Logout(context.Background(), sess.Token); err != nil {
		t.Fatalf("Logout should succeed: %v", err)
	}
	if _, err := sessions.Get(context.Background(), sess.Token); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("expected the session to be gone, got: %v", err)
	}

	// repeated and unknown-token logouts still succeed
	if err := svc.Logout(context.Background(), sess.Token); err != nil {
		t.Errorf("repeated Logout should succeed: %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Errorf("empty-token Logout should succeed: %v", err)
	}
}

func TestAuthService_ReissueCSRF(t *testing.T) {
	svc, userRepo, sessions := setupTestAuthService(t)
	seedUser(t, userRepo, "alex", "s3cret")

	_, sess, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alex", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Login should succeed: %v", err)
	}

	rotated, err := svc.ReissueCSRF(context.Background(), sess.Token)
	if err != nil {
		t.Fatalf("ReissueCSRF should succeed: %v", err)
	}
	if rotated == "" || rotated == sess.CSRFToken {
		t.Error("expected a fresh CSRF token")
	}

	stored, err := sessions.Get(context.Background(), sess.Token)
	if err != nil {
		t.Fatalf("session should still exist: %v", err)
	}
	if stored.CSRFToken != rotated {
		t.Error("the rotated token must be persisted in the session")
	}

	if _, err := svc.ReissueCSRF(context.Background(), "unknown"); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("expected session.ErrNotFound, got: %v", err)
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	svc, userRepo, _ := setupTestAuthService(t)
	user := seedUser(t, userRepo, "alex", "s3cret")

	got, err := svc.CurrentUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("CurrentUser should succeed: %v", err)
	}
	if got.Username != "alex" {
		t.Errorf("expected username alex, got %s", got.Username)
	}

	if _, err := svc.CurrentUser(context.Background(), 9999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}
