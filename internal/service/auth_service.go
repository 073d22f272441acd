package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/internal/repository"
	"github.com/Capp3/broadcast-flow-control-system/pkg/session"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService owns login, logout and session identity.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, *session.Session, error)
	// Logout is idempotent: an unknown or absent token still succeeds.
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error)
	// ReissueCSRF rotates the anti-forgery token on a live session and
	// returns the new token. Unknown tokens get session.ErrNotFound.
	ReissueCSRF(ctx context.Context, token string) (string, error)
}

type authService struct {
	repo     *repository.Repository
	sessions session.Store
	logger   *zap.Logger
}

// NewAuthService builds the AuthService.
func NewAuthService(repo *repository.Repository, sessions session.Store, logger *zap.Logger) AuthService {
	return &authService{repo: repo, sessions: sessions, logger: logger}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, *session.Session, error) {
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		s.logger.Error("look up user failed", zap.Error(err))
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		s.logger.Error("create session failed", zap.Error(err))
		return nil, nil, err
	}

	return toUserResponse(user), sess, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		s.logger.Error("delete session failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) ReissueCSRF(ctx context.Context, token string) (string, error) {
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			s.logger.Error("get session failed", zap.Error(err))
		}
		return "", err
	}

	sess.CSRFToken = session.NewToken()
	if err := s.sessions.Save(ctx, sess); err != nil {
		s.logger.Error("save session failed", zap.Error(err))
		return "", err
	}
	return sess.CSRFToken, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("look up user failed", zap.Uint("id", userID), zap.Error(err))
		return nil, err
	}
	return toUserResponse(user), nil
}
