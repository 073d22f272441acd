package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/internal/model"
	"github.com/Capp3/broadcast-flow-control-system/internal/repository"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileService owns the employment profile CRUD.
type ProfileService interface {
	Create(ctx context.Context, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ProfileResponse, error)
	List(ctx context.Context) ([]dto.ProfileResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	Delete(ctx context.Context, id uint) error
}

type profileService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProfileService builds the ProfileService.
func NewProfileService(repo *repository.Repository, logger *zap.Logger) ProfileService {
	return &profileService{repo: repo, logger: logger}
}

func (s *profileService) Create(ctx context.Context, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	if _, err := s.repo.User.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, refErr("user", req.UserID)
		}
		s.logger.Error("resolve user failed", zap.Uint("user_id", req.UserID), zap.Error(err))
		return nil, err
	}

	hireDate := time.Now()
	if req.HireDate != "" {
		var err error
		if hireDate, err = parseDate(req.HireDate); err != nil {
			return nil, err
		}
	}

	profile := &model.Profile{
		UserID:      req.UserID,
		JobTitle:    req.JobTitle,
		Department:  req.Department,
		PhoneNumber: req.PhoneNumber,
		HireDate:    hireDate,
		IsActive:    true,
	}
	if req.IsActive != nil {
		profile.IsActive = *req.IsActive
	}

	if err := s.repo.Profile.Create(ctx, profile); err != nil {
		s.logger.Error("create profile failed", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, profile.ID)
}

func (s *profileService) GetByID(ctx context.Context, id uint) (*dto.ProfileResponse, error) {
	profile, err := s.repo.Profile.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		s.logger.Error("get profile failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toProfileResponse(profile), nil
}

func (s *profileService) List(ctx context.Context) ([]dto.ProfileResponse, error) {
	profiles, err := s.repo.Profile.List(ctx)
	if err != nil {
		s.logger.Error("list profiles failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		result = append(result, *toProfileResponse(&profiles[i]))
	}
	return result, nil
}

func (s *profileService) Update(ctx context.Context, id uint, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.repo.Profile.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		s.logger.Error("get profile failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.JobTitle != nil {
		profile.JobTitle = *req.JobTitle
	}
	if req.Department != nil {
		profile.Department = *req.Department
	}
	if req.PhoneNumber != nil {
		profile.PhoneNumber = *req.PhoneNumber
	}
	if req.HireDate != nil {
		hireDate, err := parseDate(*req.HireDate)
		if err != nil {
			return nil, err
		}
		profile.HireDate = hireDate
	}
	if req.IsActive != nil {
		profile.IsActive = *req.IsActive
	}

	if err := s.repo.Profile.Update(ctx, profile); err != nil {
		s.logger.Error("update profile failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *profileService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Profile.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		s.logger.Error("get profile failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Profile.Delete(ctx, id); err != nil {
		s.logger.Error("delete profile failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

func toProfileResponse(p *model.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:          p.ID,
		User:        toUserResponse(p.User),
		JobTitle:    p.JobTitle,
		Department:  p.Department,
		PhoneNumber: p.PhoneNumber,
		HireDate:    fmtDate(p.HireDate),
		IsActive:    p.IsActive,
	}
}
