package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/internal/model"
	"github.com/Capp3/broadcast-flow-control-system/internal/repository"
)

var ErrFacilityNotFound = errors.New("facility not found")

// FacilityService owns facility CRUD.
type FacilityService interface {
	Create(ctx context.Context, req *dto.CreateFacilityRequest) (*dto.FacilityResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.FacilityResponse, error)
	List(ctx context.Context) ([]dto.FacilityResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateFacilityRequest) (*dto.FacilityResponse, error)
	Delete(ctx context.Context, id uint) error
}

type facilityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFacilityService builds the FacilityService.
func NewFacilityService(repo *repository.Repository, logger *zap.Logger) FacilityService {
	return &facilityService{repo: repo, logger: logger}
}

func (s *facilityService) resolveLocation(ctx context.Context, id uint) error {
	if _, err := s.repo.Location.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return refErr("location", id)
		}
		s.logger.Error("resolve location failed", zap.Uint("location_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *facilityService) Create(ctx context.Context, req *dto.CreateFacilityRequest) (*dto.FacilityResponse, error) {
	if err := s.resolveLocation(ctx, req.LocationID); err != nil {
		return nil, err
	}

	facility := &model.Facility{
		Name:         req.Name,
		LocationID:   req.LocationID,
		FacilityType: req.FacilityType,
		IsActive:     true,
	}
	if req.Capacity != nil {
		facility.Capacity = *req.Capacity
	}
	if req.IsActive != nil {
		facility.IsActive = *req.IsActive
	}

	if err := s.repo.Facility.Create(ctx, facility); err != nil {
		s.logger.Error("create facility failed", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, facility.ID)
}

func (s *facilityService) GetByID(ctx context.Context, id uint) (*dto.FacilityResponse, error) {
	facility, err := s.repo.Facility.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("get facility failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toFacilityResponse(facility), nil
}

func (s *facilityService) List(ctx context.Context) ([]dto.FacilityResponse, error) {
	facilities, err := s.repo.Facility.List(ctx)
	if err != nil {
		s.logger.Error("list facilities failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.FacilityResponse, 0, len(facilities))
	for i := range facilities {
		result = append(result, *toFacilityResponse(&facilities[i]))
	}
	return result, nil
}

func (s *facilityService) Update(ctx context.Context, id uint, req *dto.UpdateFacilityRequest) (*dto.FacilityResponse, error) {
	facility, err := s.repo.Facility.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("get facility failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.LocationID != nil {
		if err := s.resolveLocation(ctx, *req.LocationID); err != nil {
			return nil, err
		}
		facility.LocationID = *req.LocationID
	}
	if req.Name != nil {
		facility.Name = *req.Name
	}
	if req.FacilityType != nil {
		facility.FacilityType = *req.FacilityType
	}
	if req.Capacity != nil {
		facility.Capacity = *req.Capacity
	}
	if req.IsActive != nil {
		facility.IsActive = *req.IsActive
	}

	if err := s.repo.Facility.Update(ctx, facility); err != nil {
		s.logger.Error("update facility failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *facilityService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Facility.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFacilityNotFound
		}
		s.logger.Error("get facility failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Facility.Delete(ctx, id); err != nil {
		s.logger.Error("delete facility failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}
