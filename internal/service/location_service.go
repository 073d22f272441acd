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

var ErrLocationNotFound = errors.New("location not found")

// LocationService owns location CRUD.
type LocationService interface {
	Create(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.LocationResponse, error)
	List(ctx context.Context) ([]dto.LocationResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error)
	Delete(ctx context.Context, id uint) error
}

type locationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLocationService builds the LocationService.
func NewLocationService(repo *repository.Repository, logger *zap.Logger) LocationService {
	return &locationService{repo: repo, logger: logger}
}

func (s *locationService) Create(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	loc := &model.Location{
		Name:     req.Name,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		ZipCode:  req.ZipCode,
		Country:  req.Country,
		IsActive: true,
	}
	if loc.Country == "" {
		loc.Country = "USA"
	}
	if req.IsActive != nil {
		loc.IsActive = *req.IsActive
	}

	if err := s.repo.Location.Create(ctx, loc); err != nil {
		s.logger.Error("create location failed", zap.Error(err))
		return nil, err
	}

	return toLocationResponse(loc), nil
}

func (s *locationService) GetByID(ctx context.Context, id uint) (*dto.LocationResponse, error) {
	loc, err := s.repo.Location.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		s.logger.Error("get location failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toLocationResponse(loc), nil
}

func (s *locationService) List(ctx context.Context) ([]dto.LocationResponse, error) {
	locations, err := s.repo.Location.List(ctx)
	if err != nil {
		s.logger.Error("list locations failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.LocationResponse, 0, len(locations))
	for i := range locations {
		result = append(result, *toLocationResponse(&locations[i]))
	}
	return result, nil
}

func (s *locationService) Update(ctx context.Context, id uint, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	loc, err := s.repo.Location.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		s.logger.Error("get location failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		loc.Name = *req.Name
	}
	if req.Address != nil {
		loc.Address = *req.Address
	}
	if req.City != nil {
		loc.City = *req.City
	}
	if req.State != nil {
		loc.State = *req.State
	}
	if req.ZipCode != nil {
		loc.ZipCode = *req.ZipCode
	}
	if req.Country != nil {
		loc.Country = *req.Country
	}
	if req.IsActive != nil {
		loc.IsActive = *req.IsActive
	}

	if err := s.repo.Location.Update(ctx, loc); err != nil {
		s.logger.Error("update location failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toLocationResponse(loc), nil
}

func (s *locationService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Location.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLocationNotFound
		}
		s.logger.Error("get location failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Location.Delete(ctx, id); err != nil {
		s.logger.Error("delete location failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}
