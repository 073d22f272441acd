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

var ErrIncidentTypeNotFound = errors.New("incident type not found")

// IncidentTypeService owns incident classification CRUD.
type IncidentTypeService interface {
	Create(ctx context.Context, req *dto.CreateIncidentTypeRequest) (*dto.IncidentTypeResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.IncidentTypeResponse, error)
	List(ctx context.Context) ([]dto.IncidentTypeResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateIncidentTypeRequest) (*dto.IncidentTypeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type incidentTypeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewIncidentTypeService builds the IncidentTypeService.
func NewIncidentTypeService(repo *repository.Repository, logger *zap.Logger) IncidentTypeService {
	return &incidentTypeService{repo: repo, logger: logger}
}

func (s *incidentTypeService) Create(ctx context.Context, req *dto.CreateIncidentTypeRequest) (*dto.IncidentTypeResponse, error) {
	it := &model.IncidentType{
		Name:          req.Name,
		Description:   req.Description,
		PriorityLevel: 2,
		IsActive:      true,
	}
	if req.PriorityLevel != nil {
		it.PriorityLevel = *req.PriorityLevel
	}
	if req.IsActive != nil {
		it.IsActive = *req.IsActive
	}

	if err := s.repo.IncidentType.Create(ctx, it); err != nil {
		s.logger.Error("create incident type failed", zap.Error(err))
		return nil, err
	}

	return toIncidentTypeResponse(it), nil
}

func (s *incidentTypeService) GetByID(ctx context.Context, id uint) (*dto.IncidentTypeResponse, error) {
	it, err := s.repo.IncidentType.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncidentTypeNotFound
		}
		s.logger.Error("get incident type failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toIncidentTypeResponse(it), nil
}

func (s *incidentTypeService) List(ctx context.Context) ([]dto.IncidentTypeResponse, error) {
	types, err := s.repo.IncidentType.List(ctx)
	if err != nil {
		s.logger.Error("list incident types failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.IncidentTypeResponse, 0, len(types))
	for i := range types {
		result = append(result, *toIncidentTypeResponse(&types[i]))
	}
	return result, nil
}

func (s *incidentTypeService) Update(ctx context.Context, id uint, req *dto.UpdateIncidentTypeRequest) (*dto.IncidentTypeResponse, error) {
	it, err := s.repo.IncidentType.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncidentTypeNotFound
		}
		s.logger.Error("get incident type failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		it.Name = *req.Name
	}
	if req.Description != nil {
		it.Description = *req.Description
	}
	if req.PriorityLevel != nil {
		it.PriorityLevel = *req.PriorityLevel
	}
	if req.IsActive != nil {
		it.IsActive = *req.IsActive
	}

	if err := s.repo.IncidentType.Update(ctx, it); err != nil {
		s.logger.Error("update incident type failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toIncidentTypeResponse(it), nil
}

func (s *incidentTypeService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.IncidentType.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIncidentTypeNotFound
		}
		s.logger.Error("get incident type failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.IncidentType.Delete(ctx, id); err != nil {
		s.logger.Error("delete incident type failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}
