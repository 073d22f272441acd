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

var ErrShiftNotFound = errors.New("shift not found")

// ShiftService owns shift CRUD.
type ShiftService interface {
	Create(ctx context.Context, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ShiftResponse, error)
	List(ctx context.Context) ([]dto.ShiftResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateShiftRequest) (*dto.ShiftResponse, error)
	Delete(ctx context.Context, id uint) error
}

type shiftService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewShiftService builds the ShiftService.
func NewShiftService(repo *repository.Repository, logger *zap.Logger) ShiftService {
	return &shiftService{repo: repo, logger: logger}
}

func (s *shiftService) Create(ctx context.Context, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	shift := &model.Shift{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsActive:  true,
	}
	if req.IsOvernight != nil {
		shift.IsOvernight = *req.IsOvernight
	}
	if req.IsActive != nil {
		shift.IsActive = *req.IsActive
	}

	if err := s.repo.Shift.Create(ctx, shift); err != nil {
		s.logger.Error("create shift failed", zap.Error(err))
		return nil, err
	}

	return toShiftResponse(shift), nil
}

func (s *shiftService) GetByID(ctx context.Context, id uint) (*dto.ShiftResponse, error) {
	shift, err := s.repo.Shift.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("get shift failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toShiftResponse(shift), nil
}

func (s *shiftService) List(ctx context.Context) ([]dto.ShiftResponse, error) {
	shifts, err := s.repo.Shift.List(ctx)
	if err != nil {
		s.logger.Error("list shifts failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		result = append(result, *toShiftResponse(&shifts[i]))
	}
	return result, nil
}

func (s *shiftService) Update(ctx context.Context, id uint, req *dto.UpdateShiftRequest) (*dto.ShiftResponse, error) {
	shift, err := s.repo.Shift.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("get shift failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		shift.Name = *req.Name
	}
	if req.StartTime != nil {
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		shift.EndTime = *req.EndTime
	}
	if req.IsOvernight != nil {
		shift.IsOvernight = *req.IsOvernight
	}
	if req.IsActive != nil {
		shift.IsActive = *req.IsActive
	}

	if err := s.repo.Shift.Update(ctx, shift); err != nil {
		s.logger.Error("update shift failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toShiftResponse(shift), nil
}

func (s *shiftService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Shift.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShiftNotFound
		}
		s.logger.Error("get shift failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Shift.Delete(ctx, id); err != nil {
		s.logger.Error("delete shift failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

func toShiftResponse(sh *model.Shift) *dto.ShiftResponse {
	return &dto.ShiftResponse{
		ID:          sh.ID,
		Name:        sh.Name,
		StartTime:   sh.StartTime,
		EndTime:     sh.EndTime,
		IsOvernight: sh.IsOvernight,
		IsActive:    sh.IsActive,
	}
}
