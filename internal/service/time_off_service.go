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

var ErrTimeOffNotFound = errors.New("time-off request not found")

// TimeOffService owns leave request CRUD and the reviewed-at transition.
type TimeOffService interface {
	Create(ctx context.Context, req *dto.CreateTimeOffRequest) (*dto.TimeOffResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.TimeOffResponse, error)
	List(ctx context.Context, filter *dto.TimeOffListRequest) ([]dto.TimeOffResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateTimeOffRequest) (*dto.TimeOffResponse, error)
	Delete(ctx context.Context, id uint) error
}

type timeOffService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTimeOffService builds the TimeOffService.
func NewTimeOffService(repo *repository.Repository, logger *zap.Logger) TimeOffService {
	return &timeOffService{repo: repo, logger: logger}
}

func (s *timeOffService) resolveUser(ctx context.Context, id uint) error {
	if _, err := s.repo.User.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return refErr("user", id)
		}
		s.logger.Error("resolve user failed", zap.Uint("user_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *timeOffService) Create(ctx context.Context, req *dto.CreateTimeOffRequest) (*dto.TimeOffResponse, error) {
	if err := s.resolveUser(ctx, req.UserID); err != nil {
		return nil, err
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	request := &model.TimeOffRequest{
		UserID:      req.UserID,
		RequestType: req.RequestType,
		StartDate:   start,
		EndDate:     end,
		Status:      model.TimeOffStatusPending,
		Reason:      req.Reason,
	}
	if req.Status != "" {
		request.Status = req.Status
	}
	if request.Status != model.TimeOffStatusPending {
		now := time.Now()
		request.ReviewedAt = &now
	}

	if err := s.repo.TimeOff.Create(ctx, request); err != nil {
		s.logger.Error("create time-off request failed", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, request.ID)
}

func (s *timeOffService) GetByID(ctx context.Context, id uint) (*dto.TimeOffResponse, error) {
	request, err := s.repo.TimeOff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimeOffNotFound
		}
		s.logger.Error("get time-off request failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toTimeOffResponse(request), nil
}

func (s *timeOffService) List(ctx context.Context, filter *dto.TimeOffListRequest) ([]dto.TimeOffResponse, error) {
	requests, err := s.repo.TimeOff.List(ctx, filter.UserID)
	if err != nil {
		s.logger.Error("list time-off requests failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TimeOffResponse, 0, len(requests))
	for i := range requests {
		result = append(result, *toTimeOffResponse(&requests[i]))
	}
	return result, nil
}

func (s *timeOffService) Update(ctx context.Context, id uint, req *dto.UpdateTimeOffRequest) (*dto.TimeOffResponse, error) {
	request, err := s.repo.TimeOff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimeOffNotFound
		}
		s.logger.Error("get time-off request failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.ReviewedByID != nil {
		if err := s.resolveUser(ctx, *req.ReviewedByID); err != nil {
			return nil, err
		}
		request.ReviewedByID = req.ReviewedByID
	}
	if req.RequestType != nil {
		request.RequestType = *req.RequestType
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		request.StartDate = start
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, err
		}
		request.EndDate = end
	}
	if req.Reason != nil {
		request.Reason = *req.Reason
	}
	if req.Status != nil && *req.Status != request.Status {
		wasPending := request.Status == model.TimeOffStatusPending
		request.Status = *req.Status
		if wasPending && request.Status != model.TimeOffStatusPending && request.ReviewedAt == nil {
			now := time.Now()
			request.ReviewedAt = &now
		}
	}

	if err := s.repo.TimeOff.Update(ctx, request); err != nil {
		s.logger.Error("update time-off request failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *timeOffService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.TimeOff.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTimeOffNotFound
		}
		s.logger.Error("get time-off request failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.TimeOff.Delete(ctx, id); err != nil {
		s.logger.Error("delete time-off request failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

func toTimeOffResponse(r *model.TimeOffRequest) *dto.TimeOffResponse {
	return &dto.TimeOffResponse{
		ID:          r.ID,
		User:        toUserResponse(r.User),
		RequestType: r.RequestType,
		StartDate:   fmtDate(r.StartDate),
		EndDate:     fmtDate(r.EndDate),
		Status:      r.Status,
		Reason:      r.Reason,
		ReviewedBy:  toUserResponse(r.ReviewedBy),
		ReviewedAt:  fmtDateTimePtr(r.ReviewedAt),
		CreatedAt:   fmtDateTime(r.CreatedAt),
		UpdatedAt:   fmtDateTime(r.UpdatedAt),
	}
}
