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

var ErrTimeEntryNotFound = errors.New("time entry not found")

// TimeEntryService owns clock and break event CRUD.
type TimeEntryService interface {
	Create(ctx context.Context, req *dto.CreateTimeEntryRequest) (*dto.TimeEntryResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.TimeEntryResponse, error)
	List(ctx context.Context, filter *dto.TimeEntryListRequest) ([]dto.TimeEntryResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateTimeEntryRequest) (*dto.TimeEntryResponse, error)
	Delete(ctx context.Context, id uint) error
}

type timeEntryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTimeEntryService builds the TimeEntryService.
func NewTimeEntryService(repo *repository.Repository, logger *zap.Logger) TimeEntryService {
	return &timeEntryService{repo: repo, logger: logger}
}

func (s *timeEntryService) resolveLocation(ctx context.Context, id uint) error {
	if _, err := s.repo.Location.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return refErr("location", id)
		}
		s.logger.Error("resolve location failed", zap.Uint("location_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *timeEntryService) Create(ctx context.Context, req *dto.CreateTimeEntryRequest) (*dto.TimeEntryResponse, error) {
	if _, err := s.repo.User.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, refErr("user", req.UserID)
		}
		s.logger.Error("resolve user failed", zap.Uint("user_id", req.UserID), zap.Error(err))
		return nil, err
	}
	if err := s.resolveLocation(ctx, req.LocationID); err != nil {
		return nil, err
	}

	ts := time.Now()
	if req.Timestamp != "" {
		var err error
		if ts, err = parseDateTime(req.Timestamp); err != nil {
			return nil, err
		}
	}

	entry := &model.TimeEntry{
		UserID:     req.UserID,
		EntryType:  req.EntryType,
		Timestamp:  ts,
		Note:       req.Note,
		LocationID: req.LocationID,
	}

	if err := s.repo.TimeEntry.Create(ctx, entry); err != nil {
		s.logger.Error("create time entry failed", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, entry.ID)
}

func (s *timeEntryService) GetByID(ctx context.Context, id uint) (*dto.TimeEntryResponse, error) {
	entry, err := s.repo.TimeEntry.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimeEntryNotFound
		}
		s.logger.Error("get time entry failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toTimeEntryResponse(entry), nil
}

func (s *timeEntryService) List(ctx context.Context, filter *dto.TimeEntryListRequest) ([]dto.TimeEntryResponse, error) {
	entries, err := s.repo.TimeEntry.List(ctx, filter.UserID)
	if err != nil {
		s.logger.Error("list time entries failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TimeEntryResponse, 0, len(entries))
	for i := range entries {
		result = append(result, *toTimeEntryResponse(&entries[i]))
	}
	return result, nil
}

func (s *timeEntryService) Update(ctx context.Context, id uint, req *dto.UpdateTimeEntryRequest) (*dto.TimeEntryResponse, error) {
	entry, err := s.repo.TimeEntry.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimeEntryNotFound
		}
		s.logger.Error("get time entry failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.LocationID != nil {
		if err := s.resolveLocation(ctx, *req.LocationID); err != nil {
			return nil, err
		}
		entry.LocationID = *req.LocationID
	}
	if req.EntryType != nil {
		entry.EntryType = *req.EntryType
	}
	if req.Timestamp != nil {
		ts, err := parseDateTime(*req.Timestamp)
		if err != nil {
			return nil, err
		}
		entry.Timestamp = ts
	}
	if req.Note != nil {
		entry.Note = *req.Note
	}

	if err := s.repo.TimeEntry.Update(ctx, entry); err != nil {
		s.logger.Error("update time entry failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *timeEntryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.TimeEntry.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTimeEntryNotFound
		}
		s.logger.Error("get time entry failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.TimeEntry.Delete(ctx, id); err != nil {
		s.logger.Error("delete time entry failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

func toTimeEntryResponse(e *model.TimeEntry) *dto.TimeEntryResponse {
	return &dto.TimeEntryResponse{
		ID:        e.ID,
		User:      toUserResponse(e.User),
		EntryType: e.EntryType,
		Timestamp: fmtDateTime(e.Timestamp),
		Note:      e.Note,
		Location:  toLocationResponse(e.Location),
	}
}
