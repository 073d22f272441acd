package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/internal/model"
	"github.com/Capp3/broadcast-flow-control-system/internal/repository"
)

var ErrScheduledEventNotFound = errors.New("scheduled event not found")

// ScheduledEventService owns roster event CRUD, attendee filtering and
// ICS import.
type ScheduledEventService interface {
	Create(ctx context.Context, req *dto.CreateScheduledEventRequest) (*dto.ScheduledEventResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ScheduledEventResponse, error)
	List(ctx context.Context, filter *dto.ScheduledEventListRequest) ([]dto.ScheduledEventResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateScheduledEventRequest) (*dto.ScheduledEventResponse, error)
	Delete(ctx context.Context, id uint) error
	// ImportICS creates one event per VEVENT in the calendar payload.
	// Entries that cannot be mapped are reported, not fatal.
	ImportICS(ctx context.Context, data []byte, facilityID uint, userIDs []uint) (*dto.ImportEventsResponse, error)
}

type scheduledEventService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduledEventService builds the ScheduledEventService.
func NewScheduledEventService(repo *repository.Repository, logger *zap.Logger) ScheduledEventService {
	return &scheduledEventService{repo: repo, logger: logger}
}

func (s *scheduledEventService) resolveFacility(ctx context.Context, id uint) error {
	if _, err := s.repo.Facility.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return refErr("facility", id)
		}
		s.logger.Error("resolve facility failed", zap.Uint("facility_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *scheduledEventService) resolveUsers(ctx context.Context, userIDs []uint) error {
	for _, id := range userIDs {
		if _, err := s.repo.User.GetByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return refErr("user", id)
			}
			s.logger.Error("resolve user failed", zap.Uint("user_id", id), zap.Error(err))
			return err
		}
	}
	return nil
}

func (s *scheduledEventService) Create(ctx context.Context, req *dto.CreateScheduledEventRequest) (*dto.ScheduledEventResponse, error) {
	if err := s.resolveFacility(ctx, req.FacilityID); err != nil {
		return nil, err
	}
	if err := s.resolveUsers(ctx, req.UserIDs); err != nil {
		return nil, err
	}

	start, err := parseDateTime(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseDateTime(req.EndTime)
	if err != nil {
		return nil, err
	}

	event := &model.ScheduledEvent{
		Title:             req.Title,
		EventType:         req.EventType,
		StartTime:         start,
		EndTime:           end,
		FacilityID:        req.FacilityID,
		RecurrencePattern: req.RecurrencePattern,
		Notes:             req.Notes,
	}
	if req.IsRecurring != nil {
		event.IsRecurring = *req.IsRecurring
	}

	if err := s.repo.ScheduledEvent.Create(ctx, event, req.UserIDs); err != nil {
		s.logger.Error("create scheduled event failed", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, event.ID)
}

func (s *scheduledEventService) GetByID(ctx context.Context, id uint) (*dto.ScheduledEventResponse, error) {
	event, err := s.repo.ScheduledEvent.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduledEventNotFound
		}
		s.logger.Error("get scheduled event failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toScheduledEventResponse(event), nil
}

func (s *scheduledEventService) List(ctx context.Context, req *dto.ScheduledEventListRequest) ([]dto.ScheduledEventResponse, error) {
	filter := repository.EventFilter{UserID: req.UserID}

	// The window narrows results only when both bounds arrive together.
	// Both bounds compare at midnight, so events running past 00:00 of
	// end_date fall outside it.
	if req.StartDate != "" && req.EndDate != "" {
		start, err := parseDate(req.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := parseDate(req.EndDate)
		if err != nil {
			return nil, err
		}
		filter.WindowStart = &start
		filter.WindowEnd = &end
	}

	events, err := s.repo.ScheduledEvent.List(ctx, filter)
	if err != nil {
		s.logger.Error("list scheduled events failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ScheduledEventResponse, 0, len(events))
	for i := range events {
		result = append(result, *toScheduledEventResponse(&events[i]))
	}
	return result, nil
}

func (s *scheduledEventService) Update(ctx context.Context, id uint, req *dto.UpdateScheduledEventRequest) (*dto.ScheduledEventResponse, error) {
	event, err := s.repo.ScheduledEvent.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduledEventNotFound
		}
		s.logger.Error("get scheduled event failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.FacilityID != nil {
		if err := s.resolveFacility(ctx, *req.FacilityID); err != nil {
			return nil, err
		}
		event.FacilityID = *req.FacilityID
	}
	if req.UserIDs != nil {
		if len(req.UserIDs) == 0 {
			return nil, fmt.Errorf("%w: user_ids must not be empty", ErrValidation)
		}
		if err := s.resolveUsers(ctx, req.UserIDs); err != nil {
			return nil, err
		}
	}
	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.EventType != nil {
		event.EventType = *req.EventType
	}
	if req.StartTime != nil {
		start, err := parseDateTime(*req.StartTime)
		if err != nil {
			return nil, err
		}
		event.StartTime = start
	}
	if req.EndTime != nil {
		end, err := parseDateTime(*req.EndTime)
		if err != nil {
			return nil, err
		}
		event.EndTime = end
	}
	if req.IsRecurring != nil {
		event.IsRecurring = *req.IsRecurring
	}
	if req.RecurrencePattern != nil {
		event.RecurrencePattern = *req.RecurrencePattern
	}
	if req.Notes != nil {
		event.Notes = *req.Notes
	}

	event.Users = nil
	if err := s.repo.ScheduledEvent.Update(ctx, event, req.UserIDs); err != nil {
		s.logger.Error("update scheduled event failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *scheduledEventService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.ScheduledEvent.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduledEventNotFound
		}
		s.logger.Error("get scheduled event failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.ScheduledEvent.Delete(ctx, id); err != nil {
		s.logger.Error("delete scheduled event failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *scheduledEventService) ImportICS(ctx context.Context, data []byte, facilityID uint, userIDs []uint) (*dto.ImportEventsResponse, error) {
	if err := s.resolveFacility(ctx, facilityID); err != nil {
		return nil, err
	}
	if len(userIDs) == 0 {
		return nil, fmt.Errorf("%w: user_ids must not be empty", ErrValidation)
	}
	if err := s.resolveUsers(ctx, userIDs); err != nil {
		return nil, err
	}

	cal, err := ics.ParseCalendar(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid calendar: %v", ErrValidation, err)
	}

	resp := &dto.ImportEventsResponse{}
	for _, ve := range cal.Events() {
		resp.Total++
		uid := ve.Id()

		event, reason := s.eventFromVEvent(ve, facilityID)
		if reason != "" {
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportEventError{UID: uid, Reason: reason})
			continue
		}

		if err := s.repo.ScheduledEvent.Create(ctx, event, userIDs); err != nil {
			s.logger.Error("import event failed", zap.String("uid", uid), zap.Error(err))
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportEventError{UID: uid, Reason: "storage error"})
			continue
		}
		resp.Success++
	}

	return resp, nil
}

// eventFromVEvent maps one VEVENT onto a roster event. The CATEGORIES
// property selects the event type when it names a known one; otherwise
// imports land as shifts.
func (s *scheduledEventService) eventFromVEvent(ve *ics.VEvent, facilityID uint) (*model.ScheduledEvent, string) {
	start, err := ve.GetStartAt()
	if err != nil {
		return nil, "missing or invalid DTSTART"
	}
	end, err := ve.GetEndAt()
	if err != nil {
		return nil, "missing or invalid DTEND"
	}

	title := ""
	if p := ve.GetProperty(ics.ComponentPropertySummary); p != nil {
		title = p.Value
	}
	if title == "" {
		return nil, "missing SUMMARY"
	}

	notes := ""
	if p := ve.GetProperty(ics.ComponentPropertyDescription); p != nil {
		notes = p.Value
	}

	eventType := model.EventTypeShift
	if p := ve.GetProperty(ics.ComponentPropertyCategories); p != nil {
		switch strings.ToLower(p.Value) {
		case model.EventTypeShift, model.EventTypeOvertime, model.EventTypeMeeting, model.EventTypeTraining:
			eventType = strings.ToLower(p.Value)
		}
	}

	return &model.ScheduledEvent{
		Title:      title,
		EventType:  eventType,
		StartTime:  start,
		EndTime:    end,
		FacilityID: facilityID,
		Notes:      notes,
	}, ""
}

func toScheduledEventResponse(e *model.ScheduledEvent) *dto.ScheduledEventResponse {
	users := make([]dto.UserResponse, 0, len(e.Users))
	for i := range e.Users {
		users = append(users, *toUserResponse(&e.Users[i]))
	}
	return &dto.ScheduledEventResponse{
		ID:                e.ID,
		Title:             e.Title,
		EventType:         e.EventType,
		StartTime:         fmtDateTime(e.StartTime),
		EndTime:           fmtDateTime(e.EndTime),
		Users:             users,
		Facility:          toFacilityResponse(e.Facility),
		IsRecurring:       e.IsRecurring,
		RecurrencePattern: e.RecurrencePattern,
		Notes:             e.Notes,
		CreatedAt:         fmtDateTime(e.CreatedAt),
		UpdatedAt:         fmtDateTime(e.UpdatedAt),
	}
}
