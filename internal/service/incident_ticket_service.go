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

var ErrIncidentTicketNotFound = errors.New("incident ticket not found")

// IncidentTicketService owns incident ticket CRUD and the resolved-at
// transition.
type IncidentTicketService interface {
	Create(ctx context.Context, req *dto.CreateIncidentTicketRequest) (*dto.IncidentTicketResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.IncidentTicketResponse, error)
	List(ctx context.Context) ([]dto.IncidentTicketResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateIncidentTicketRequest) (*dto.IncidentTicketResponse, error)
	Delete(ctx context.Context, id uint) error
}

type incidentTicketService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewIncidentTicketService builds the IncidentTicketService.
func NewIncidentTicketService(repo *repository.Repository, logger *zap.Logger) IncidentTicketService {
	return &incidentTicketService{repo: repo, logger: logger}
}

func (s *incidentTicketService) resolveUser(ctx context.Context, id uint) error {
	if _, err := s.repo.User.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return refErr("user", id)
		}
		s.logger.Error("resolve user failed", zap.Uint("user_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *incidentTicketService) resolveRefs(ctx context.Context, incidentTypeID, facilityID *uint) error {
	if incidentTypeID != nil {
		if _, err := s.repo.IncidentType.GetByID(ctx, *incidentTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return refErr("incident type", *incidentTypeID)
			}
			s.logger.Error("resolve incident type failed", zap.Uint("incident_type_id", *incidentTypeID), zap.Error(err))
			return err
		}
	}
	if facilityID != nil {
		if _, err := s.repo.Facility.GetByID(ctx, *facilityID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return refErr("facility", *facilityID)
			}
			s.logger.Error("resolve facility failed", zap.Uint("facility_id", *facilityID), zap.Error(err))
			return err
		}
	}
	return nil
}

func (s *incidentTicketService) Create(ctx context.Context, req *dto.CreateIncidentTicketRequest) (*dto.IncidentTicketResponse, error) {
	if err := s.resolveUser(ctx, req.CreatedByID); err != nil {
		return nil, err
	}
	if req.AssignedToID != nil {
		if err := s.resolveUser(ctx, *req.AssignedToID); err != nil {
			return nil, err
		}
	}
	if err := s.resolveRefs(ctx, &req.IncidentTypeID, &req.FacilityID); err != nil {
		return nil, err
	}

	ticket := &model.IncidentTicket{
		Title:          req.Title,
		Description:    req.Description,
		CreatedByID:    req.CreatedByID,
		AssignedToID:   req.AssignedToID,
		IncidentTypeID: req.IncidentTypeID,
		FacilityID:     req.FacilityID,
		Status:         model.IncidentStatusOpen,
	}
	if req.Status != "" {
		ticket.Status = req.Status
	}
	if !model.IncidentStatusOpenStates(ticket.Status) {
		now := time.Now()
		ticket.ResolvedAt = &now
	}

	if err := s.repo.IncidentTicket.Create(ctx, ticket); err != nil {
		s.logger.Error("create incident ticket failed", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, ticket.ID)
}

func (s *incidentTicketService) GetByID(ctx context.Context, id uint) (*dto.IncidentTicketResponse, error) {
	ticket, err := s.repo.IncidentTicket.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncidentTicketNotFound
		}
		s.logger.Error("get incident ticket failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toIncidentTicketResponse(ticket), nil
}

func (s *incidentTicketService) List(ctx context.Context) ([]dto.IncidentTicketResponse, error) {
	tickets, err := s.repo.IncidentTicket.List(ctx)
	if err != nil {
		s.logger.Error("list incident tickets failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.IncidentTicketResponse, 0, len(tickets))
	for i := range tickets {
		result = append(result, *toIncidentTicketResponse(&tickets[i]))
	}
	return result, nil
}

func (s *incidentTicketService) Update(ctx context.Context, id uint, req *dto.UpdateIncidentTicketRequest) (*dto.IncidentTicketResponse, error) {
	ticket, err := s.repo.IncidentTicket.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncidentTicketNotFound
		}
		s.logger.Error("get incident ticket failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.AssignedToID != nil {
		if err := s.resolveUser(ctx, *req.AssignedToID); err != nil {
			return nil, err
		}
		ticket.AssignedToID = req.AssignedToID
	} else if req.ClearAssignee {
		ticket.AssignedToID = nil
	}
	if err := s.resolveRefs(ctx, req.IncidentTypeID, req.FacilityID); err != nil {
		return nil, err
	}
	if req.IncidentTypeID != nil {
		ticket.IncidentTypeID = *req.IncidentTypeID
	}
	if req.FacilityID != nil {
		ticket.FacilityID = *req.FacilityID
	}
	if req.Title != nil {
		ticket.Title = *req.Title
	}
	if req.Description != nil {
		ticket.Description = *req.Description
	}
	if req.Status != nil && *req.Status != ticket.Status {
		wasOpen := model.IncidentStatusOpenStates(ticket.Status)
		ticket.Status = *req.Status
		if wasOpen && !model.IncidentStatusOpenStates(ticket.Status) && ticket.ResolvedAt == nil {
			now := time.Now()
			ticket.ResolvedAt = &now
		}
	}

	if err := s.repo.IncidentTicket.Update(ctx, ticket); err != nil {
		s.logger.Error("update incident ticket failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *incidentTicketService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.IncidentTicket.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIncidentTicketNotFound
		}
		s.logger.Error("get incident ticket failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.IncidentTicket.Delete(ctx, id); err != nil {
		s.logger.Error("delete incident ticket failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

func toIncidentTicketResponse(t *model.IncidentTicket) *dto.IncidentTicketResponse {
	return &dto.IncidentTicketResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		CreatedBy:    toUserResponse(t.CreatedBy),
		AssignedTo:   toUserResponse(t.AssignedTo),
		IncidentType: toIncidentTypeResponse(t.IncidentType),
		Facility:     toFacilityResponse(t.Facility),
		Status:       t.Status,
		CreatedAt:    fmtDateTime(t.CreatedAt),
		UpdatedAt:    fmtDateTime(t.UpdatedAt),
		ResolvedAt:   fmtDateTimePtr(t.ResolvedAt),
	}
}
