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

var ErrServiceTicketNotFound = errors.New("service ticket not found")

// ServiceTicketService owns service ticket CRUD and the completed-at
// transition.
type ServiceTicketService interface {
	Create(ctx context.Context, req *dto.CreateServiceTicketRequest) (*dto.ServiceTicketResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ServiceTicketResponse, error)
	List(ctx context.Context) ([]dto.ServiceTicketResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateServiceTicketRequest) (*dto.ServiceTicketResponse, error)
	Delete(ctx context.Context, id uint) error
}

type serviceTicketService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewServiceTicketService builds the ServiceTicketService.
func NewServiceTicketService(repo *repository.Repository, logger *zap.Logger) ServiceTicketService {
	return &serviceTicketService{repo: repo, logger: logger}
}

func (s *serviceTicketService) resolveUser(ctx context.Context, id uint) error {
	if _, err := s.repo.User.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return refErr("user", id)
		}
		s.logger.Error("resolve user failed", zap.Uint("user_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *serviceTicketService) resolveFacility(ctx context.Context, id uint) error {
	if _, err := s.repo.Facility.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return refErr("facility", id)
		}
		s.logger.Error("resolve facility failed", zap.Uint("facility_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *serviceTicketService) Create(ctx context.Context, req *dto.CreateServiceTicketRequest) (*dto.ServiceTicketResponse, error) {
	if err := s.resolveUser(ctx, req.CreatedByID); err != nil {
		return nil, err
	}
	if req.AssignedToID != nil {
		if err := s.resolveUser(ctx, *req.AssignedToID); err != nil {
			return nil, err
		}
	}
	if err := s.resolveFacility(ctx, req.FacilityID); err != nil {
		return nil, err
	}

	ticket := &model.ServiceTicket{
		Title:        req.Title,
		Description:  req.Description,
		CreatedByID:  req.CreatedByID,
		AssignedToID: req.AssignedToID,
		FacilityID:   req.FacilityID,
		Status:       model.ServiceStatusPending,
	}
	if req.Status != "" {
		ticket.Status = req.Status
	}
	if ticket.Status == model.ServiceStatusCompleted {
		now := time.Now()
		ticket.CompletedAt = &now
	}

	if err := s.repo.ServiceTicket.Create(ctx, ticket); err != nil {
		s.logger.Error("create service ticket failed", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, ticket.ID)
}

func (s *serviceTicketService) GetByID(ctx context.Context, id uint) (*dto.ServiceTicketResponse, error) {
	ticket, err := s.repo.ServiceTicket.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceTicketNotFound
		}
		s.logger.Error("get service ticket failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toServiceTicketResponse(ticket), nil
}

func (s *serviceTicketService) List(ctx context.Context) ([]dto.ServiceTicketResponse, error) {
	tickets, err := s.repo.ServiceTicket.List(ctx)
	if err != nil {
		s.logger.Error("list service tickets failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ServiceTicketResponse, 0, len(tickets))
	for i := range tickets {
		result = append(result, *toServiceTicketResponse(&tickets[i]))
	}
	return result, nil
}

func (s *serviceTicketService) Update(ctx context.Context, id uint, req *dto.UpdateServiceTicketRequest) (*dto.ServiceTicketResponse, error) {
	ticket, err := s.repo.ServiceTicket.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceTicketNotFound
		}
		s.logger.Error("get service ticket failed", zap.Uint("id", id), zap.Error(err))
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
	if req.FacilityID != nil {
		if err := s.resolveFacility(ctx, *req.FacilityID); err != nil {
			return nil, err
		}
		ticket.FacilityID = *req.FacilityID
	}
	if req.Title != nil {
		ticket.Title = *req.Title
	}
	if req.Description != nil {
		ticket.Description = *req.Description
	}
	if req.Status != nil && *req.Status != ticket.Status {
		ticket.Status = *req.Status
		if ticket.Status == model.ServiceStatusCompleted && ticket.CompletedAt == nil {
			now := time.Now()
			ticket.CompletedAt = &now
		}
	}

	if err := s.repo.ServiceTicket.Update(ctx, ticket); err != nil {
		s.logger.Error("update service ticket failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *serviceTicketService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.ServiceTicket.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrServiceTicketNotFound
		}
		s.logger.Error("get service ticket failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.ServiceTicket.Delete(ctx, id); err != nil {
		s.logger.Error("delete service ticket failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

func toServiceTicketResponse(t *model.ServiceTicket) *dto.ServiceTicketResponse {
	return &dto.ServiceTicketResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		CreatedBy:   toUserResponse(t.CreatedBy),
		AssignedTo:  toUserResponse(t.AssignedTo),
		Facility:    toFacilityResponse(t.Facility),
		Status:      t.Status,
		CreatedAt:   fmtDateTime(t.CreatedAt),
		UpdatedAt:   fmtDateTime(t.UpdatedAt),
		CompletedAt: fmtDateTimePtr(t.CompletedAt),
	}
}
