package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Capp3/broadcast-flow-control-system/internal/model"
)

// IncidentTicketRepository is the incident-ticket data-access interface.
type IncidentTicketRepository interface {
	Create(ctx context.Context, ticket *model.IncidentTicket) error
	GetByID(ctx context.Context, id uint) (*model.IncidentTicket, error)
	List(ctx context.Context) ([]model.IncidentTicket, error)
	Update(ctx context.Context, ticket *model.IncidentTicket) error
	Delete(ctx context.Context, id uint) error
}

type incidentTicketRepo struct {
	db *gorm.DB
}

// NewIncidentTicketRepo builds the GORM-backed IncidentTicketRepository.
func NewIncidentTicketRepo(db *gorm.DB) IncidentTicketRepository {
	return &incidentTicketRepo{db: db}
}

func (r *incidentTicketRepo) preload(db *gorm.DB) *gorm.DB {
	return db.
		Preload("CreatedBy").
		Preload("AssignedTo").
		Preload("IncidentType").
		Preload("Facility").
		Preload("Facility.Location")
}

func (r *incidentTicketRepo) Create(ctx context.Context, ticket *model.IncidentTicket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *incidentTicketRepo) GetByID(ctx context.Context, id uint) (*model.IncidentTicket, error) {
	var ticket model.IncidentTicket
	err := r.preload(r.db.WithContext(ctx)).First(&ticket, id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *incidentTicketRepo) List(ctx context.Context) ([]model.IncidentTicket, error) {
	var tickets []model.IncidentTicket
	err := r.preload(r.db.WithContext(ctx)).Order("id").Find(&tickets).Error
	return tickets, err
}

func (r *incidentTicketRepo) Update(ctx context.Context, ticket *model.IncidentTicket) error {
	return r.db.WithContext(ctx).Save(ticket).Error
}

func (r *incidentTicketRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.IncidentTicket{}, id).Error
}
