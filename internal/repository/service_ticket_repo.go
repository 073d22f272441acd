package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Capp3/broadcast-flow-control-system/internal/model"
)

// ServiceTicketRepository is the service-ticket data-access interface.
type ServiceTicketRepository interface {
	Create(ctx context.Context, ticket *model.ServiceTicket) error
	GetByID(ctx context.Context, id uint) (*model.ServiceTicket, error)
	List(ctx context.Context) ([]model.ServiceTicket, error)
	Update(ctx context.Context, ticket *model.ServiceTicket) error
	Delete(ctx context.Context, id uint) error
}

type serviceTicketRepo struct {
	db *gorm.DB
}

// NewServiceTicketRepo builds the GORM-backed ServiceTicketRepository.
func NewServiceTicketRepo(db *gorm.DB) ServiceTicketRepository {
	return &serviceTicketRepo{db: db}
}

func (r *serviceTicketRepo) preload(db *gorm.DB) *gorm.DB {
	return db.
		Preload("CreatedBy").
		Preload("AssignedTo").
		Preload("Facility").
		Preload("Facility.Location")
}

func (r *serviceTicketRepo) Create(ctx context.Context, ticket *model.ServiceTicket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *serviceTicketRepo) GetByID(ctx context.Context, id uint) (*model.ServiceTicket, error) {
	var ticket model.ServiceTicket
	err := r.preload(r.db.WithContext(ctx)).First(&ticket, id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *serviceTicketRepo) List(ctx context.Context) ([]model.ServiceTicket, error) {
	var tickets []model.ServiceTicket
	err := r.preload(r.db.WithContext(ctx)).Order("id").Find(&tickets).Error
	return tickets, err
}

func (r *serviceTicketRepo) Update(ctx context.Context, ticket *model.ServiceTicket) error {
	return r.db.WithContext(ctx).Save(ticket).Error
}

func (r *serviceTicketRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.ServiceTicket{}, id).Error
}
