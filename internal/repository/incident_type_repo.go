package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Capp3/broadcast-flow-control-system/internal/model"
)

// IncidentTypeRepository is the incident-type data-access interface.
type IncidentTypeRepository interface {
	Create(ctx context.Context, it *model.IncidentType) error
	GetByID(ctx context.Context, id uint) (*model.IncidentType, error)
	List(ctx context.Context) ([]model.IncidentType, error)
	Update(ctx context.Context, it *model.IncidentType) error
	Delete(ctx context.Context, id uint) error
}

type incidentTypeRepo struct {
	db *gorm.DB
}

// NewIncidentTypeRepo builds the GORM-backed IncidentTypeRepository.
func NewIncidentTypeRepo(db *gorm.DB) IncidentTypeRepository {
	return &incidentTypeRepo{db: db}
}

func (r *incidentTypeRepo) Create(ctx context.Context, it *model.IncidentType) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *incidentTypeRepo) GetByID(ctx context.Context, id uint) (*model.IncidentType, error) {
	var it model.IncidentType
	err := r.db.WithContext(ctx).First(&it, id).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *incidentTypeRepo) List(ctx context.Context) ([]model.IncidentType, error) {
	var types []model.IncidentType
	err := r.db.WithContext(ctx).Order("id").Find(&types).Error
	return types, err
}

func (r *incidentTypeRepo) Update(ctx context.Context, it *model.IncidentType) error {
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *incidentTypeRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.IncidentType{}, id).Error
}
