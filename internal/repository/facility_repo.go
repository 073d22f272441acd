package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Capp3/broadcast-flow-control-system/internal/model"
)

// FacilityRepository is the facility data-access interface.
type FacilityRepository interface {
	Create(ctx context.Context, facility *model.Facility) error
	GetByID(ctx context.Context, id uint) (*model.Facility, error)
	List(ctx context.Context) ([]model.Facility, error)
	Update(ctx context.Context, facility *model.Facility) error
	Delete(ctx context.Context, id uint) error
}

type facilityRepo struct {
	db *gorm.DB
}

// NewFacilityRepo builds the GORM-backed FacilityRepository.
func NewFacilityRepo(db *gorm.DB) FacilityRepository {
	return &facilityRepo{db: db}
}

func (r *facilityRepo) Create(ctx context.Context, facility *model.Facility) error {
	return r.db.WithContext(ctx).Create(facility).Error
}

func (r *facilityRepo) GetByID(ctx context.Context, id uint) (*model.Facility, error) {
	var facility model.Facility
	err := r.db.WithContext(ctx).
		Preload("Location").
		First(&facility, id).Error
	if err != nil {
		return nil, err
	}
	return &facility, nil
}

func (r *facilityRepo) List(ctx context.Context) ([]model.Facility, error) {
	var facilities []model.Facility
	err := r.db.WithContext(ctx).
		Preload("Location").
		Order("id").
		Find(&facilities).Error
	return facilities, err
}

func (r *facilityRepo) Update(ctx context.Context, facility *model.Facility) error {
	return r.db.WithContext(ctx).Save(facility).Error
}

func (r *facilityRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Facility{}, id).Error
}
