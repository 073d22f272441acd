package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Capp3/broadcast-flow-control-system/internal/model"
)

// TimeOffRepository is the time-off-request data-access interface.
type TimeOffRepository interface {
	Create(ctx context.Context, req *model.TimeOffRequest) error
	GetByID(ctx context.Context, id uint) (*model.TimeOffRequest, error)
	// List returns all requests; userID narrows to one requesting account.
	List(ctx context.Context, userID *uint) ([]model.TimeOffRequest, error)
	Update(ctx context.Context, req *model.TimeOffRequest) error
	Delete(ctx context.Context, id uint) error
}

type timeOffRepo struct {
	db *gorm.DB
}

// NewTimeOffRepo builds the GORM-backed TimeOffRepository.
func NewTimeOffRepo(db *gorm.DB) TimeOffRepository {
	return &timeOffRepo{db: db}
}

func (r *timeOffRepo) Create(ctx context.Context, req *model.TimeOffRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *timeOffRepo) GetByID(ctx context.Context, id uint) (*model.TimeOffRequest, error) {
	var req model.TimeOffRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("ReviewedBy").
		First(&req, id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *timeOffRepo) List(ctx context.Context, userID *uint) ([]model.TimeOffRequest, error) {
	var requests []model.TimeOffRequest
	db := r.db.WithContext(ctx).
		Preload("User").
		Preload("ReviewedBy")

	if userID != nil {
		db = db.Where("user_id = ?", *userID)
	}

	err := db.Order("id").Find(&requests).Error
	return requests, err
}

func (r *timeOffRepo) Update(ctx context.Context, req *model.TimeOffRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *timeOffRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.TimeOffRequest{}, id).Error
}
