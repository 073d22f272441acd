package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Capp3/broadcast-flow-control-system/internal/model"
)

// TimeEntryRepository is the time-entry data-access interface.
type TimeEntryRepository interface {
	Create(ctx context.Context, entry *model.TimeEntry) error
	GetByID(ctx context.Context, id uint) (*model.TimeEntry, error)
	// List returns all entries; userID narrows to one owning account.
	List(ctx context.Context, userID *uint) ([]model.TimeEntry, error)
	Update(ctx context.Context, entry *model.TimeEntry) error
	Delete(ctx context.Context, id uint) error
}

type timeEntryRepo struct {
	db *gorm.DB
}

// NewTimeEntryRepo builds the GORM-backed TimeEntryRepository.
func NewTimeEntryRepo(db *gorm.DB) TimeEntryRepository {
	return &timeEntryRepo{db: db}
}

func (r *timeEntryRepo) Create(ctx context.Context, entry *model.TimeEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *timeEntryRepo) GetByID(ctx context.Context, id uint) (*model.TimeEntry, error) {
	var entry model.TimeEntry
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Location").
		First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *timeEntryRepo) List(ctx context.Context, userID *uint) ([]model.TimeEntry, error) {
	var entries []model.TimeEntry
	db := r.db.WithContext(ctx).
		Preload("User").
		Preload("Location")

	if userID != nil {
		db = db.Where("user_id = ?", *userID)
	}

	err := db.Order("id").Find(&entries).Error
	return entries, err
}

func (r *timeEntryRepo) Update(ctx context.Context, entry *model.TimeEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *timeEntryRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.TimeEntry{}, id).Error
}
