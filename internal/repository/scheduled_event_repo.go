package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Capp3/broadcast-flow-control-system/internal/model"
)

// EventFilter narrows a scheduled-event listing. UserID matches the
// attendee set; the window bounds are applied only when both are present.
type EventFilter struct {
	UserID      *uint
	WindowStart *time.Time
	WindowEnd   *time.Time
}

// ScheduledEventRepository is the scheduled-event data-access interface.
type ScheduledEventRepository interface {
	// Create inserts the event and its attendee rows.
	Create(ctx context.Context, event *model.ScheduledEvent, userIDs []uint) error
	GetByID(ctx context.Context, id uint) (*model.ScheduledEvent, error)
	List(ctx context.Context, filter EventFilter) ([]model.ScheduledEvent, error)
	// Update saves the event; a non-nil userIDs replaces the attendee set.
	Update(ctx context.Context, event *model.ScheduledEvent, userIDs []uint) error
	Delete(ctx context.Context, id uint) error
}

type scheduledEventRepo struct {
	db *gorm.DB
}

// NewScheduledEventRepo builds the GORM-backed ScheduledEventRepository.
func NewScheduledEventRepo(db *gorm.DB) ScheduledEventRepository {
	return &scheduledEventRepo{db: db}
}

func attendeeRefs(userIDs []uint) []model.User {
	users := make([]model.User, len(userIDs))
	for i, id := range userIDs {
		users[i] = model.User{ID: id}
	}
	return users
}

func (r *scheduledEventRepo) Create(ctx context.Context, event *model.ScheduledEvent, userIDs []uint) error {
	// Omit("Users.*") writes join rows without touching user rows.
	event.Users = attendeeRefs(userIDs)
	return r.db.WithContext(ctx).Omit("Users.*").Create(event).Error
}

func (r *scheduledEventRepo) GetByID(ctx context.Context, id uint) (*model.ScheduledEvent, error) {
	var event model.ScheduledEvent
	err := r.db.WithContext(ctx).
		Preload("Users").
		Preload("Facility").
		Preload("Facility.Location").
		First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *scheduledEventRepo) List(ctx context.Context, filter EventFilter) ([]model.ScheduledEvent, error) {
	var events []model.ScheduledEvent
	db := r.db.WithContext(ctx).
		Preload("Users").
		Preload("Facility").
		Preload("Facility.Location")

	if filter.UserID != nil {
		db = db.
			Joins("JOIN scheduled_event_users seu ON seu.scheduled_event_id = scheduled_events.id").
			Where("seu.user_id = ?", *filter.UserID)
	}
	if filter.WindowStart != nil && filter.WindowEnd != nil {
		db = db.Where("start_time >= ? AND end_time <= ?", *filter.WindowStart, *filter.WindowEnd)
	}

	err := db.Order("scheduled_events.id").Find(&events).Error
	return events, err
}

func (r *scheduledEventRepo) Update(ctx context.Context, event *model.ScheduledEvent, userIDs []uint) error {
	db := r.db.WithContext(ctx)

	if err := db.Omit("Users").Save(event).Error; err != nil {
		return err
	}
	if userIDs != nil {
		if err := db.Model(event).Omit("Users.*").
			Association("Users").Replace(attendeeRefs(userIDs)); err != nil {
			return err
		}
	}
	return nil
}

func (r *scheduledEventRepo) Delete(ctx context.Context, id uint) error {
	// join rows go with the event via ON DELETE CASCADE
	return r.db.WithContext(ctx).Delete(&model.ScheduledEvent{}, id).Error
}
