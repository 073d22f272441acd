package model

import "time"

// Scheduled event types.
const (
	EventTypeShift    = "shift"
	EventTypeOvertime = "overtime"
	EventTypeMeeting  = "meeting"
	EventTypeTraining = "training"
)

// ScheduledEvent is a rostered block of time at a facility with one or
// more attendees.
type ScheduledEvent struct {
	ID                uint      `gorm:"primaryKey"                 json:"id"`
	Title             string    `gorm:"type:varchar(200);not null" json:"title"`
	EventType         string    `gorm:"type:varchar(20);not null"  json:"event_type"`
	StartTime         time.Time `gorm:"not null"                   json:"start_time"`
	EndTime           time.Time `gorm:"not null"                   json:"end_time"`
	FacilityID        uint      `gorm:"not null"                   json:"facility_id"`
	IsRecurring       bool      `gorm:"not null;default:false"     json:"is_recurring"`
	RecurrencePattern string    `gorm:"type:varchar(100)"          json:"recurrence_pattern"`
	Notes             string    `gorm:"type:text"                  json:"notes"`
	Timestamps

	Users    []User    `gorm:"many2many:scheduled_event_users;constraint:OnDelete:CASCADE" json:"users,omitempty"`
	Facility *Facility `gorm:"foreignKey:FacilityID;constraint:OnDelete:CASCADE"           json:"facility,omitempty"`
}

// TableName sets the table name.
func (ScheduledEvent) TableName() string { return "scheduled_events" }
