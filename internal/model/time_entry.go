package model

import "time"

// Time entry types.
const (
	EntryTypeClockIn    = "clock_in"
	EntryTypeClockOut   = "clock_out"
	EntryTypeBreakStart = "break_start"
	EntryTypeBreakEnd   = "break_end"
)

// TimeEntry records a single clock or break event for a user at a location.
type TimeEntry struct {
	ID         uint      `gorm:"primaryKey"                 json:"id"`
	UserID     uint      `gorm:"not null"                   json:"user_id"`
	EntryType  string    `gorm:"type:varchar(20);not null"  json:"entry_type"`
	Timestamp  time.Time `gorm:"not null"                   json:"timestamp"`
	Note       string    `gorm:"type:text"                  json:"note"`
	LocationID uint      `gorm:"not null"                   json:"location_id"`

	User     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"     json:"user,omitempty"`
	Location *Location `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE" json:"location,omitempty"`
}

// TableName sets the table name.
func (TimeEntry) TableName() string { return "time_entries" }
