package model

import "time"

// Time-off request statuses.
const (
	TimeOffStatusPending   = "pending"
	TimeOffStatusApproved  = "approved"
	TimeOffStatusRejected  = "rejected"
	TimeOffStatusCancelled = "cancelled"
)

// Time-off request types.
const (
	TimeOffTypeVacation    = "vacation"
	TimeOffTypeSick        = "sick"
	TimeOffTypePersonal    = "personal"
	TimeOffTypeBereavement = "bereavement"
	TimeOffTypeOther       = "other"
)

// TimeOffRequest asks for leave between two dates.
// ReviewedAt is set once, when the request first leaves pending.
type TimeOffRequest struct {
	ID           uint       `gorm:"primaryKey"                                  json:"id"`
	UserID       uint       `gorm:"not null"                                    json:"user_id"`
	RequestType  string     `gorm:"type:varchar(20);not null"                   json:"request_type"`
	StartDate    time.Time  `gorm:"type:date;not null"                          json:"start_date"`
	EndDate      time.Time  `gorm:"type:date;not null"                          json:"end_date"`
	Status       string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Reason       string     `gorm:"type:text;not null"                          json:"reason"`
	ReviewedByID *uint      `json:"reviewed_by_id,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	Timestamps

	User       *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"       json:"user,omitempty"`
	ReviewedBy *User `gorm:"foreignKey:ReviewedByID;constraint:OnDelete:SET NULL" json:"reviewed_by,omitempty"`
}

// TableName sets the table name.
func (TimeOffRequest) TableName() string { return "time_off_requests" }
