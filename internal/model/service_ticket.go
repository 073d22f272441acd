package model

import "time"

// Service ticket statuses.
const (
	ServiceStatusPending    = "pending"
	ServiceStatusApproved   = "approved"
	ServiceStatusInProgress = "in_progress"
	ServiceStatusCompleted  = "completed"
	ServiceStatusRejected   = "rejected"
)

// ServiceTicket requests work at a facility.
// CompletedAt is set once, when the ticket first reaches completed.
type ServiceTicket struct {
	ID           uint       `gorm:"primaryKey"                                  json:"id"`
	Title        string     `gorm:"type:varchar(200);not null"                  json:"title"`
	Description  string     `gorm:"type:text;not null"                          json:"description"`
	CreatedByID  uint       `gorm:"not null"                                    json:"created_by_id"`
	AssignedToID *uint      `json:"assigned_to_id,omitempty"`
	FacilityID   uint       `gorm:"not null"                                    json:"facility_id"`
	Status       string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	Timestamps

	CreatedBy  *User     `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE"   json:"created_by,omitempty"`
	AssignedTo *User     `gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL" json:"assigned_to,omitempty"`
	Facility   *Facility `gorm:"foreignKey:FacilityID;constraint:OnDelete:CASCADE"    json:"facility,omitempty"`
}

// TableName sets the table name.
func (ServiceTicket) TableName() string { return "service_tickets" }
