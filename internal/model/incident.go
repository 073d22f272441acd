package model

import "time"

// Incident ticket statuses.
const (
	IncidentStatusOpen       = "open"
	IncidentStatusInProgress = "in_progress"
	IncidentStatusOnHold     = "on_hold"
	IncidentStatusResolved   = "resolved"
	IncidentStatusClosed     = "closed"
)

// IncidentType classifies incident tickets; priority runs 1 (low) to
// 4 (critical).
type IncidentType struct {
	ID            uint   `gorm:"primaryKey"                 json:"id"`
	Name          string `gorm:"type:varchar(100);not null" json:"name"`
	Description   string `gorm:"type:text;not null"         json:"description"`
	PriorityLevel int    `gorm:"not null;default:2"         json:"priority_level"`
	IsActive      bool   `gorm:"not null;default:true"      json:"is_active"`
}

// TableName sets the table name.
func (IncidentType) TableName() string { return "incident_types" }

// IncidentTicket reports a problem at a facility.
// ResolvedAt is set once, when the ticket first leaves the open states.
type IncidentTicket struct {
	ID             uint       `gorm:"primaryKey"                              json:"id"`
	Title          string     `gorm:"type:varchar(200);not null"              json:"title"`
	Description    string     `gorm:"type:text;not null"                      json:"description"`
	CreatedByID    uint       `gorm:"not null"                                json:"created_by_id"`
	AssignedToID   *uint      `json:"assigned_to_id,omitempty"`
	IncidentTypeID uint       `gorm:"not null"                                json:"incident_type_id"`
	FacilityID     uint       `gorm:"not null"                                json:"facility_id"`
	Status         string     `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	Timestamps

	CreatedBy    *User         `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE"     json:"created_by,omitempty"`
	AssignedTo   *User         `gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL"   json:"assigned_to,omitempty"`
	IncidentType *IncidentType `gorm:"foreignKey:IncidentTypeID;constraint:OnDelete:CASCADE"  json:"incident_type,omitempty"`
	Facility     *Facility     `gorm:"foreignKey:FacilityID;constraint:OnDelete:CASCADE"      json:"facility,omitempty"`
}

// TableName sets the table name.
func (IncidentTicket) TableName() string { return "incident_tickets" }

// IncidentStatusOpenStates reports whether s counts as "still open" for
// the resolved-at transition.
func IncidentStatusOpenStates(s string) bool {
	switch s {
	case IncidentStatusOpen, IncidentStatusInProgress, IncidentStatusOnHold:
		return true
	}
	return false
}
