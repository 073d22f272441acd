package dto

// ── incident types ──

// CreateIncidentTypeRequest creates an incident classification.
type CreateIncidentTypeRequest struct {
	Name          string `json:"name"           binding:"required,max=100"`
	Description   string `json:"description"    binding:"required"`
	PriorityLevel *int   `json:"priority_level" binding:"omitempty,min=1,max=4"`
	IsActive      *bool  `json:"is_active"`
}

// UpdateIncidentTypeRequest applies a partial or full update.
type UpdateIncidentTypeRequest struct {
	Name          *string `json:"name"           binding:"omitempty,max=100"`
	Description   *string `json:"description"`
	PriorityLevel *int    `json:"priority_level" binding:"omitempty,min=1,max=4"`
	IsActive      *bool   `json:"is_active"`
}

// ── incident tickets ──

// CreateIncidentTicketRequest opens an incident ticket.
type CreateIncidentTicketRequest struct {
	Title          string `json:"title"            binding:"required,max=200"`
	Description    string `json:"description"      binding:"required"`
	CreatedByID    uint   `json:"created_by_id"    binding:"required"`
	AssignedToID   *uint  `json:"assigned_to_id"`
	IncidentTypeID uint   `json:"incident_type_id" binding:"required"`
	FacilityID     uint   `json:"facility_id"      binding:"required"`
	Status         string `json:"status"           binding:"omitempty,oneof=open in_progress on_hold resolved closed"`
}

// UpdateIncidentTicketRequest applies a partial or full update.
// A null assigned_to_id clears the assignee.
type UpdateIncidentTicketRequest struct {
	Title          *string `json:"title"            binding:"omitempty,max=200"`
	Description    *string `json:"description"`
	AssignedToID   *uint   `json:"assigned_to_id"`
	ClearAssignee  bool    `json:"clear_assignee"`
	IncidentTypeID *uint   `json:"incident_type_id"`
	FacilityID     *uint   `json:"facility_id"`
	Status         *string `json:"status"           binding:"omitempty,oneof=open in_progress on_hold resolved closed"`
}

// IncidentTicketResponse is the read view with related records nested.
type IncidentTicketResponse struct {
	ID           uint                  `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	CreatedBy    *UserResponse         `json:"created_by,omitempty"`
	AssignedTo   *UserResponse         `json:"assigned_to,omitempty"`
	IncidentType *IncidentTypeResponse `json:"incident_type,omitempty"`
	Facility     *FacilityResponse     `json:"facility,omitempty"`
	Status       string                `json:"status"`
	CreatedAt    string                `json:"created_at"`
	UpdatedAt    string                `json:"updated_at"`
	ResolvedAt   *string               `json:"resolved_at,omitempty"`
}
