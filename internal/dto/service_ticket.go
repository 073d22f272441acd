package dto

// ── service tickets ──

// CreateServiceTicketRequest opens a service ticket.
type CreateServiceTicketRequest struct {
	Title        string `json:"title"          binding:"required,max=200"`
	Description  string `json:"description"    binding:"required"`
	CreatedByID  uint   `json:"created_by_id"  binding:"required"`
	AssignedToID *uint  `json:"assigned_to_id"`
	FacilityID   uint   `json:"facility_id"    binding:"required"`
	Status       string `json:"status"         binding:"omitempty,oneof=pending approved in_progress completed rejected"`
}

// UpdateServiceTicketRequest applies a partial or full update.
type UpdateServiceTicketRequest struct {
	Title         *string `json:"title"          binding:"omitempty,max=200"`
	Description   *string `json:"description"`
	AssignedToID  *uint   `json:"assigned_to_id"`
	ClearAssignee bool    `json:"clear_assignee"`
	FacilityID    *uint   `json:"facility_id"`
	Status        *string `json:"status"         binding:"omitempty,oneof=pending approved in_progress completed rejected"`
}

// ServiceTicketResponse is the read view with related records nested.
type ServiceTicketResponse struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	CreatedBy   *UserResponse     `json:"created_by,omitempty"`
	AssignedTo  *UserResponse     `json:"assigned_to,omitempty"`
	Facility    *FacilityResponse `json:"facility,omitempty"`
	Status      string            `json:"status"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
	CompletedAt *string           `json:"completed_at,omitempty"`
}
