package dto

// ── time-off requests ──

// CreateTimeOffRequest files a leave request.
type CreateTimeOffRequest struct {
	UserID      uint   `json:"user_id"      binding:"required"`
	RequestType string `json:"request_type" binding:"required,oneof=vacation sick personal bereavement other"`
	StartDate   string `json:"start_date"   binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date"     binding:"required,datetime=2006-01-02"`
	Reason      string `json:"reason"       binding:"required"`
	Status      string `json:"status"       binding:"omitempty,oneof=pending approved rejected cancelled"`
}

// UpdateTimeOffRequest applies a partial or full update.
type UpdateTimeOffRequest struct {
	RequestType  *string `json:"request_type"   binding:"omitempty,oneof=vacation sick personal bereavement other"`
	StartDate    *string `json:"start_date"     binding:"omitempty,datetime=2006-01-02"`
	EndDate      *string `json:"end_date"       binding:"omitempty,datetime=2006-01-02"`
	Status       *string `json:"status"         binding:"omitempty,oneof=pending approved rejected cancelled"`
	Reason       *string `json:"reason"`
	ReviewedByID *uint   `json:"reviewed_by_id"`
}

// TimeOffListRequest narrows a listing to one requesting account.
type TimeOffListRequest struct {
	UserID *uint `form:"user_id"`
}

// TimeOffResponse is the read view with requester and reviewer nested.
type TimeOffResponse struct {
	ID          uint          `json:"id"`
	User        *UserResponse `json:"user,omitempty"`
	RequestType string        `json:"request_type"`
	StartDate   string        `json:"start_date"`
	EndDate     string        `json:"end_date"`
	Status      string        `json:"status"`
	Reason      string        `json:"reason"`
	ReviewedBy  *UserResponse `json:"reviewed_by,omitempty"`
	ReviewedAt  *string       `json:"reviewed_at,omitempty"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
}
