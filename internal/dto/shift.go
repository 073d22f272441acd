package dto

// ── shifts ──

// CreateShiftRequest creates a named working window.
type CreateShiftRequest struct {
	Name        string `json:"name"         binding:"required,max=100"`
	StartTime   string `json:"start_time"   binding:"required,datetime=15:04:05"`
	EndTime     string `json:"end_time"     binding:"required,datetime=15:04:05"`
	IsOvernight *bool  `json:"is_overnight"`
	IsActive    *bool  `json:"is_active"`
}

// UpdateShiftRequest applies a partial or full update.
type UpdateShiftRequest struct {
	Name        *string `json:"name"         binding:"omitempty,max=100"`
	StartTime   *string `json:"start_time"   binding:"omitempty,datetime=15:04:05"`
	EndTime     *string `json:"end_time"     binding:"omitempty,datetime=15:04:05"`
	IsOvernight *bool   `json:"is_overnight"`
	IsActive    *bool   `json:"is_active"`
}

// ShiftResponse is the read view of a shift.
type ShiftResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsOvernight bool   `json:"is_overnight"`
	IsActive    bool   `json:"is_active"`
}
