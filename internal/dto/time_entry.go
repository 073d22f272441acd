package dto

// ── time entries ──

// CreateTimeEntryRequest records a clock or break event. Timestamp
// defaults to the server clock when omitted.
type CreateTimeEntryRequest struct {
	UserID     uint   `json:"user_id"     binding:"required"`
	EntryType  string `json:"entry_type"  binding:"required,oneof=clock_in clock_out break_start break_end"`
	Timestamp  string `json:"timestamp"   binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Note       string `json:"note"`
	LocationID uint   `json:"location_id" binding:"required"`
}

// UpdateTimeEntryRequest applies a partial or full update.
type UpdateTimeEntryRequest struct {
	EntryType  *string `json:"entry_type"  binding:"omitempty,oneof=clock_in clock_out break_start break_end"`
	Timestamp  *string `json:"timestamp"   binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Note       *string `json:"note"`
	LocationID *uint   `json:"location_id"`
}

// TimeEntryListRequest narrows a listing to one owning account.
type TimeEntryListRequest struct {
	UserID *uint `form:"user_id"`
}

// TimeEntryResponse is the read view with user and location nested.
type TimeEntryResponse struct {
	ID        uint              `json:"id"`
	User      *UserResponse     `json:"user,omitempty"`
	EntryType string            `json:"entry_type"`
	Timestamp string            `json:"timestamp"`
	Note      string            `json:"note"`
	Location  *LocationResponse `json:"location,omitempty"`
}
