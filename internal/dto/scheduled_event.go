package dto

// ── scheduled events ──

// CreateScheduledEventRequest creates a rostered event with attendees.
type CreateScheduledEventRequest struct {
	Title             string `json:"title"              binding:"required,max=200"`
	EventType         string `json:"event_type"         binding:"required,oneof=shift overtime meeting training"`
	StartTime         string `json:"start_time"         binding:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime           string `json:"end_time"           binding:"required,datetime=2006-01-02T15:04:05Z07:00"`
	UserIDs           []uint `json:"user_ids"           binding:"required,min=1"`
	FacilityID        uint   `json:"facility_id"        binding:"required"`
	IsRecurring       *bool  `json:"is_recurring"`
	RecurrencePattern string `json:"recurrence_pattern" binding:"omitempty,max=100"`
	Notes             string `json:"notes"`
}

// UpdateScheduledEventRequest applies a partial or full update; a non-nil
// user_ids replaces the attendee set.
type UpdateScheduledEventRequest struct {
	Title             *string `json:"title"              binding:"omitempty,max=200"`
	EventType         *string `json:"event_type"         binding:"omitempty,oneof=shift overtime meeting training"`
	StartTime         *string `json:"start_time"         binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime           *string `json:"end_time"           binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	UserIDs           []uint  `json:"user_ids"`
	FacilityID        *uint   `json:"facility_id"`
	IsRecurring       *bool   `json:"is_recurring"`
	RecurrencePattern *string `json:"recurrence_pattern" binding:"omitempty,max=100"`
	Notes             *string `json:"notes"`
}

// ScheduledEventListRequest narrows a listing by attendee or window.
// The window applies only when both bounds are present.
type ScheduledEventListRequest struct {
	UserID    *uint  `form:"user_id"`
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date"   binding:"omitempty,datetime=2006-01-02"`
}

// ScheduledEventResponse is the read view with attendees and facility
// nested.
type ScheduledEventResponse struct {
	ID                uint              `json:"id"`
	Title             string            `json:"title"`
	EventType         string            `json:"event_type"`
	StartTime         string            `json:"start_time"`
	EndTime           string            `json:"end_time"`
	Users             []UserResponse    `json:"users"`
	Facility          *FacilityResponse `json:"facility,omitempty"`
	IsRecurring       bool              `json:"is_recurring"`
	RecurrencePattern string            `json:"recurrence_pattern"`
	Notes             string            `json:"notes"`
	CreatedAt         string            `json:"created_at"`
	UpdatedAt         string            `json:"updated_at"`
}

// ImportEventsRequest carries the form fields accompanying an uploaded
// calendar; every imported event lands at one facility with one
// attendee set.
type ImportEventsRequest struct {
	FacilityID uint   `form:"facility_id" binding:"required"`
	UserIDs    []uint `form:"user_ids"    binding:"required,min=1"`
}

// ImportEventsResponse reports the outcome of an ICS import.
type ImportEventsResponse struct {
	Total   int                `json:"total"`
	Success int                `json:"success"`
	Failed  int                `json:"failed"`
	Errors  []ImportEventError `json:"errors,omitempty"`
}

// ImportEventError describes one rejected calendar entry.
type ImportEventError struct {
	UID    string `json:"uid"`
	Reason string `json:"reason"`
}
