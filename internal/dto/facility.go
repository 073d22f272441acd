package dto

// ── facilities ──

// CreateFacilityRequest creates a facility at a location.
type CreateFacilityRequest struct {
	Name         string `json:"name"          binding:"required,max=100"`
	LocationID   uint   `json:"location_id"   binding:"required"`
	FacilityType string `json:"facility_type" binding:"required,max=100"`
	Capacity     *int   `json:"capacity"      binding:"omitempty,gte=0"`
	IsActive     *bool  `json:"is_active"`
}

// UpdateFacilityRequest applies a partial or full update.
type UpdateFacilityRequest struct {
	Name         *string `json:"name"          binding:"omitempty,max=100"`
	LocationID   *uint   `json:"location_id"`
	FacilityType *string `json:"facility_type" binding:"omitempty,max=100"`
	Capacity     *int    `json:"capacity"      binding:"omitempty,gte=0"`
	IsActive     *bool   `json:"is_active"`
}
