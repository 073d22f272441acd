package dto

// ── locations ──

// CreateLocationRequest creates a location.
type CreateLocationRequest struct {
	Name     string `json:"name"     binding:"required,max=100"`
	Address  string `json:"address"  binding:"required"`
	City     string `json:"city"     binding:"required,max=100"`
	State    string `json:"state"    binding:"required,max=100"`
	ZipCode  string `json:"zip_code" binding:"required,max=20"`
	Country  string `json:"country"  binding:"omitempty,max=100"`
	IsActive *bool  `json:"is_active"`
}

// UpdateLocationRequest applies a partial or full update.
type UpdateLocationRequest struct {
	Name     *string `json:"name"     binding:"omitempty,max=100"`
	Address  *string `json:"address"`
	City     *string `json:"city"     binding:"omitempty,max=100"`
	State    *string `json:"state"    binding:"omitempty,max=100"`
	ZipCode  *string `json:"zip_code" binding:"omitempty,max=20"`
	Country  *string `json:"country"  binding:"omitempty,max=100"`
	IsActive *bool   `json:"is_active"`
}
