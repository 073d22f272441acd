package dto

// ── profiles ──

// CreateProfileRequest creates the employment profile for an account.
type CreateProfileRequest struct {
	UserID      uint   `json:"user_id"      binding:"required"`
	JobTitle    string `json:"job_title"    binding:"required,max=100"`
	Department  string `json:"department"   binding:"required,max=100"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,max=20"`
	HireDate    string `json:"hire_date"    binding:"omitempty,datetime=2006-01-02"`
	IsActive    *bool  `json:"is_active"`
}

// UpdateProfileRequest applies a partial or full update.
type UpdateProfileRequest struct {
	JobTitle    *string `json:"job_title"    binding:"omitempty,max=100"`
	Department  *string `json:"department"   binding:"omitempty,max=100"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=20"`
	HireDate    *string `json:"hire_date"    binding:"omitempty,datetime=2006-01-02"`
	IsActive    *bool   `json:"is_active"`
}

// ProfileResponse is the read view with the owning account nested.
type ProfileResponse struct {
	ID          uint          `json:"id"`
	User        *UserResponse `json:"user,omitempty"`
	JobTitle    string        `json:"job_title"`
	Department  string        `json:"department"`
	PhoneNumber string        `json:"phone_number"`
	HireDate    string        `json:"hire_date"`
	IsActive    bool          `json:"is_active"`
}
