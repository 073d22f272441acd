package dto

// Wire layouts for date and time fields.
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04:05"
	DateTimeLayout = "2006-01-02T15:04:05Z07:00"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsStaff   bool   `json:"is_staff"`
}

// LocationResponse is the read view of a location.
type LocationResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Country  string `json:"country"`
	IsActive bool   `json:"is_active"`
}

// FacilityResponse is the read view of a facility with its location nested.
type FacilityResponse struct {
	ID           uint              `json:"id"`
	Name         string            `json:"name"`
	Location     *LocationResponse `json:"location,omitempty"`
	FacilityType string            `json:"facility_type"`
	Capacity     int               `json:"capacity"`
	IsActive     bool              `json:"is_active"`
}

// IncidentTypeResponse is the read view of an incident type.
type IncidentTypeResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	PriorityLevel int    `json:"priority_level"`
	IsActive      bool   `json:"is_active"`
}
