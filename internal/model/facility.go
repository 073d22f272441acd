package model

// Facility is a bookable space inside a location.
type Facility struct {
	ID           uint   `gorm:"primaryKey"                  json:"id"`
	Name         string `gorm:"type:varchar(100);not null"  json:"name"`
	LocationID   uint   `gorm:"not null"                    json:"location_id"`
	FacilityType string `gorm:"type:varchar(100);not null"  json:"facility_type"`
	Capacity     int    `gorm:"not null;default:0"          json:"capacity"`
	IsActive     bool   `gorm:"not null;default:true"       json:"is_active"`

	Location *Location `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE" json:"location,omitempty"`
}

// TableName sets the table name.
func (Facility) TableName() string { return "facilities" }
