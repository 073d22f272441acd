package model

// Location is a physical site that facilities and time entries attach to.
type Location struct {
	ID       uint   `gorm:"primaryKey"                          json:"id"`
	Name     string `gorm:"type:varchar(100);not null"          json:"name"`
	Address  string `gorm:"type:text;not null"                  json:"address"`
	City     string `gorm:"type:varchar(100);not null"          json:"city"`
	State    string `gorm:"type:varchar(100);not null"          json:"state"`
	ZipCode  string `gorm:"type:varchar(20);not null"           json:"zip_code"`
	Country  string `gorm:"type:varchar(100);not null;default:'USA'" json:"country"`
	IsActive bool   `gorm:"not null;default:true"               json:"is_active"`
}

// TableName sets the table name.
func (Location) TableName() string { return "locations" }
