package model

// Shift is a named working window, e.g. "Night Crew 22:00-06:00".
// Times are stored as wall-clock strings; IsOvernight marks windows
// crossing midnight.
type Shift struct {
	ID          uint   `gorm:"primaryKey"                 json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	StartTime   string `gorm:"type:time;not null"         json:"start_time"`
	EndTime     string `gorm:"type:time;not null"         json:"end_time"`
	IsOvernight bool   `gorm:"not null;default:false"     json:"is_overnight"`
	IsActive    bool   `gorm:"not null;default:true"      json:"is_active"`
}

// TableName sets the table name.
func (Shift) TableName() string { return "shifts" }
