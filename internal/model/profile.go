package model

import "time"

// Profile carries the employment details for exactly one user.
type Profile struct {
	ID          uint      `gorm:"primaryKey"                         json:"id"`
	UserID      uint      `gorm:"not null;unique"                    json:"user_id"`
	JobTitle    string    `gorm:"type:varchar(100);not null"         json:"job_title"`
	Department  string    `gorm:"type:varchar(100);not null"         json:"department"`
	PhoneNumber string    `gorm:"type:varchar(20)"                   json:"phone_number"`
	HireDate    time.Time `gorm:"type:date;not null"                 json:"hire_date"`
	IsActive    bool      `gorm:"not null;default:true"              json:"is_active"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// TableName sets the table name.
func (Profile) TableName() string { return "profiles" }
