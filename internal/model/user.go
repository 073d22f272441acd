package model

// User is an account that can authenticate and act on records.
type User struct {
	ID           uint   `gorm:"primaryKey"                          json:"id"`
	Username     string `gorm:"type:varchar(150);not null;unique"   json:"username"`
	Email        string `gorm:"type:varchar(255);not null"          json:"email"`
	FirstName    string `gorm:"type:varchar(150)"                   json:"first_name"`
	LastName     string `gorm:"type:varchar(150)"                   json:"last_name"`
	IsStaff      bool   `gorm:"not null;default:false"              json:"is_staff"`
	PasswordHash string `gorm:"type:varchar(255);not null"          json:"-"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
