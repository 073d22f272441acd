package model

import "time"

// Timestamps are the server-assigned audit fields carried by ticket,
// event and request models. Other tables match the upstream schema and
// have none.
type Timestamps struct {
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
