package models

import "time"

// AuditLog records an admin action taken through the console.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ActorID   string `gorm:"size:64;index" json:"actor_id"`
	RequestID string `gorm:"size:64" json:"request_id"`
	Action    string `gorm:"size:50;not null" json:"action"`

	Entity   string `gorm:"size:50" json:"entity"`
	EntityID string `gorm:"size:64" json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
