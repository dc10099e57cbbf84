package models

import "time"

// RevokedToken blacklists a bearer token that was explicitly logged out
// before its signed expiry. ExpiresAt mirrors the token's own exp claim so
// the purge job can drop rows once the token would be rejected anyway.
type RevokedToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	RevokedAt time.Time `json:"revokedAt"`
	ExpiresAt time.Time `gorm:"index" json:"expiresAt"`
}
