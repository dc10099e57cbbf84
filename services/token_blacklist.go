// services/token_blacklist.go
package services

import (
	"time"

	"nailstudio-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TokenBlacklist tracks bearer tokens revoked by logout. Entries carry the
// token's own expiry so the sweep can drop them once the signature check
// would reject the token anyway.
type TokenBlacklist struct {
	db *gorm.DB
}

func NewTokenBlacklist(db *gorm.DB) *TokenBlacklist {
	return &TokenBlacklist{db: db}
}

// Revoke blacklists a token. Revoking an already-revoked token is a no-op.
func (b *TokenBlacklist) Revoke(token string, expiresAt time.Time) error {
	return b.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.RevokedToken{}).Where("token = ?", token).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		return tx.Create(&models.RevokedToken{
			Token:     token,
			RevokedAt: time.Now(),
			ExpiresAt: expiresAt,
		}).Error
	})
}

// IsRevoked reports whether the token has been blacklisted. Consulted on
// every authenticated request after signature and expiry pass.
func (b *TokenBlacklist) IsRevoked(token string) (bool, error) {
	var count int64
	err := b.db.Model(&models.RevokedToken{}).Where("token = ?", token).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// PurgeExpired deletes blacklist rows whose tokens have outlived their exp
// claim and returns the number removed.
func (b *TokenBlacklist) PurgeExpired() (int64, error) {
	result := b.db.Where("expires_at < ?", time.Now()).Delete(&models.RevokedToken{})
	return result.RowsAffected, result.Error
}

// StartSweeper schedules an hourly purge of expired blacklist entries.
func (b *TokenBlacklist) StartSweeper() *cron.Cron {
	c := cron.New()

	c.AddFunc("@hourly", func() {
		removed, err := b.PurgeExpired()
		if err != nil {
			log.Error().Err(err).Msg("token blacklist purge failed")
			return
		}
		if removed > 0 {
			log.Info().Int64("removed", removed).Msg("purged expired revoked tokens")
		}
	})

	c.Start()
	log.Info().Msg("token blacklist sweeper started")
	return c
}
