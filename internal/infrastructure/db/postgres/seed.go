package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kreker0001/TimeJobs/internal/core/domain"
)

// SeedConfig describes the default moderator account created at first start
// so freshly deployed instances have a working moderation queue.
type SeedConfig struct {
	ModeratorName     string
	ModeratorEmail    string
	ModeratorPassword string
}

// SeedModerator creates the default moderator unless an account with that
// email already exists.
func SeedModerator(ctx context.Context, db *gorm.DB, cfg SeedConfig) error {
	var existing userModel
	err := db.WithContext(ctx).Where("email = ?", cfg.ModeratorEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("seed moderator lookup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.ModeratorPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed moderator hash: %w", err)
	}

	now := time.Now().UTC()
	m := userModel{
		Name:         cfg.ModeratorName,
		Email:        cfg.ModeratorEmail,
		PasswordHash: string(hash),
		Role:         string(domain.RoleModerator),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.WithContext(ctx).Create(&m).Error; err != nil {
		// a concurrent replica may have won the insert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("seed moderator insert: %w", err)
	}
	return nil
}
