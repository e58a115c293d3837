package database

import (
	"context"

	"github.com/akyairhashvil/calpick/internal/models"
)

// SelectionRepository defines selection history operations.
type SelectionRepository interface {
	SaveSelection(ctx context.Context, s models.Selection) (int64, error)
	LatestSelection(ctx context.Context) (models.Selection, bool, error)
	ListSelections(ctx context.Context, limit int) ([]models.Selection, error)
	DeleteSelection(ctx context.Context, id int64) error
}

// SettingsRepository defines key-value settings operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	SelectionRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
