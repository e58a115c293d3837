package tui

import (
	"context"

	"github.com/akyairhashvil/calpick/internal/database"
	"github.com/akyairhashvil/calpick/internal/models"
)

//go:generate mockgen -source=database.go -destination=mock_db_test.go -package=tui

// Database defines the persistence methods the TUI requires.
type Database interface {
	SaveSelection(ctx context.Context, s models.Selection) (int64, error)
	LatestSelection(ctx context.Context) (models.Selection, bool, error)
	SetSetting(ctx context.Context, key, value string) error
}

var _ Database = (*database.Database)(nil)
