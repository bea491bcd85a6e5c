package repository

import (
	"context"

	"github.com/alexanderramin/liftlog/internal/domain"
)

//go:generate mockgen -source=$GOFILE -destination=../service/state_repo_mock_test.go -package=service_test

// StateRepo persists the complete AppState as one unit.
//
// Load returns a fresh state when nothing has been saved yet, and an error
// wrapping domain.ErrCorruptData when the stored data cannot be read back.
// Save overwrites whatever was stored.
type StateRepo interface {
	Load(ctx context.Context) (domain.AppState, error)
	Save(ctx context.Context, state domain.AppState) error
	// Backup copies the stored data to a sibling location named with
	// suffix and returns that location, or "" if there was nothing to copy.
	Backup(ctx context.Context, suffix string) (string, error)
	// Location describes where the data lives, for messages.
	Location() string
}
