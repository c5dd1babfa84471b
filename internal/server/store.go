package server

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// SettingsStore is the key-value persistence behind the game: two plain
// counters for player progression plus the sound toggle. Missing keys
// fall back to their defaults (xp 0, level 1, sound on).
type SettingsStore interface {
	LoadStats(ctx context.Context) (xp, level int, err error)
	SaveStats(ctx context.Context, xp, level int) error
	SoundEnabled(ctx context.Context) (bool, error)
	SetSoundEnabled(ctx context.Context, enabled bool) error
}
