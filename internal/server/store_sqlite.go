package server

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
)

// Settings keys. The names carry over from the original web client's
// localStorage so an imported save file keeps working.
const (
	keyXP    = "wa_xp"
	keyLevel = "wa_lvl"
	keySound = "wa_sound"
)

// SQLiteSettings persists settings in a single key-value table.
type SQLiteSettings struct {
	db *sql.DB
}

func NewSQLiteSettings(db *sql.DB) *SQLiteSettings {
	return &SQLiteSettings{db: db}
}

func (s *SQLiteSettings) LoadStats(ctx context.Context) (int, int, error) {
	xp, err := s.getInt(ctx, keyXP, 0)
	if err != nil {
		return 0, 0, err
	}
	level, err := s.getInt(ctx, keyLevel, 1)
	if err != nil {
		return 0, 0, err
	}
	return xp, level, nil
}

func (s *SQLiteSettings) SaveStats(ctx context.Context, xp, level int) error {
	if err := s.set(ctx, keyXP, strconv.Itoa(xp)); err != nil {
		return err
	}
	return s.set(ctx, keyLevel, strconv.Itoa(level))
}

func (s *SQLiteSettings) SoundEnabled(ctx context.Context) (bool, error) {
	v, err := s.get(ctx, keySound)
	if errors.Is(err, ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return v != "false", nil
}

func (s *SQLiteSettings) SetSoundEnabled(ctx context.Context, enabled bool) error {
	return s.set(ctx, keySound, strconv.FormatBool(enabled))
}

func (s *SQLiteSettings) get(ctx context.Context, key string) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM settings WHERE key = ?
	`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return v, err
}

func (s *SQLiteSettings) getInt(ctx context.Context, key string, fallback int) (int, error) {
	v, err := s.get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return fallback, nil
	}
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, nil
	}
	return n, nil
}

func (s *SQLiteSettings) set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
