package game

import (
	"context"
	"time"
)

const (
	// comboWindow is the maximum gap between correct guesses that keeps
	// the combo multiplier growing.
	comboWindow = 10 * time.Second

	// xpPerGuess is the base XP for one correct guess, multiplied by the
	// current combo.
	xpPerGuess = 10
)

// Stats is the persistent player progression. XP stays below the current
// level threshold (level*100); crossing it consumes the threshold and
// raises the level. Combo and the last-guess time are per-process state
// and never persisted.
type Stats struct {
	XP        int
	Level     int
	Combo     int
	LastGuess time.Time
}

// NewStats returns the progression of a fresh player.
func NewStats() Stats {
	return Stats{Level: 1, Combo: 1}
}

// StatsStore persists XP and level. Save is called after every award.
type StatsStore interface {
	LoadStats(ctx context.Context) (xp, level int, err error)
	SaveStats(ctx context.Context, xp, level int) error
}

// AwardXP adds XP to the stats and performs all pending level-ups. Each
// level threshold is level*100, recomputed after every increment, so one
// large award can raise several levels. Returns the number of levels
// gained.
func (s *Stats) AwardXP(amount int) int {
	s.XP += amount
	gained := 0
	for s.XP >= s.Level*100 {
		s.XP -= s.Level * 100
		s.Level++
		gained++
	}
	return gained
}

// BumpCombo applies the combo transition for a correct guess at the given
// time: the multiplier grows when the previous correct guess was inside
// the combo window and resets to 1 otherwise. Returns the combo that
// applies to this guess.
func (s *Stats) BumpCombo(now time.Time) int {
	if !s.LastGuess.IsZero() && now.Sub(s.LastGuess) < comboWindow {
		s.Combo++
	} else {
		s.Combo = 1
	}
	s.LastGuess = now
	return s.Combo
}

// ResetCombo drops the multiplier back to 1, used on any failure and at
// round start.
func (s *Stats) ResetCombo() {
	s.Combo = 1
}
