package game

import (
	"testing"
	"time"
)

func TestAwardXPExactThreshold(t *testing.T) {
	s := NewStats()

	gained := s.AwardXP(100)
	if gained != 1 {
		t.Errorf("levels gained = %d, want 1", gained)
	}
	if s.Level != 2 || s.XP != 0 {
		t.Errorf("got level %d xp %d, want level 2 xp 0", s.Level, s.XP)
	}
}

func TestAwardXPSingleLevelLargeAmount(t *testing.T) {
	// 250 XP from scratch: 100 consumed for level 2, the remaining 150
	// is below the new 200 threshold.
	s := NewStats()

	gained := s.AwardXP(250)
	if gained != 1 {
		t.Errorf("levels gained = %d, want 1", gained)
	}
	if s.Level != 2 || s.XP != 150 {
		t.Errorf("got level %d xp %d, want level 2 xp 150", s.Level, s.XP)
	}
}

func TestAwardXPMultiLevel(t *testing.T) {
	// 300 XP crosses level 1 (100) and level 2 (200) in one award.
	s := NewStats()

	gained := s.AwardXP(300)
	if gained != 2 {
		t.Errorf("levels gained = %d, want 2", gained)
	}
	if s.Level != 3 || s.XP != 0 {
		t.Errorf("got level %d xp %d, want level 3 xp 0", s.Level, s.XP)
	}
}

func TestAwardXPNoLevel(t *testing.T) {
	s := NewStats()

	if gained := s.AwardXP(99); gained != 0 {
		t.Errorf("levels gained = %d, want 0", gained)
	}
	if s.Level != 1 || s.XP != 99 {
		t.Errorf("got level %d xp %d, want level 1 xp 99", s.Level, s.XP)
	}
}

func TestBumpComboWithinWindow(t *testing.T) {
	s := NewStats()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	want := []int{1, 2, 3}
	for i, w := range want {
		at := base.Add(time.Duration(i) * 9 * time.Second)
		if got := s.BumpCombo(at); got != w {
			t.Errorf("guess %d: combo = %d, want %d", i+1, got, w)
		}
	}

	// An 11 s gap breaks the chain.
	late := base.Add(18*time.Second + 11*time.Second)
	if got := s.BumpCombo(late); got != 1 {
		t.Errorf("after 11s gap: combo = %d, want 1", got)
	}
}

func TestBumpComboFirstGuess(t *testing.T) {
	s := NewStats()
	if got := s.BumpCombo(time.Now()); got != 1 {
		t.Errorf("first guess combo = %d, want 1", got)
	}
}

func TestResetCombo(t *testing.T) {
	s := NewStats()
	base := time.Now()
	s.BumpCombo(base)
	s.BumpCombo(base.Add(time.Second))

	s.ResetCombo()
	if s.Combo != 1 {
		t.Errorf("combo after reset = %d, want 1", s.Combo)
	}
}
