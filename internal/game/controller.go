// Package game implements the quiz engine: the round state machine, the
// scoring and combo arithmetic, and the resolver that classifies player
// input against the current round.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/worldatlas/globequiz/internal/geo"
)

// Status is the round lifecycle state. Menu, loading, and pause screens
// are presentation concerns layered on top of Idle.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusPlaying  Status = "playing"
	StatusFinished Status = "finished"
)

// Mode selects how the player identifies countries.
type Mode string

const (
	ModeType  Mode = "type"
	ModeClick Mode = "click"
)

// Penalty costs in seconds.
const (
	PenaltyWrongGuess = 5
	PenaltyHintSingle = 20
	PenaltyHintBoth   = 40
)

var (
	// ErrEmptyPool is returned by StartRound for a region with no data.
	ErrEmptyPool = errors.New("game: empty country pool")
	// ErrNotPlaying guards operations that require an active round.
	ErrNotPlaying = errors.New("game: no round in progress")
	// ErrAlreadyFound rejects a success for a country already on the board.
	ErrAlreadyFound = errors.New("game: country already found")
	// ErrNotInPool rejects a success for a country outside the round pool.
	ErrNotInPool = errors.New("game: country not in pool")
	// ErrNoTarget is returned by RevealHint when no target exists. With an
	// active round this is unreachable: the target is non-nil whenever
	// countries remain and the round is playing.
	ErrNoTarget = errors.New("game: no current target")
)

// HintKind selects what RevealHint uncovers about the target.
type HintKind string

const (
	HintCapital HintKind = "capital"
	HintFlag    HintKind = "flag"
	HintBoth    HintKind = "both"
)

// Hint is the revealed data plus the time penalty that paid for it.
type Hint struct {
	Capital        string
	FlagURL        string
	PenaltySeconds int
}

// SuccessResult reports what a correct guess was worth.
type SuccessResult struct {
	Combo        int
	XP           int
	LevelsGained int
	Finished     bool
}

// Snapshot is a read-only copy of the controller state for the HTTP
// surface. Target is nil when the round is won or no round is active.
type Snapshot struct {
	Status   Status
	Mode     Mode
	Region   string
	Score    int
	Total    int
	Elapsed  int
	PoolIDs  []string
	FoundIDs []string
	Target   *geo.CountryRecord
	Rings    []geo.Coords
	Stats    Stats
}

// Controller owns the round state machine and the player stats. Every
// operation is one transaction under the mutex, taking the state from one
// valid configuration to the next; the presenter is notified inside the
// transaction but never waited on. Timer ticks run on their own goroutine
// and are disarmed by status, not by trusting the scheduler: a tick that
// lands after the round finished is a no-op.
type Controller struct {
	mu        sync.Mutex
	logger    *slog.Logger
	presenter Presenter
	store     StatsStore

	now func() time.Time
	rng *rand.Rand

	stats  Stats
	status Status
	mode   Mode
	region string

	subset     []geo.CountryRecord
	foundIDs   map[string]struct{}
	foundOrder []string
	target     *geo.CountryRecord
	elapsed    int

	rings    ringBoard
	tickStop chan struct{}
}

// NewController builds a controller around the given sinks. stats is
// whatever the store loaded at startup; pass NewStats() for a fresh
// player.
func NewController(logger *slog.Logger, presenter Presenter, store StatsStore, stats Stats) *Controller {
	if stats.Level < 1 {
		stats = NewStats()
	}
	if stats.Combo < 1 {
		stats.Combo = 1
	}
	return &Controller{
		logger:    logger,
		presenter: presenter,
		store:     store,
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		stats:     stats,
		status:    StatusIdle,
	}
}

// StartRound begins a new round over the given pool, discarding any
// previous round state. The pool must be non-empty.
func (c *Controller) StartRound(pool []geo.CountryRecord, mode Mode, region string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(pool) == 0 {
		return ErrEmptyPool
	}

	c.stopTickerLocked()

	c.subset = pool
	c.foundIDs = make(map[string]struct{}, len(pool))
	c.foundOrder = nil
	c.elapsed = 0
	c.mode = mode
	c.region = region
	c.status = StatusPlaying
	c.stats.ResetCombo()
	c.rings.clear()
	c.target = c.pickTargetLocked()

	c.tickStop = make(chan struct{})
	go c.runTicker(c.tickStop)

	c.presenter.CameraFocus(geo.RegionCamera(region))
	if mode == ModeType {
		c.presenter.FloatingText("ÉCRIVEZ LE NOM !", colorPrimary)
	} else {
		c.presenter.FloatingText("CLIQUEZ SUR LE PAYS !", colorPrimary)
	}
	c.presenter.ScoreChanged(0, len(pool))

	c.logger.Info("round started", "region", region, "mode", string(mode), "pool", len(pool))
	return nil
}

// Tick advances the round clock by one second. Outside Playing it does
// nothing, which makes a stray tick delivered after the round ended safe.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != StatusPlaying {
		return
	}
	c.elapsed++
	c.rings.sweep(c.now())
}

// RecordSuccess applies a correct identification of record: adds it to
// the found set, advances combo and XP, re-picks the target, and finishes
// the round when the pool is exhausted.
func (c *Controller) RecordSuccess(ctx context.Context, record *geo.CountryRecord) (SuccessResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != StatusPlaying {
		return SuccessResult{}, ErrNotPlaying
	}
	if !c.inPoolLocked(record.ID) {
		return SuccessResult{}, ErrNotInPool
	}
	if _, found := c.foundIDs[record.ID]; found {
		return SuccessResult{}, ErrAlreadyFound
	}

	now := c.now()
	c.foundIDs[record.ID] = struct{}{}
	c.foundOrder = append(c.foundOrder, record.ID)

	combo := c.stats.BumpCombo(now)
	xp := xpPerGuess * combo

	c.presenter.Sound(SoundCorrect)
	c.rings.add(record.Coords, now)
	c.presenter.Ring(record.Coords)
	c.presenter.FloatingText(fmt.Sprintf("+%d XP", xp), colorText)

	gained := c.stats.AwardXP(xp)
	for i := 0; i < gained; i++ {
		c.presenter.Sound(SoundLevelUp)
		c.presenter.FloatingText("NIVEAU SUPÉRIEUR !", colorAccent)
		c.presenter.LevelUp(c.stats.Level - gained + i + 1)
	}
	c.persistStatsLocked(ctx)

	c.presenter.CameraFocus(geo.Camera{Lat: record.Coords.Lat, Lng: record.Coords.Lng, Altitude: 1.5})
	c.presenter.ScoreChanged(len(c.foundIDs), len(c.subset))

	res := SuccessResult{Combo: combo, XP: xp, LevelsGained: gained}

	if len(c.foundIDs) == len(c.subset) {
		c.target = nil
		c.status = StatusFinished
		c.stopTickerLocked()
		res.Finished = true
		c.presenter.RoundFinished(len(c.foundIDs), len(c.subset), c.elapsed)
		c.logger.Info("round finished", "region", c.region, "elapsed", c.elapsed)
	} else {
		c.target = c.pickTargetLocked()
	}

	return res, nil
}

// RecordFailure registers a wrong answer: the combo resets, nothing else
// changes.
func (c *Controller) RecordFailure() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != StatusPlaying {
		return ErrNotPlaying
	}
	c.stats.ResetCombo()
	c.presenter.Sound(SoundWrong)
	return nil
}

// ApplyPenalty adds seconds to the round clock.
func (c *Controller) ApplyPenalty(seconds int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applyPenaltyLocked(seconds)
}

func (c *Controller) applyPenaltyLocked(seconds int) error {
	if c.status != StatusPlaying {
		return ErrNotPlaying
	}
	c.elapsed += seconds
	c.presenter.FloatingText(fmt.Sprintf("+%ds", seconds), colorWarning)
	c.presenter.Sound(SoundPenalty)
	return nil
}

// ApplyRadarFeedback charges the radar cost for naming the wrong country
// and pushes the distance/bearing floating text toward the presenter.
func (c *Controller) ApplyRadarFeedback(guessed *geo.CountryRecord, distanceKm int, direction geo.Compass) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != StatusPlaying {
		return ErrNotPlaying
	}
	c.presenter.FloatingText(fmt.Sprintf("%s: %dkm %s", guessed.DisplayName, distanceKm, direction.Arrow()), colorRadar)
	c.presenter.Sound(SoundRadarPing)
	return c.applyPenaltyLocked(PenaltyWrongGuess)
}

// ApplyWrongClick handles a click on the wrong polygon: combo reset, a
// time penalty, and corrective feedback naming the clicked country.
func (c *Controller) ApplyWrongClick(clicked *geo.CountryRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != StatusPlaying {
		return ErrNotPlaying
	}
	c.stats.ResetCombo()
	c.presenter.Sound(SoundWrong)
	c.presenter.FloatingText(fmt.Sprintf("Non, c'est %s", clicked.DisplayName), colorDanger)
	return c.applyPenaltyLocked(PenaltyWrongGuess)
}

// RevealHint uncovers the target's capital, flag, or both, charging the
// corresponding time penalty. The target is non-nil for the whole playing
// phase, so ErrNoTarget only guards against state corruption.
func (c *Controller) RevealHint(kind HintKind) (Hint, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != StatusPlaying {
		return Hint{}, ErrNotPlaying
	}
	if c.target == nil {
		return Hint{}, ErrNoTarget
	}

	cost := PenaltyHintSingle
	if kind == HintBoth {
		cost = PenaltyHintBoth
	}
	if err := c.applyPenaltyLocked(cost); err != nil {
		return Hint{}, err
	}

	h := Hint{PenaltySeconds: cost}
	if kind == HintCapital || kind == HintBoth {
		h.Capital = c.target.Capital
	}
	if kind == HintFlag || kind == HintBoth {
		h.FlagURL = c.target.FlagURL
	}
	return h, nil
}

// ReturnToMenu abandons the current round from any state and resets to
// Idle.
func (c *Controller) ReturnToMenu() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTickerLocked()
	c.status = StatusIdle
	c.subset = nil
	c.foundIDs = nil
	c.foundOrder = nil
	c.target = nil
	c.elapsed = 0
	c.rings.clear()
	c.presenter.CameraFocus(geo.RegionCamera("World"))
}

// Close stops the tick goroutine. The controller is unusable afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTickerLocked()
}

// Snapshot returns a copy of the current state for reads.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	found := make([]string, len(c.foundOrder))
	copy(found, c.foundOrder)
	pool := make([]string, len(c.subset))
	for i := range c.subset {
		pool[i] = c.subset[i].ID
	}

	return Snapshot{
		Status:   c.status,
		Mode:     c.mode,
		Region:   c.region,
		Score:    len(c.foundIDs),
		Total:    len(c.subset),
		Elapsed:  c.elapsed,
		PoolIDs:  pool,
		FoundIDs: found,
		Target:   c.target,
		Rings:    c.rings.active(c.now()),
		Stats:    c.stats,
	}
}

// Stats returns the current player progression.
func (c *Controller) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// pickTargetLocked draws uniformly among pool members not yet found,
// returning nil only when none remain.
func (c *Controller) pickTargetLocked() *geo.CountryRecord {
	var remaining []*geo.CountryRecord
	for i := range c.subset {
		if _, found := c.foundIDs[c.subset[i].ID]; !found {
			remaining = append(remaining, &c.subset[i])
		}
	}
	if len(remaining) == 0 {
		return nil
	}
	return remaining[c.rng.Intn(len(remaining))]
}

func (c *Controller) inPoolLocked(id string) bool {
	for i := range c.subset {
		if c.subset[i].ID == id {
			return true
		}
	}
	return false
}

func (c *Controller) persistStatsLocked(ctx context.Context) {
	if c.store == nil {
		return
	}
	if err := c.store.SaveStats(ctx, c.stats.XP, c.stats.Level); err != nil {
		c.logger.Error("persisting stats failed", "error", err)
	}
}

func (c *Controller) stopTickerLocked() {
	if c.tickStop != nil {
		close(c.tickStop)
		c.tickStop = nil
	}
}

func (c *Controller) runTicker(stop chan struct{}) {
	t := time.NewTicker(time.Second)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			c.Tick()
		}
	}
}

// Floating text colors, matching the web client palette.
const (
	colorPrimary = "#4cc9f0"
	colorAccent  = "#f72585"
	colorWarning = "#f48c06"
	colorText    = "#ffffff"
	colorDanger  = "#ef4444"
	colorRadar   = "#fbbf24"
)
