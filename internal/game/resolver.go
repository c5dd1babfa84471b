package game

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/worldatlas/globequiz/internal/geo"
)

// Resolver classifies player input against a round. It holds only the
// immutable index; the mutable round state comes in with every call, so
// both entry points stay pure lookups.
type Resolver struct {
	index *geo.Index
}

func NewResolver(index *geo.Index) *Resolver {
	return &Resolver{index: index}
}

// TypeResult is the outcome of one keystroke. AutoMatch, when non-nil, is
// an exact match against a remaining pool member and must be applied as a
// correct guess immediately: typing the full name wins without an
// explicit submit. HighlightIDs are prefix candidates for visual feedback
// only.
type TypeResult struct {
	AutoMatch    *geo.CountryRecord
	HighlightIDs []string
}

// OnTextChange resolves live typing against the remaining pool: the alias
// table first, then exact equality with normalized display names. Prefix
// highlighting kicks in from two characters.
func (rv *Resolver) OnTextChange(raw string, snap Snapshot) TypeResult {
	text := geo.Normalize(raw)
	if text == "" {
		return TypeResult{}
	}

	found := make(map[string]struct{}, len(snap.FoundIDs))
	for _, id := range snap.FoundIDs {
		found[id] = struct{}{}
	}

	pool := rv.pool(snap)

	var res TypeResult
	if len([]rune(text)) >= 2 {
		for _, rec := range pool {
			if _, ok := found[rec.ID]; ok {
				continue
			}
			if strings.HasPrefix(geo.Normalize(rec.DisplayName), text) {
				res.HighlightIDs = append(res.HighlightIDs, rec.ID)
			}
		}
	}

	// Aliases and names resolve against the full catalogue; only a hit on
	// a remaining pool member counts as a live match.
	if id, err := rv.index.Resolve(text); err == nil {
		for _, rec := range pool {
			if rec.ID == id {
				if _, ok := found[rec.ID]; !ok {
					res.AutoMatch = rec
				}
				break
			}
		}
	}
	return res
}

// GuessOutcomeKind classifies an explicit submission.
type GuessOutcomeKind int

const (
	// ExactTargetMatch means the submission names the current target.
	ExactTargetMatch GuessOutcomeKind = iota
	// WrongCountryNamed means a real country that is not the target:
	// radar feedback applies.
	WrongCountryNamed
	// Unrecognized means the text resolved to no known country.
	Unrecognized
)

// GuessOutcome is the classified result of OnSubmit.
type GuessOutcome struct {
	Kind       GuessOutcomeKind
	Guessed    *geo.CountryRecord
	DistanceKm int
	Direction  geo.Compass
	// Suggestion is the closest display name when the text was
	// unrecognized but nearly matched something.
	Suggestion string
}

// OnSubmit resolves an explicit (Enter-key) submission. Unlike live
// typing it matches against the full catalogue, not just the pool: naming
// any real country yields distance and bearing toward the target, the
// radar mechanic that rewards geographic reasoning at a time cost.
// Callers gate on trimmed length > 2 and an existing target.
func (rv *Resolver) OnSubmit(raw string, snap Snapshot) GuessOutcome {
	if snap.Target == nil {
		return GuessOutcome{Kind: Unrecognized}
	}

	text := geo.Normalize(raw)
	id, err := rv.index.Resolve(text)
	if err != nil {
		return GuessOutcome{Kind: Unrecognized, Suggestion: rv.suggest(text)}
	}
	guessed, err := rv.index.ByID(id)
	if err != nil {
		return GuessOutcome{Kind: Unrecognized}
	}

	if guessed.ID == snap.Target.ID {
		return GuessOutcome{Kind: ExactTargetMatch, Guessed: guessed}
	}

	return GuessOutcome{
		Kind:       WrongCountryNamed,
		Guessed:    guessed,
		DistanceKm: geo.DistanceKm(guessed.Coords, snap.Target.Coords),
		Direction:  geo.BucketBearing(geo.Bearing(guessed.Coords, snap.Target.Coords)),
	}
}

// OnPolygonSelect reports whether a clicked polygon is the target.
func (rv *Resolver) OnPolygonSelect(record *geo.CountryRecord, snap Snapshot) bool {
	return snap.Target != nil && record.ID == snap.Target.ID
}

// suggest returns the display name closest to text by edit distance, when
// close enough to look like a typo.
func (rv *Resolver) suggest(text string) string {
	const maxDistance = 2
	best, bestDist := "", maxDistance+1
	for _, rec := range rv.index.All() {
		d := levenshtein.ComputeDistance(text, geo.Normalize(rec.DisplayName))
		if d < bestDist {
			best, bestDist = rec.DisplayName, d
		}
	}
	return best
}

func (rv *Resolver) pool(snap Snapshot) []*geo.CountryRecord {
	out := make([]*geo.CountryRecord, 0, len(snap.PoolIDs))
	for _, id := range snap.PoolIDs {
		if rec, err := rv.index.ByID(id); err == nil {
			out = append(out, rec)
		}
	}
	return out
}
