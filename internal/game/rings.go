package game

import (
	"time"

	"github.com/worldatlas/globequiz/internal/geo"
)

// ringTTL is how long a success ring stays visible on the globe.
const ringTTL = 2 * time.Second

type ring struct {
	at      geo.Coords
	expires time.Time
}

// ringBoard owns the active success rings. Rings are appended by
// RecordSuccess and evicted once expired; eviction happens on every tick
// and on every read, so no per-ring timer is needed.
type ringBoard struct {
	rings []ring
}

func (b *ringBoard) add(at geo.Coords, now time.Time) {
	b.rings = append(b.rings, ring{at: at, expires: now.Add(ringTTL)})
}

func (b *ringBoard) sweep(now time.Time) {
	live := b.rings[:0]
	for _, r := range b.rings {
		if now.Before(r.expires) {
			live = append(live, r)
		}
	}
	b.rings = live
}

func (b *ringBoard) active(now time.Time) []geo.Coords {
	b.sweep(now)
	out := make([]geo.Coords, len(b.rings))
	for i, r := range b.rings {
		out[i] = r.at
	}
	return out
}

func (b *ringBoard) clear() {
	b.rings = nil
}
