package server

import (
	"github.com/worldatlas/globequiz/internal/game"
	"github.com/worldatlas/globequiz/internal/geo"
)

// ssePresenter adapts the game controller's presentation notifications to
// broker events for one session. Publishing never blocks the controller:
// the broker drops events for slow subscribers.
type ssePresenter struct {
	broker    *Broker
	sessionID string
}

func newSSEPresenter(broker *Broker, sessionID string) *ssePresenter {
	return &ssePresenter{broker: broker, sessionID: sessionID}
}

func (p *ssePresenter) CameraFocus(cam geo.Camera) {
	p.broker.Publish(p.sessionID, SSEEvent{Type: "camera", Lat: cam.Lat, Lng: cam.Lng, Altitude: cam.Altitude})
}

func (p *ssePresenter) Ring(at geo.Coords) {
	p.broker.Publish(p.sessionID, SSEEvent{Type: "ring", Lat: at.Lat, Lng: at.Lng})
}

func (p *ssePresenter) Highlight(ids []string) {
	p.broker.Publish(p.sessionID, SSEEvent{Type: "highlight", IDs: ids})
}

func (p *ssePresenter) Sound(kind game.SoundKind) {
	p.broker.Publish(p.sessionID, SSEEvent{Type: "sound", Sound: string(kind)})
}

func (p *ssePresenter) FloatingText(text, color string) {
	p.broker.Publish(p.sessionID, SSEEvent{Type: "floating_text", Text: text, Color: color})
}

func (p *ssePresenter) ScoreChanged(score, total int) {
	p.broker.Publish(p.sessionID, SSEEvent{Type: "score", Score: score, Total: total})
}

func (p *ssePresenter) LevelUp(level int) {
	p.broker.Publish(p.sessionID, SSEEvent{Type: "level_up", Level: level})
}

func (p *ssePresenter) RoundFinished(score, total, elapsedSeconds int) {
	p.broker.Publish(p.sessionID, SSEEvent{Type: "round_finished", Score: score, Total: total, Elapsed: elapsedSeconds})
}
