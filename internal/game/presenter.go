package game

import "github.com/worldatlas/globequiz/internal/geo"

// SoundKind names the audio cues the presentation layer can play.
type SoundKind string

const (
	SoundCorrect   SoundKind = "correct"
	SoundWrong     SoundKind = "wrong"
	SoundPenalty   SoundKind = "penalty"
	SoundLevelUp   SoundKind = "level_up"
	SoundRadarPing SoundKind = "radar_ping"
)

// Presenter receives fire-and-forget notifications of every state
// transition so it can drive the globe camera, highlights, audio, and
// floating text. The controller never waits on these calls; a slow or
// animating presentation layer must not delay the next guess.
type Presenter interface {
	CameraFocus(cam geo.Camera)
	Ring(at geo.Coords)
	Highlight(ids []string)
	Sound(kind SoundKind)
	FloatingText(text, color string)
	ScoreChanged(score, total int)
	LevelUp(level int)
	RoundFinished(score, total, elapsedSeconds int)
}

// NopPresenter discards every notification.
type NopPresenter struct{}

func (NopPresenter) CameraFocus(geo.Camera)      {}
func (NopPresenter) Ring(geo.Coords)             {}
func (NopPresenter) Highlight([]string)          {}
func (NopPresenter) Sound(SoundKind)             {}
func (NopPresenter) FloatingText(string, string) {}
func (NopPresenter) ScoreChanged(int, int)       {}
func (NopPresenter) LevelUp(int)                 {}
func (NopPresenter) RoundFinished(int, int, int) {}
