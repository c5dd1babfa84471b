package server

import (
	"net/http"

	"github.com/worldatlas/globequiz/internal/game"
	"github.com/worldatlas/globequiz/internal/geo"
)

// StatsInfo is the player progression surfaced to the client.
type StatsInfo struct {
	XP    int `json:"xp"`
	Level int `json:"level"`
	Combo int `json:"combo"`
}

// SessionResponse is returned when a session is created.
type SessionResponse struct {
	ID        string    `json:"id"`
	Stats     StatsInfo `json:"stats"`
	Countries int       `json:"countries"`
	Sound     bool      `json:"soundEnabled"`
}

func handleCreateSession(sessions *Registry, settings SettingsStore, index *geo.Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := sessions.Create(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		sound, err := settings.SoundEnabled(r.Context())
		if err != nil {
			sound = true
		}

		writeJSON(w, http.StatusOK, SessionResponse{
			ID:        s.ID,
			Stats:     statsInfo(s.Controller.Stats()),
			Countries: index.Len(),
			Sound:     sound,
		})
	}
}

func statsInfo(s game.Stats) StatsInfo {
	return StatsInfo{XP: s.XP, Level: s.Level, Combo: s.Combo}
}
