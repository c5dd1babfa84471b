package server

import (
	"errors"
	"net/http"

	"github.com/worldatlas/globequiz/internal/game"
	"github.com/worldatlas/globequiz/internal/geo"
)

type StartRequest struct {
	Region string `json:"region"`
	Mode   string `json:"mode"`
}

type StartResponse struct {
	Total  int    `json:"total"`
	Region string `json:"region"`
	Mode   string `json:"mode"`
}

// TargetInfo is the current target as shown in click mode, where the
// prompt names the country to find.
type TargetInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	FlagURL     string `json:"flag"`
}

// StateResponse is a full snapshot of the round for the client.
type StateResponse struct {
	Status   string       `json:"status"`
	Mode     string       `json:"mode"`
	Region   string       `json:"region"`
	Score    int          `json:"score"`
	Total    int          `json:"total"`
	Timer    int          `json:"timer"`
	FoundIDs []string     `json:"foundIds"`
	Rings    []geo.Coords `json:"rings"`
	Target   *TargetInfo  `json:"target,omitempty"`
	Stats    StatsInfo    `json:"stats"`
}

func handleStartRound(index *geo.Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		mode := game.Mode(req.Mode)
		if mode != game.ModeType && mode != game.ModeClick {
			mode = game.ModeType
		}

		s := sessionFrom(r)
		pool := PoolFor(index, req.Region)

		if err := s.Controller.StartRound(pool, mode, req.Region); err != nil {
			if errors.Is(err, game.ErrEmptyPool) {
				writeError(w, http.StatusUnprocessableEntity, "no countries in this region")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, StartResponse{Total: len(pool), Region: req.Region, Mode: string(mode)})
	}
}

func handleState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(r)
		writeJSON(w, http.StatusOK, stateResponse(s.Controller.Snapshot()))
	}
}

func handleReturnToMenu() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(r)
		s.Controller.ReturnToMenu()
		writeJSON(w, http.StatusOK, stateResponse(s.Controller.Snapshot()))
	}
}

func stateResponse(snap game.Snapshot) StateResponse {
	resp := StateResponse{
		Status:   string(snap.Status),
		Mode:     string(snap.Mode),
		Region:   snap.Region,
		Score:    snap.Score,
		Total:    snap.Total,
		Timer:    snap.Elapsed,
		FoundIDs: snap.FoundIDs,
		Rings:    snap.Rings,
		Stats:    statsInfo(snap.Stats),
	}
	// The target stays hidden in type mode: knowing it is the game.
	if snap.Mode == game.ModeClick && snap.Target != nil {
		resp.Target = &TargetInfo{
			ID:          snap.Target.ID,
			DisplayName: snap.Target.DisplayName,
			FlagURL:     snap.Target.FlagURL,
		}
	}
	return resp
}
