package server

import (
	"errors"
	"net/http"

	"github.com/worldatlas/globequiz/internal/game"
)

type HintRequest struct {
	Kind string `json:"kind"` // capital, flag, both
}

type HintResponse struct {
	Capital string `json:"capital,omitempty"`
	FlagURL string `json:"flag,omitempty"`
	Penalty int    `json:"penalty"`
}

func handleHint() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HintRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		kind := game.HintKind(req.Kind)
		switch kind {
		case game.HintCapital, game.HintFlag, game.HintBoth:
		default:
			writeError(w, http.StatusBadRequest, "unknown hint kind")
			return
		}

		s := sessionFrom(r)
		hint, err := s.Controller.RevealHint(kind)
		if err != nil {
			if errors.Is(err, game.ErrNotPlaying) || errors.Is(err, game.ErrNoTarget) {
				writeError(w, http.StatusConflict, "no round in progress")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, HintResponse{
			Capital: hint.Capital,
			FlagURL: hint.FlagURL,
			Penalty: hint.PenaltySeconds,
		})
	}
}
