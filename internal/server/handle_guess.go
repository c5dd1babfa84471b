package server

import (
	"net/http"
	"strings"

	"github.com/worldatlas/globequiz/internal/game"
	"github.com/worldatlas/globequiz/internal/geo"
)

type InputRequest struct {
	Text string `json:"text"`
}

// InputResponse reports the live-typing outcome. When Matched is set the
// guess was already applied; the client clears the input box.
type InputResponse struct {
	Matched      bool     `json:"matched"`
	MatchedID    string   `json:"matchedId,omitempty"`
	Combo        int      `json:"combo,omitempty"`
	XP           int      `json:"xp,omitempty"`
	LevelsGained int      `json:"levelsGained,omitempty"`
	Finished     bool     `json:"finished"`
	Highlights   []string `json:"highlights,omitempty"`
}

// handleInput is the per-keystroke path: exact matches apply immediately
// without an explicit submit, prefix candidates come back for visual
// highlighting only.
func handleInput(resolver *game.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req InputRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		s := sessionFrom(r)
		snap := s.Controller.Snapshot()
		if snap.Status != game.StatusPlaying {
			writeError(w, http.StatusConflict, "no round in progress")
			return
		}

		tr := resolver.OnTextChange(req.Text, snap)
		resp := InputResponse{Highlights: tr.HighlightIDs}

		if tr.AutoMatch != nil {
			res, err := s.Controller.RecordSuccess(r.Context(), tr.AutoMatch)
			if err != nil {
				writeError(w, http.StatusConflict, "guess rejected")
				return
			}
			resp.Matched = true
			resp.MatchedID = tr.AutoMatch.ID
			resp.Combo = res.Combo
			resp.XP = res.XP
			resp.LevelsGained = res.LevelsGained
			resp.Finished = res.Finished
			resp.Highlights = nil
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

type SubmitRequest struct {
	Text string `json:"text"`
}

// SubmitResponse reports an explicit (radar) submission.
type SubmitResponse struct {
	Outcome    string `json:"outcome"` // target_hit, wrong_country, unrecognized
	Guessed    string `json:"guessed,omitempty"`
	DistanceKm int    `json:"distanceKm,omitempty"`
	Direction  string `json:"direction,omitempty"`
	Arrow      string `json:"arrow,omitempty"`
	Penalty    int    `json:"penalty,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
	Combo      int    `json:"combo,omitempty"`
	XP         int    `json:"xp,omitempty"`
	Finished   bool   `json:"finished,omitempty"`
}

// handleSubmit is the Enter-key path: naming any real country yields
// distance and bearing toward the target at a five second cost.
func handleSubmit(resolver *game.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if len(strings.TrimSpace(req.Text)) <= 2 {
			writeError(w, http.StatusBadRequest, "guess too short")
			return
		}

		s := sessionFrom(r)
		snap := s.Controller.Snapshot()
		if snap.Status != game.StatusPlaying || snap.Target == nil {
			writeError(w, http.StatusConflict, "no round in progress")
			return
		}

		outcome := resolver.OnSubmit(req.Text, snap)
		switch outcome.Kind {
		case game.ExactTargetMatch:
			res, err := s.Controller.RecordSuccess(r.Context(), outcome.Guessed)
			if err != nil {
				writeError(w, http.StatusConflict, "guess rejected")
				return
			}
			writeJSON(w, http.StatusOK, SubmitResponse{
				Outcome:  "target_hit",
				Guessed:  outcome.Guessed.DisplayName,
				Combo:    res.Combo,
				XP:       res.XP,
				Finished: res.Finished,
			})

		case game.WrongCountryNamed:
			if err := s.Controller.ApplyRadarFeedback(outcome.Guessed, outcome.DistanceKm, outcome.Direction); err != nil {
				writeError(w, http.StatusConflict, "no round in progress")
				return
			}
			writeJSON(w, http.StatusOK, SubmitResponse{
				Outcome:    "wrong_country",
				Guessed:    outcome.Guessed.DisplayName,
				DistanceKm: outcome.DistanceKm,
				Direction:  outcome.Direction.String(),
				Arrow:      outcome.Direction.Arrow(),
				Penalty:    game.PenaltyWrongGuess,
			})

		default:
			writeJSON(w, http.StatusOK, SubmitResponse{
				Outcome:    "unrecognized",
				Suggestion: outcome.Suggestion,
			})
		}
	}
}

type ClickRequest struct {
	CountryID string `json:"countryId"`
}

type ClickResponse struct {
	Hit      bool `json:"hit"`
	Combo    int  `json:"combo,omitempty"`
	XP       int  `json:"xp,omitempty"`
	Penalty  int  `json:"penalty,omitempty"`
	Finished bool `json:"finished,omitempty"`
}

// handleClick is the click-mode path: the clicked polygon either is the
// target or costs time.
func handleClick(resolver *game.Resolver, index *geo.Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClickRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		record, err := index.ByID(req.CountryID)
		if err != nil {
			writeError(w, http.StatusNotFound, "unknown country")
			return
		}

		s := sessionFrom(r)
		snap := s.Controller.Snapshot()
		if snap.Status != game.StatusPlaying {
			writeError(w, http.StatusConflict, "no round in progress")
			return
		}

		if resolver.OnPolygonSelect(record, snap) {
			res, err := s.Controller.RecordSuccess(r.Context(), record)
			if err != nil {
				writeError(w, http.StatusConflict, "guess rejected")
				return
			}
			writeJSON(w, http.StatusOK, ClickResponse{
				Hit:      true,
				Combo:    res.Combo,
				XP:       res.XP,
				Finished: res.Finished,
			})
			return
		}

		if err := s.Controller.ApplyWrongClick(record); err != nil {
			writeError(w, http.StatusConflict, "no round in progress")
			return
		}
		writeJSON(w, http.StatusOK, ClickResponse{Hit: false, Penalty: game.PenaltyWrongGuess})
	}
}
