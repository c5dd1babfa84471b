package server

import "net/http"

type SoundRequest struct {
	Enabled bool `json:"enabled"`
}

type SoundResponse struct {
	Enabled bool `json:"enabled"`
}

func handleGetSound(settings SettingsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		enabled, err := settings.SoundEnabled(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, SoundResponse{Enabled: enabled})
	}
}

func handleSetSound(settings SettingsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SoundRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := settings.SetSoundEnabled(r.Context(), req.Enabled); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, SoundResponse{Enabled: req.Enabled})
	}
}
