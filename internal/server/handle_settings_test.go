package server

import (
	"net/http"
	"testing"
)

func TestSoundSetting(t *testing.T) {
	r := testRouter(t)

	var resp SoundResponse
	doJSON(t, r, http.MethodGet, "/api/settings/sound", nil, &resp)
	if !resp.Enabled {
		t.Error("expected sound enabled by default")
	}

	doJSON(t, r, http.MethodPut, "/api/settings/sound", SoundRequest{Enabled: false}, &resp)
	if resp.Enabled {
		t.Error("expected the update to be echoed back")
	}

	resp = SoundResponse{Enabled: true}
	doJSON(t, r, http.MethodGet, "/api/settings/sound", nil, &resp)
	if resp.Enabled {
		t.Error("expected sound disabled after update")
	}

	w := doJSON(t, r, http.MethodPut, "/api/settings/sound", "not an object", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a malformed body, got %d", w.Code)
	}
}
