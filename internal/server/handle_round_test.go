package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/worldatlas/globequiz/internal/database"
	"github.com/worldatlas/globequiz/internal/game"
	"github.com/worldatlas/globequiz/internal/geo"
	"github.com/worldatlas/globequiz/internal/migrations"
)

func testCatalogue() []geo.CountryRecord {
	return []geo.CountryRecord{
		{ID: "FRA", Name: "France", DisplayName: "France", Region: geo.RegionEurope,
			Capital: "Paris", Coords: geo.Coords{Lat: 46.2, Lng: 2.2}, FlagURL: "https://flags.test/fra.svg"},
		{ID: "DEU", Name: "Germany", DisplayName: "Allemagne", Region: geo.RegionEurope,
			Capital: "Berlin", Coords: geo.Coords{Lat: 51.2, Lng: 10.4}, FlagURL: "https://flags.test/deu.svg"},
		{ID: "ESP", Name: "Spain", DisplayName: "Espagne", Region: geo.RegionEurope,
			Capital: "Madrid", Coords: geo.Coords{Lat: 40.5, Lng: -3.7}, FlagURL: "https://flags.test/esp.svg"},
		{ID: "AUS", Name: "Australia", DisplayName: "Australie", Region: geo.RegionOceania,
			Capital: "Canberra", Coords: geo.Coords{Lat: -25.3, Lng: 133.8}, FlagURL: "https://flags.test/aus.svg"},
	}
}

func testRouter(t *testing.T) *chi.Mux {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := migrations.Run(db); err != nil {
		t.Fatalf("migrations: %v", err)
	}

	index, err := geo.BuildIndex(testCatalogue(), geo.DefaultAliases())
	if err != nil {
		t.Fatalf("build index: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	settings := NewSQLiteSettings(db)
	broker := NewBroker()
	sessions := NewRegistry(logger, broker, settings, time.Hour)
	t.Cleanup(sessions.Close)

	r := chi.NewRouter()
	addRoutes(r, logger, db, settings, index, sessions, broker, "")
	return r
}

func doJSON(t *testing.T, r *chi.Mux, method, path string, body, out any) *httptest.ResponseRecorder {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if out != nil && w.Code == http.StatusOK {
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decoding response: %v", method, path, err)
		}
	}
	return w
}

func createSession(t *testing.T, r *chi.Mux) SessionResponse {
	t.Helper()
	var resp SessionResponse
	w := doJSON(t, r, http.MethodPost, "/api/sessions", nil, &resp)
	if w.Code != http.StatusOK {
		t.Fatalf("create session: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	return resp
}

func TestCreateSession(t *testing.T) {
	r := testRouter(t)

	resp := createSession(t, r)
	if resp.ID == "" {
		t.Fatal("expected a session id")
	}
	if resp.Stats.Level != 1 || resp.Stats.XP != 0 {
		t.Errorf("fresh stats: expected level 1 xp 0, got %+v", resp.Stats)
	}
	if resp.Countries != 4 {
		t.Errorf("expected 4 countries in catalogue, got %d", resp.Countries)
	}
	if !resp.Sound {
		t.Error("expected sound enabled by default")
	}
}

func TestUnknownSession(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/sessions/nope/state", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown session, got %d", w.Code)
	}
}

func TestStartRoundEmptyRegion(t *testing.T) {
	r := testRouter(t)
	sess := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/sessions/"+sess.ID+"/start",
		StartRequest{Region: "Antarctic", Mode: "type"}, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for empty region, got %d: %s", w.Code, w.Body.String())
	}
}

func TestTypeModeFlow(t *testing.T) {
	r := testRouter(t)
	sess := createSession(t, r)
	base := "/api/sessions/" + sess.ID

	var start StartResponse
	w := doJSON(t, r, http.MethodPost, base+"/start", StartRequest{Region: "Europe", Mode: "type"}, &start)
	if w.Code != http.StatusOK {
		t.Fatalf("start: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if start.Total != 3 {
		t.Fatalf("start: expected 3 countries, got %d", start.Total)
	}

	// Partial input highlights candidates without matching.
	var input InputResponse
	doJSON(t, r, http.MethodPost, base+"/input", InputRequest{Text: "fr"}, &input)
	if input.Matched {
		t.Error("partial input: expected no match")
	}
	if len(input.Highlights) != 1 || input.Highlights[0] != "FRA" {
		t.Errorf("partial input: expected highlight FRA, got %v", input.Highlights)
	}

	// Full name applies immediately.
	input = InputResponse{}
	doJSON(t, r, http.MethodPost, base+"/input", InputRequest{Text: "france"}, &input)
	if !input.Matched || input.MatchedID != "FRA" {
		t.Fatalf("full input: expected FRA match, got %+v", input)
	}
	if input.Combo != 1 {
		t.Errorf("first guess: expected combo 1, got %d", input.Combo)
	}
	if input.Finished {
		t.Error("first guess: round should not be finished")
	}

	var state StateResponse
	doJSON(t, r, http.MethodGet, base+"/state", nil, &state)
	if state.Status != "playing" || state.Score != 1 {
		t.Errorf("state: expected playing score 1, got %s score %d", state.Status, state.Score)
	}
	if len(state.FoundIDs) != 1 || state.FoundIDs[0] != "FRA" {
		t.Errorf("state: expected found [FRA], got %v", state.FoundIDs)
	}
	if state.Target != nil {
		t.Error("state: target must stay hidden in type mode")
	}

	// Typing a found country again does nothing.
	input = InputResponse{}
	doJSON(t, r, http.MethodPost, base+"/input", InputRequest{Text: "france"}, &input)
	if input.Matched {
		t.Error("repeat input: expected no match for an already found country")
	}

	// Menu discards the round.
	doJSON(t, r, http.MethodPost, base+"/menu", nil, &state)
	if state.Status != "idle" {
		t.Errorf("menu: expected idle, got %s", state.Status)
	}

	// Input with no round running is rejected.
	w = doJSON(t, r, http.MethodPost, base+"/input", InputRequest{Text: "spain"}, nil)
	if w.Code != http.StatusConflict {
		t.Errorf("input after menu: expected 409, got %d", w.Code)
	}
}

func TestSubmitRadar(t *testing.T) {
	r := testRouter(t)
	sess := createSession(t, r)
	base := "/api/sessions/" + sess.ID

	// Single-country pool makes the target deterministic.
	doJSON(t, r, http.MethodPost, base+"/start", StartRequest{Region: "Oceania", Mode: "type"}, nil)

	w := doJSON(t, r, http.MethodPost, base+"/submit", SubmitRequest{Text: "zz"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("short guess: expected 400, got %d", w.Code)
	}

	var sub SubmitResponse
	doJSON(t, r, http.MethodPost, base+"/submit", SubmitRequest{Text: "france"}, &sub)
	if sub.Outcome != "wrong_country" {
		t.Fatalf("expected wrong_country, got %+v", sub)
	}
	if sub.Guessed != "France" {
		t.Errorf("expected guessed France, got %q", sub.Guessed)
	}
	if sub.DistanceKm <= 0 {
		t.Errorf("expected a positive distance, got %d", sub.DistanceKm)
	}
	if sub.Direction == "" || sub.Arrow == "" {
		t.Errorf("expected direction and arrow, got %q %q", sub.Direction, sub.Arrow)
	}
	if sub.Penalty != game.PenaltyWrongGuess {
		t.Errorf("expected penalty %d, got %d", game.PenaltyWrongGuess, sub.Penalty)
	}

	sub = SubmitResponse{}
	doJSON(t, r, http.MethodPost, base+"/submit", SubmitRequest{Text: "qqqqqqqq"}, &sub)
	if sub.Outcome != "unrecognized" {
		t.Errorf("expected unrecognized, got %+v", sub)
	}

	sub = SubmitResponse{}
	doJSON(t, r, http.MethodPost, base+"/submit", SubmitRequest{Text: "australie"}, &sub)
	if sub.Outcome != "target_hit" {
		t.Fatalf("expected target_hit, got %+v", sub)
	}
	if !sub.Finished {
		t.Error("expected the round to finish on the last country")
	}

	var state StateResponse
	doJSON(t, r, http.MethodGet, base+"/state", nil, &state)
	if state.Status != "finished" {
		t.Errorf("expected finished, got %s", state.Status)
	}
}

func TestClickMode(t *testing.T) {
	r := testRouter(t)
	sess := createSession(t, r)
	base := "/api/sessions/" + sess.ID

	doJSON(t, r, http.MethodPost, base+"/start", StartRequest{Region: "Europe", Mode: "click"}, nil)

	var state StateResponse
	doJSON(t, r, http.MethodGet, base+"/state", nil, &state)
	if state.Target == nil {
		t.Fatal("click mode: expected a visible target")
	}

	// Any other pool country is a wrong click.
	wrongID := "FRA"
	if state.Target.ID == "FRA" {
		wrongID = "DEU"
	}
	var click ClickResponse
	doJSON(t, r, http.MethodPost, base+"/click", ClickRequest{CountryID: wrongID}, &click)
	if click.Hit {
		t.Error("wrong click: expected a miss")
	}
	if click.Penalty != game.PenaltyWrongGuess {
		t.Errorf("wrong click: expected penalty %d, got %d", game.PenaltyWrongGuess, click.Penalty)
	}

	click = ClickResponse{}
	doJSON(t, r, http.MethodPost, base+"/click", ClickRequest{CountryID: state.Target.ID}, &click)
	if !click.Hit {
		t.Fatal("target click: expected a hit")
	}

	w := doJSON(t, r, http.MethodPost, base+"/click", ClickRequest{CountryID: "XYZ"}, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown country: expected 404, got %d", w.Code)
	}
}

func TestHint(t *testing.T) {
	r := testRouter(t)
	sess := createSession(t, r)
	base := "/api/sessions/" + sess.ID

	doJSON(t, r, http.MethodPost, base+"/start", StartRequest{Region: "Oceania", Mode: "type"}, nil)

	var hint HintResponse
	doJSON(t, r, http.MethodPost, base+"/hint", HintRequest{Kind: "capital"}, &hint)
	if hint.Capital != "Canberra" {
		t.Errorf("capital hint: expected Canberra, got %q", hint.Capital)
	}
	if hint.FlagURL != "" {
		t.Errorf("capital hint: expected no flag, got %q", hint.FlagURL)
	}
	if hint.Penalty != game.PenaltyHintSingle {
		t.Errorf("capital hint: expected penalty %d, got %d", game.PenaltyHintSingle, hint.Penalty)
	}

	hint = HintResponse{}
	doJSON(t, r, http.MethodPost, base+"/hint", HintRequest{Kind: "both"}, &hint)
	if hint.Capital == "" || hint.FlagURL == "" {
		t.Errorf("both hint: expected capital and flag, got %+v", hint)
	}
	if hint.Penalty != game.PenaltyHintBoth {
		t.Errorf("both hint: expected penalty %d, got %d", game.PenaltyHintBoth, hint.Penalty)
	}

	w := doJSON(t, r, http.MethodPost, base+"/hint", HintRequest{Kind: "oracle"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown hint kind: expected 400, got %d", w.Code)
	}

	doJSON(t, r, http.MethodPost, base+"/menu", nil, nil)
	w = doJSON(t, r, http.MethodPost, base+"/hint", HintRequest{Kind: "capital"}, nil)
	if w.Code != http.StatusConflict {
		t.Errorf("hint after menu: expected 409, got %d", w.Code)
	}
}

func TestStatsPersistAcrossSessions(t *testing.T) {
	r := testRouter(t)
	sess := createSession(t, r)
	base := "/api/sessions/" + sess.ID

	doJSON(t, r, http.MethodPost, base+"/start", StartRequest{Region: "Oceania", Mode: "type"}, nil)

	var sub SubmitResponse
	doJSON(t, r, http.MethodPost, base+"/submit", SubmitRequest{Text: "australie"}, &sub)
	if sub.Outcome != "target_hit" {
		t.Fatalf("expected target_hit, got %+v", sub)
	}

	next := createSession(t, r)
	if next.Stats.XP != 10 {
		t.Errorf("new session: expected persisted xp 10, got %d", next.Stats.XP)
	}
}
