package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "GlobeQuiz API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the GlobeQuiz arcade geography game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/sessions
	postSession, _ := r.NewOperationContext(http.MethodPost, "/api/sessions")
	postSession.SetSummary("Create session")
	postSession.SetDescription("Creates a game session seeded with the persisted player stats.")
	postSession.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postSession)

	// POST /api/sessions/{session}/start
	postStart, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/start")
	postStart.SetSummary("Start round")
	postStart.SetDescription("Starts a round over a region pool in type or click mode.")
	postStart.AddReqStructure(StartRequest{})
	postStart.AddRespStructure(StartResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postStart.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(postStart)

	// GET /api/sessions/{session}/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{session}/state")
	getState.SetSummary("Round state")
	getState.SetDescription("Returns the full round snapshot. The target is included only in click mode.")
	getState.AddRespStructure(StateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getState.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getState)

	// POST /api/sessions/{session}/input
	postInput, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/input")
	postInput.SetSummary("Live typing")
	postInput.SetDescription("Resolves a keystroke: exact matches apply immediately, prefixes return highlight candidates.")
	postInput.AddReqStructure(InputRequest{})
	postInput.AddRespStructure(InputResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postInput.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postInput)

	// POST /api/sessions/{session}/submit
	postSubmit, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/submit")
	postSubmit.SetSummary("Radar guess")
	postSubmit.SetDescription("Explicit submission: naming the wrong country returns distance and bearing toward the target at a time cost.")
	postSubmit.AddReqStructure(SubmitRequest{})
	postSubmit.AddRespStructure(SubmitResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postSubmit.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postSubmit)

	// POST /api/sessions/{session}/click
	postClick, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/click")
	postClick.SetSummary("Polygon click")
	postClick.SetDescription("Click-mode guess on a country polygon.")
	postClick.AddReqStructure(ClickRequest{})
	postClick.AddRespStructure(ClickResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postClick.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postClick)

	// POST /api/sessions/{session}/hint
	postHint, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/hint")
	postHint.SetSummary("Reveal hint")
	postHint.SetDescription("Reveals the target's capital, flag, or both for a time penalty.")
	postHint.AddReqStructure(HintRequest{})
	postHint.AddRespStructure(HintResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postHint.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postHint)

	// POST /api/sessions/{session}/menu
	postMenu, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/menu")
	postMenu.SetSummary("Return to menu")
	postMenu.SetDescription("Abandons the current round and resets the session to idle.")
	postMenu.AddRespStructure(StateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postMenu)

	// GET /api/sessions/{session}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{session}/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of presentation events: camera, rings, sounds, floating text, score.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /api/settings/sound
	getSound, _ := r.NewOperationContext(http.MethodGet, "/api/settings/sound")
	getSound.SetSummary("Sound setting")
	getSound.AddRespStructure(SoundResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getSound)

	// PUT /api/settings/sound
	putSound, _ := r.NewOperationContext(http.MethodPut, "/api/settings/sound")
	putSound.SetSummary("Toggle sound")
	putSound.SetDescription("Persists the sound-enabled flag.")
	putSound.AddReqStructure(SoundRequest{})
	putSound.AddRespStructure(SoundResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(putSound)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		json.NewEncoder(w).Encode(spec)
	}
}
