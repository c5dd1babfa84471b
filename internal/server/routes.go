package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/worldatlas/globequiz/internal/game"
	"github.com/worldatlas/globequiz/internal/geo"
)

func addRoutes(r chi.Router, logger *slog.Logger, db *sql.DB, settings SettingsStore,
	index *geo.Index, sessions *Registry, broker *Broker, spaDir string) {

	resolver := game.NewResolver(index)

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("GlobeQuiz API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db, index))

	r.Get("/api/settings/sound", handleGetSound(settings))
	r.Put("/api/settings/sound", handleSetSound(settings))

	r.Post("/api/sessions", handleCreateSession(sessions, settings, index))

	// Game routes. {session} is resolved by sessionMiddleware.
	r.Route("/api/sessions/{session}", func(r chi.Router) {
		r.Use(sessionMiddleware(sessions))
		r.Post("/start", handleStartRound(index))
		r.Get("/state", handleState())
		r.Post("/menu", handleReturnToMenu())
		r.Post("/input", handleInput(resolver))
		r.Post("/submit", handleSubmit(resolver))
		r.Post("/click", handleClick(resolver, index))
		r.Post("/hint", handleHint())
		r.Get("/events", handleEvents(broker))
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
