package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/CherDalov/Accountability-2.0/database"
	"github.com/CherDalov/Accountability-2.0/models"
	"github.com/CherDalov/Accountability-2.0/sessions"
)

// Handlers holds the stores shared by all HTTP handlers.
type Handlers struct {
	Store     *database.Store
	Sessions  *sessions.Store
	Logger    *slog.Logger
	PublicDir string
}

// NewHandlers is a constructor for the Handlers struct.
func NewHandlers(store *database.Store, sess *sessions.Store, logger *slog.Logger, publicDir string) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{Store: store, Sessions: sess, Logger: logger, PublicDir: publicDir}
}

// respondWithJSON is a helper function to format and send JSON responses.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondFailure sends the {success:false, message} envelope.
func respondFailure(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, models.APIResponse{Success: false, Message: message})
}

// respondSuccess sends the {success:true, message} envelope.
func respondSuccess(w http.ResponseWriter, message string) {
	respondWithJSON(w, http.StatusOK, models.APIResponse{Success: true, Message: message})
}

// Index serves the authenticated landing page.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.PublicDir, "index.html"))
}

// Healthz reports liveness, including whether the durable store is
// reachable.
func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Ping(); err != nil {
		h.Logger.Error("health check failed", "error", err)
		respondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
