// HTTP handlers for the clone service.
//
// Routes:
//
//	POST /scan     → run a clone scan over the stored feed
//	GET  /clones   → list persisted clone groups
//	POST /resolve  → resolve one aggregator URL to a direct URL
package clone

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/shanmukh-025/AppTrackr-sub003/internal/model"
)

// Handler exposes the Service over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler returns a configured Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts all clone-service routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/scan", h.handleScan)
	mux.HandleFunc("/clones", h.handleClones)
	mux.HandleFunc("/resolve", h.handleResolve)
}

// ─── Individual handlers ──────────────────────────────────────────────────────

func (h *Handler) handleScan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, err := h.svc.RunScan(r.Context())
	if err != nil {
		log.Printf("[clone] scan error: %v", err)
		jsonError(w, "scan failed", http.StatusInternalServerError)
		return
	}
	jsonOK(w, result)
}

func (h *Handler) handleClones(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	groups, err := h.svc.ListGroups(r.Context())
	if err != nil {
		log.Printf("[clone] list groups error: %v", err)
		jsonError(w, "database error", http.StatusInternalServerError)
		return
	}
	jsonOK(w, groups)
}

func (h *Handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		URL    string       `json:"url"`
		Source model.Source `json:"source"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.URL == "" {
		jsonError(w, "body must contain url", http.StatusBadRequest)
		return
	}

	jsonOK(w, h.svc.ResolveDirectURL(r.Context(), body.URL, body.Source))
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
