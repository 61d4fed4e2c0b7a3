package advisor

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gestor-maestro/gestor/internal/advisor"
)

type Handler struct {
	svc *advisor.Service
}

func NewHandler(svc *advisor.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/content", h.content)
	r.Post("/guide", h.guide)
}

type contentRequest struct {
	Business string `json:"business"`
	Topic    string `json:"topic"`
}

type suggestionResponse struct {
	Suggestion string `json:"suggestion"`
}

func (h *Handler) content(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	text, err := h.svc.SuggestContent(r.Context(), req.Business, req.Topic)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondJSON(w, suggestionResponse{Suggestion: text})
}

type guideRequest struct {
	Question string `json:"question"`
}

func (h *Handler) guide(w http.ResponseWriter, r *http.Request) {
	var req guideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	text, err := h.svc.GuideAnswer(r.Context(), req.Question)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondJSON(w, suggestionResponse{Suggestion: text})
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, advisor.ErrUnavailable) {
		http.Error(w, "suggestion unavailable", http.StatusServiceUnavailable)
		return
	}

	http.Error(w, "internal error", http.StatusInternalServerError)
}

func respondJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
