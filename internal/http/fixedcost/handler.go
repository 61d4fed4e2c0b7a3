package fixedcost

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gestor-maestro/gestor/internal/auth"
	"github.com/gestor-maestro/gestor/internal/fixedcost"
)

type Handler struct {
	svc *fixedcost.Service
}

func NewHandler(svc *fixedcost.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Delete("/{id}", h.delete)
}

type createRequest struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

type fixedCostResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Amount    float64    `json:"amount"`
	Category  string     `json:"category,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toResponse(fc *fixedcost.FixedCost) fixedCostResponse {
	return fixedCostResponse{
		ID:        fc.ID,
		Name:      fc.Name,
		Amount:    fc.Amount,
		Category:  fc.Category,
		Active:    fc.Active,
		CreatedAt: fc.CreatedAt,
		UpdatedAt: fc.UpdatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.CallerID(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fc, err := h.svc.Create(r.Context(), fixedcost.CreateParams{
		OwnerID:  callerID,
		Name:     req.Name,
		Amount:   req.Amount,
		Category: req.Category,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	respondJSON(w, http.StatusCreated, toResponse(fc))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.CallerID(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	fcs, err := h.svc.List(r.Context(), callerID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]fixedCostResponse, len(fcs))
	for i, fc := range fcs {
		resp[i] = toResponse(fc)
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.CallerID(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), callerID, id); err != nil {
		if errors.Is(err, fixedcost.ErrNotFound) {
			http.Error(w, "fixed cost not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
