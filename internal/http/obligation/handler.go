package obligation

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gestor-maestro/gestor/internal/account"
	"github.com/gestor-maestro/gestor/internal/auth"
	"github.com/gestor-maestro/gestor/internal/ledger"
	"github.com/gestor-maestro/gestor/internal/obligation"
)

// Notifier sends the settlement notice; nil disables it.
type Notifier interface {
	ObligationSettled(to, title string, total float64) error
}

type Handler struct {
	svc      *obligation.Service
	ledger   *ledger.Service
	accounts *account.Service
	notifier Notifier
}

func NewHandler(svc *obligation.Service, ledgerSvc *ledger.Service, accounts *account.Service, notifier Notifier) *Handler {
	return &Handler{
		svc:      svc,
		ledger:   ledgerSvc,
		accounts: accounts,
		notifier: notifier,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/payments", h.pay)
	r.Get("/{id}/payments", h.listObligationPayments)
}

type createObligationRequest struct {
	Title    string          `json:"title"`
	Amount   float64         `json:"amount"`
	Kind     obligation.Kind `json:"kind"`
	Category string          `json:"category"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.CallerID(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var req createObligationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ob, err := h.svc.Create(r.Context(), obligation.CreateParams{
		OwnerID:  callerID,
		Title:    req.Title,
		Amount:   req.Amount,
		Kind:     req.Kind,
		Category: req.Category,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	respondJSON(w, http.StatusCreated, toResponse(ob))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.CallerID(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	filter := obligation.ListFilter{OwnerID: callerID}

	if s := r.URL.Query().Get("status"); s != "" {
		status := obligation.Status(s)
		filter.Status = &status
	}

	if s := r.URL.Query().Get("kind"); s != "" {
		kind := obligation.Kind(s)
		filter.Kind = &kind
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = &t
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = &t
		}
	}

	obs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, toResponseList(obs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
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

	ob, err := h.svc.Get(r.Context(), callerID, id)
	if err != nil {
		if errors.Is(err, obligation.ErrNotFound) {
			http.Error(w, "obligation not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	respondJSON(w, http.StatusOK, toResponse(ob))
}

type updateObligationRequest struct {
	Title    *string `json:"title,omitempty"`
	Category *string `json:"category,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
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

	var req updateObligationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ob, err := h.svc.Update(r.Context(), callerID, id, obligation.UpdateParams{
		Title:    req.Title,
		Category: req.Category,
	})
	if err != nil {
		if errors.Is(err, obligation.ErrNotFound) {
			http.Error(w, "obligation not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	respondJSON(w, http.StatusOK, toResponse(ob))
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
		if errors.Is(err, obligation.ErrNotFound) {
			http.Error(w, "obligation not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type payRequest struct {
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Notes         string    `json:"notes,omitempty"`
}

type payResponse struct {
	PaymentRecordID uuid.UUID `json:"payment_record_id"`
	RemainingAmount float64   `json:"remaining_amount"`
	Settled         bool      `json:"settled"`
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
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

	var req payRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	receipt, err := h.ledger.Apply(r.Context(), callerID, ledger.ApplyParams{
		ObligationID:  id,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		h.respondPayError(w, err)
		return
	}

	if receipt.Settled {
		h.notifySettled(r, callerID, receipt)
	}

	respondJSON(w, http.StatusCreated, payResponse{
		PaymentRecordID: receipt.PaymentRecordID,
		RemainingAmount: receipt.RemainingAmount,
		Settled:         receipt.Settled,
	})
}

func (h *Handler) respondPayError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrObligationNotFound):
		http.Error(w, "obligation not found", http.StatusNotFound)
	case errors.Is(err, ledger.ErrPermissionDenied):
		http.Error(w, "permission denied", http.StatusForbidden)
	case errors.Is(err, ledger.ErrNotPending):
		http.Error(w, "obligation is not pending payment", http.StatusConflict)
	case errors.Is(err, ledger.ErrAmountNotPositive),
		errors.Is(err, ledger.ErrExceedsOutstanding),
		errors.Is(err, ledger.ErrInvalidDate):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "payment could not be processed", http.StatusInternalServerError)
	}
}

// notifySettled sends the settlement e-mail; failures are logged and never
// affect the payment response.
func (h *Handler) notifySettled(r *http.Request, callerID uuid.UUID, receipt *ledger.Receipt) {
	if h.notifier == nil {
		return
	}

	acc, err := h.accounts.Get(r.Context(), callerID)
	if err != nil {
		slog.Error("failed to load account for settlement notice", "error", err)
		return
	}

	total := receipt.Obligation.Amount
	if receipt.Obligation.OriginalAmount != nil {
		total = *receipt.Obligation.OriginalAmount
	}

	if err := h.notifier.ObligationSettled(acc.Email, receipt.Obligation.Title, total); err != nil {
		slog.Error("failed to send settlement notice", "error", err)
	}
}

func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.CallerID(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	recs, err := h.svc.ListPayments(r.Context(), obligation.PaymentFilter{OwnerID: callerID})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, toPaymentResponseList(recs))
}

func (h *Handler) listObligationPayments(w http.ResponseWriter, r *http.Request) {
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

	recs, err := h.svc.ListPayments(r.Context(), obligation.PaymentFilter{
		OwnerID:            callerID,
		SourceObligationID: &id,
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, toPaymentResponseList(recs))
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
