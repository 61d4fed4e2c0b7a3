package pricing

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gestor-maestro/gestor/internal/pricing"
)

type Handler struct {
	svc *pricing.Service
}

func NewHandler(svc *pricing.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/quote", h.quote)
}

type quoteRequest struct {
	ProductName  string  `json:"product_name"`
	MaterialCost float64 `json:"material_cost"`
	LaborCost    float64 `json:"labor_cost"`
	OverheadCost float64 `json:"overhead_cost"`
	Yield        int     `json:"yield"`
	TargetMargin float64 `json:"target_margin"`
	CurrentPrice float64 `json:"current_price"`
}

type quoteResponse struct {
	ProductName    string  `json:"product_name"`
	UnitCost       float64 `json:"unit_cost"`
	TargetMargin   float64 `json:"target_margin"`
	SuggestedPrice float64 `json:"suggested_price"`
	CurrentPrice   float64 `json:"current_price,omitempty"`
	CurrentMargin  float64 `json:"current_margin,omitempty"`
	Explanation    string  `json:"explanation,omitempty"`
}

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	quote, err := h.svc.Evaluate(r.Context(), pricing.QuoteParams{
		ProductName: req.ProductName,
		Batch: pricing.BatchInput{
			MaterialCost: req.MaterialCost,
			LaborCost:    req.LaborCost,
			OverheadCost: req.OverheadCost,
			Yield:        req.Yield,
		},
		TargetMargin: req.TargetMargin,
		CurrentPrice: req.CurrentPrice,
	})
	if err != nil {
		if errors.Is(err, pricing.ErrZeroYield) || errors.Is(err, pricing.ErrMarginTooHigh) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := quoteResponse{
		ProductName:    quote.ProductName,
		UnitCost:       quote.UnitCost,
		TargetMargin:   quote.TargetMargin,
		SuggestedPrice: quote.SuggestedPrice,
		CurrentPrice:   quote.CurrentPrice,
		CurrentMargin:  quote.CurrentMargin,
		Explanation:    quote.Explanation,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
