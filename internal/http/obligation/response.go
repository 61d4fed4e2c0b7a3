package obligation

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestor-maestro/gestor/internal/obligation"
)

type obligationResponse struct {
	ID                  uuid.UUID         `json:"id"`
	Title               string            `json:"title"`
	Amount              float64           `json:"amount"`
	OriginalAmount      *float64          `json:"original_amount,omitempty"`
	Kind                obligation.Kind   `json:"kind"`
	Status              obligation.Status `json:"status"`
	Category            string            `json:"category,omitempty"`
	RelatedFixedCostID  *uuid.UUID        `json:"related_fixed_cost_id,omitempty"`
	RelatedObligationID *uuid.UUID        `json:"related_obligation_id,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           *time.Time        `json:"updated_at,omitempty"`
}

func toResponse(ob *obligation.Obligation) obligationResponse {
	return obligationResponse{
		ID:                  ob.ID,
		Title:               ob.Title,
		Amount:              ob.Amount,
		OriginalAmount:      ob.OriginalAmount,
		Kind:                ob.Kind,
		Status:              ob.Status,
		Category:            ob.Category,
		RelatedFixedCostID:  ob.RelatedFixedCostID,
		RelatedObligationID: ob.RelatedObligationID,
		CreatedAt:           ob.CreatedAt,
		UpdatedAt:           ob.UpdatedAt,
	}
}

func toResponseList(obs []*obligation.Obligation) []obligationResponse {
	resp := make([]obligationResponse, len(obs))
	for i, ob := range obs {
		resp[i] = toResponse(ob)
	}

	return resp
}

type paymentResponse struct {
	ID                 uuid.UUID         `json:"id"`
	Title              string            `json:"title"`
	Amount             float64           `json:"amount"`
	Kind               obligation.Kind   `json:"kind"`
	Status             obligation.Status `json:"status"`
	PaymentDate        time.Time         `json:"payment_date"`
	Category           string            `json:"category,omitempty"`
	Notes              string            `json:"notes,omitempty"`
	PaymentMethod      string            `json:"payment_method,omitempty"`
	SourceObligationID uuid.UUID         `json:"source_obligation_id"`
	CreatedAt          time.Time         `json:"created_at"`
}

func toPaymentResponse(rec *obligation.PaymentRecord) paymentResponse {
	return paymentResponse{
		ID:                 rec.ID,
		Title:              rec.Title,
		Amount:             rec.Amount,
		Kind:               rec.Kind,
		Status:             rec.Status,
		PaymentDate:        rec.PaymentDate,
		Category:           rec.Category,
		Notes:              rec.Notes,
		PaymentMethod:      rec.PaymentMethod,
		SourceObligationID: rec.SourceObligationID,
		CreatedAt:          rec.CreatedAt,
	}
}

func toPaymentResponseList(recs []*obligation.PaymentRecord) []paymentResponse {
	resp := make([]paymentResponse, len(recs))
	for i, rec := range recs {
		resp[i] = toPaymentResponse(rec)
	}

	return resp
}
