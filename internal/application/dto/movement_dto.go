package dto

import (
	"github.com/shopspring/decimal"

	"github.com/sanmartincomanda/inventario/internal/domain/entity"
)

// LineRequest línea de un borrador de movimiento: un SKU y los pesos de sus
// cajas en libras.
type LineRequest struct {
	SKU     string            `json:"sku"`
	Weights []decimal.Decimal `json:"weights"`
	Notes   string            `json:"notes,omitempty"`
}

// RecordMovementRequest body para POST /api/entries y POST /api/exits.
// Counterparty es el proveedor en entradas y el destino en salidas.
// Date en formato YYYY-MM-DD; vacío usa la fecha actual.
type RecordMovementRequest struct {
	Date         string        `json:"date"`
	Counterparty string        `json:"counterparty"`
	Actor        string        `json:"actor"`
	Observation  string        `json:"observation,omitempty"`
	Lines        []LineRequest `json:"lines"`
}

// RecordMovementResponse resultado del registro de un movimiento.
type RecordMovementResponse struct {
	ID       string   `json:"id"`
	Folio    string   `json:"folio"`
	Status   string   `json:"status"`
	Warnings []string `json:"warnings,omitempty"`
}

// ApproveTransferRequest body para POST /api/transfers/:id/approve.
type ApproveTransferRequest struct {
	ReceivedBy string `json:"received_by"`
}

// MovementLineResponse línea de movimiento en respuestas.
type MovementLineResponse struct {
	SKU      string            `json:"sku"`
	Quantity decimal.Decimal   `json:"quantity"`
	Weights  []decimal.Decimal `json:"weights"`
	Notes    string            `json:"notes,omitempty"`
}

// MovementResponse movimiento en respuestas de listado y detalle.
type MovementResponse struct {
	ID             string                 `json:"id"`
	BranchID       string                 `json:"branch_id"`
	Type           string                 `json:"type"`
	Folio          string                 `json:"folio"`
	Date           string                 `json:"date"`
	Counterparty   string                 `json:"counterparty"`
	Actor          string                 `json:"actor"`
	Observation    string                 `json:"observation,omitempty"`
	Transfer       bool                   `json:"transfer"`
	Status         string                 `json:"status"`
	OriginBranchID string                 `json:"origin_branch_id,omitempty"`
	ReceivedBy     string                 `json:"received_by,omitempty"`
	Total          decimal.Decimal        `json:"total"`
	Boxes          int                    `json:"boxes"`
	Lines          []MovementLineResponse `json:"lines"`
}

// ToMovementResponse mapea la entidad al DTO de respuesta.
func ToMovementResponse(m *entity.Movement) *MovementResponse {
	lines := make([]MovementLineResponse, 0, len(m.Lines))
	for i := range m.Lines {
		l := &m.Lines[i]
		lines = append(lines, MovementLineResponse{
			SKU:      l.SKU,
			Quantity: l.Quantity,
			Weights:  l.Weights,
			Notes:    l.Notes,
		})
	}
	return &MovementResponse{
		ID:             m.ID,
		BranchID:       m.BranchID,
		Type:           m.Type,
		Folio:          m.Folio,
		Date:           m.Date.Format("2006-01-02"),
		Counterparty:   m.Counterparty,
		Actor:          m.Actor,
		Observation:    m.Observation,
		Transfer:       m.Transfer,
		Status:         m.Status,
		OriginBranchID: m.OriginBranchID,
		ReceivedBy:     m.ReceivedBy,
		Total:          m.Total(),
		Boxes:          m.Boxes(),
		Lines:          lines,
	}
}

// ToMovementResponses mapea una lista de movimientos.
func ToMovementResponses(list []*entity.Movement) []*MovementResponse {
	out := make([]*MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMovementResponse(m))
	}
	return out
}
