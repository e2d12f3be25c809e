package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de inventario.
const (
	TransactionTypeIN         = "IN"         // entrada
	TransactionTypeOUT        = "OUT"        // salida
	TransactionTypeADJUSTMENT = "ADJUSTMENT" // ajuste manual
)

// Transaction representa un movimiento de inventario sobre un repuesto.
// Reference enlaza con la factura u orden que lo originó (puede ser vacío).
type Transaction struct {
	ID        string          `json:"id"`
	PartID    string          `json:"partId"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reference string          `json:"reference,omitempty"`
	CreatedBy string          `json:"createdBy"`
	CreatedAt time.Time       `json:"createdAt"`
}

// EntityID implementa Record.
func (t Transaction) EntityID() string { return t.ID }
