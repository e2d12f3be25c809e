package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceStatusDraft = "DRAFT" // en edición, stock aún no comprometido
	InvoiceStatusFinal = "FINAL" // finalizada tras pasar la validación de stock
	InvoiceStatusVoid  = "VOID"  // anulada
)

// Invoice representa la cabecera de una factura con sus líneas embebidas,
// tal como la guarda el almacén de listas.
type Invoice struct {
	ID         string          `json:"id"`
	Number     string          `json:"number"`
	BuyerID    string          `json:"buyerId"`
	Date       time.Time       `json:"date"`
	Status     string          `json:"status"`
	Items      []LineItem      `json:"items"`
	NetTotal   decimal.Decimal `json:"netTotal"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
	Notes      string          `json:"notes,omitempty"`
	CreatedBy  string          `json:"createdBy"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// EntityID implementa Record.
func (i Invoice) EntityID() string { return i.ID }

// Totals recalcula NetTotal y GrandTotal desde las líneas.
// GrandTotal = NetTotal mientras el impuesto lo liquida el colaborador externo.
func (i *Invoice) Totals() {
	var net decimal.Decimal
	for _, item := range i.Items {
		net = net.Add(item.Subtotal())
	}
	i.NetTotal = net
	i.GrandTotal = net
}
