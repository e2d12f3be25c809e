package entity

import "github.com/shopspring/decimal"

// LineItem es una línea de factura en edición: entrada transitoria, no es
// una entidad propia del almacén (vive dentro de Invoice o en el formulario).
type LineItem struct {
	PartID    string          `json:"partId"`
	Quantity  decimal.Decimal `json:"quantity"`  // >= 0
	UnitPrice decimal.Decimal `json:"unitPrice"` // >= 0
}

// Subtotal devuelve Quantity * UnitPrice.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}
