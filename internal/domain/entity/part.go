package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part representa un repuesto del catálogo. Category es texto libre por
// compatibilidad con el almacén remoto (sin referencias estructuradas);
// la relación con la familia se reconstruye en la caché de categorías.
type Part struct {
	ID              string          `json:"id"`
	SKU             string          `json:"sku"` // código único
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"` // precio de venta
	Cost            decimal.Decimal `json:"cost"`
	InventoryOnHand decimal.Decimal `json:"inventoryOnHand"`
	CreatedBy       string          `json:"createdBy"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// EntityID implementa Record.
func (p Part) EntityID() string { return p.ID }
