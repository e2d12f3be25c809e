// Package inventory contiene los servicios de dominio de stock: validación
// de demanda contra existencias antes de finalizar una factura.
package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Repuestos-sync/internal/domain"
	"github.com/jhoicas/Repuestos-sync/internal/domain/entity"
)

// Shortage describe un faltante detectado para un repuesto: la demanda
// agregada de todas las líneas que lo referencian contra el stock actual.
// Missing indica que el repuesto no existe en el snapshot (fallo duro, no
// advertencia).
type Shortage struct {
	PartID    string
	Required  decimal.Decimal
	Available decimal.Decimal
	Shortage  decimal.Decimal
	LineItems int // cuántas líneas aportaron a la demanda del repuesto
	Missing   bool
}

// ValidateLineItems valida las líneas localmente antes de cualquier llamada
// remota: PartID presente, cantidad y precio no negativos.
func ValidateLineItems(items []entity.LineItem) error {
	for _, item := range items {
		if item.PartID == "" {
			return domain.ErrInvalidInput
		}
		if item.Quantity.IsNegative() || item.UnitPrice.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// ValidateStock compara la demanda agregada de las líneas contra el stock
// del snapshot de repuestos. Las líneas se agrupan por PartID y se suman
// ANTES de comparar: validar línea por línea sub-contaría la demanda cuando
// varias líneas referencian el mismo repuesto.
//
// Devuelve un faltante por cada repuesto con demanda > stock (o inexistente);
// vacío significa que el lote es admisible. Es un chequeo pre-vuelo sin
// memoria entre llamadas ni reserva de stock: el stock puede cambiar entre
// la validación y el envío.
func ValidateStock(parts []entity.Part, items []entity.LineItem) []Shortage {
	type demand struct {
		total decimal.Decimal
		lines int
	}
	demands := make(map[string]*demand)
	order := make([]string, 0)
	for _, item := range items {
		d, ok := demands[item.PartID]
		if !ok {
			d = &demand{}
			demands[item.PartID] = d
			order = append(order, item.PartID)
		}
		d.total = d.total.Add(item.Quantity)
		d.lines++
	}

	byID := make(map[string]entity.Part, len(parts))
	for _, p := range parts {
		byID[p.ID] = p
	}

	shortages := make([]Shortage, 0)
	for _, partID := range order {
		d := demands[partID]
		part, ok := byID[partID]
		if !ok {
			shortages = append(shortages, Shortage{
				PartID:    partID,
				Required:  d.total,
				Available: decimal.Zero,
				Shortage:  d.total,
				LineItems: d.lines,
				Missing:   true,
			})
			continue
		}
		if d.total.GreaterThan(part.InventoryOnHand) {
			shortages = append(shortages, Shortage{
				PartID:    partID,
				Required:  d.total,
				Available: part.InventoryOnHand,
				Shortage:  d.total.Sub(part.InventoryOnHand),
				LineItems: d.lines,
			})
		}
	}
	sort.SliceStable(shortages, func(i, j int) bool { return shortages[i].PartID < shortages[j].PartID })
	return shortages
}
