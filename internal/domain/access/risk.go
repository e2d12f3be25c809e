package access

// RiskLevel clasifica un punto de edición para auditoría y reportes.
// NUNCA sustituye a CanAccessField: no otorga ni niega acceso.
type RiskLevel string

// Niveles de riesgo.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// riskTable: clasificación estática por (componente, punto de edición).
// Puntos que tocan dinero o stock son altos; datos de contacto, bajos.
var riskTable = map[Component]map[string]RiskLevel{
	ComponentParts: {
		"price":           RiskMedium,
		"cost":            RiskHigh,
		"inventoryOnHand": RiskHigh,
		"category":        RiskMedium,
		"name":            RiskLow,
		"description":     RiskLow,
		"sku":             RiskMedium,
	},
	ComponentBuyers: {
		"taxId":   RiskMedium,
		"name":    RiskLow,
		"email":   RiskLow,
		"phone":   RiskLow,
		"address": RiskLow,
	},
	ComponentInvoices: {
		"items":   RiskHigh,
		"status":  RiskHigh,
		"buyerId": RiskMedium,
		"date":    RiskMedium,
		"number":  RiskMedium,
		"notes":   RiskLow,
	},
	ComponentTransactions: {
		"quantity":  RiskHigh,
		"type":      RiskHigh,
		"partId":    RiskMedium,
		"reference": RiskLow,
	},
	ComponentCategories: {
		"family": RiskMedium,
		"name":   RiskLow,
	},
}

// GetRiskLevel devuelve la clasificación del punto de edición.
// Desconocido devuelve RiskHigh: ante la duda, el reporte lo marca.
func (e *Engine) GetRiskLevel(component Component, editingPoint string) RiskLevel {
	points, ok := riskTable[component]
	if !ok {
		return RiskHigh
	}
	level, ok := points[editingPoint]
	if !ok {
		return RiskHigh
	}
	return level
}
