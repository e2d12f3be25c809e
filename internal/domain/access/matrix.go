package access

import (
	"fmt"
	"sort"
)

// Component identifica una pantalla/recurso de la aplicación.
type Component string

// Componentes conocidos.
const (
	ComponentParts        Component = "parts"
	ComponentBuyers       Component = "buyers"
	ComponentInvoices     Component = "invoices"
	ComponentTransactions Component = "transactions"
	ComponentCategories   Component = "categories"
	ComponentReports      Component = "reports"
)

// Action identifica una operación gruesa sobre un componente.
type Action string

// Acciones conocidas.
const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionVoid   Action = "void"
	ActionExport Action = "export"
)

// Matrix mapea (componente, campo) y (componente, acción) al rol mínimo
// requerido. Es estática, versionada con el código y nunca se muta en
// ejecución; ValidateMatrix la revisa en build/test, no en cada lookup.
type Matrix struct {
	fields  map[Component]map[string]Role
	actions map[Component]map[Action]Role
}

// fieldMatrix: rol mínimo por campo. Campos de costo y auditoría son de
// Admin; el resto de campos editables requieren User.
var fieldMatrix = map[Component]map[string]Role{
	ComponentParts: {
		"sku":             RoleReadOnly,
		"name":            RoleReadOnly,
		"description":     RoleUser,
		"category":        RoleUser,
		"price":           RoleUser,
		"cost":            RoleAdmin,
		"inventoryOnHand": RoleAdmin,
	},
	ComponentBuyers: {
		"name":    RoleReadOnly,
		"taxId":   RoleUser,
		"email":   RoleUser,
		"phone":   RoleUser,
		"address": RoleUser,
	},
	ComponentInvoices: {
		"number":  RoleReadOnly,
		"buyerId": RoleUser,
		"date":    RoleUser,
		"items":   RoleUser,
		"notes":   RoleUser,
		"status":  RoleAdmin,
	},
	ComponentTransactions: {
		"partId":    RoleReadOnly,
		"type":      RoleUser,
		"quantity":  RoleUser,
		"reference": RoleUser,
	},
	ComponentCategories: {
		"name":   RoleReadOnly,
		"family": RoleAdmin,
	},
}

// actionMatrix: rol mínimo por acción. view es universal; delete y void son
// de Admin salvo transacciones, que no se borran (ajustes compensan).
var actionMatrix = map[Component]map[Action]Role{
	ComponentParts: {
		ActionView:   RoleReadOnly,
		ActionCreate: RoleUser,
		ActionEdit:   RoleUser,
		ActionDelete: RoleAdmin,
		ActionExport: RoleUser,
	},
	ComponentBuyers: {
		ActionView:   RoleReadOnly,
		ActionCreate: RoleUser,
		ActionEdit:   RoleUser,
		ActionDelete: RoleAdmin,
		ActionExport: RoleUser,
	},
	ComponentInvoices: {
		ActionView:   RoleReadOnly,
		ActionCreate: RoleUser,
		ActionEdit:   RoleUser,
		ActionDelete: RoleAdmin,
		ActionVoid:   RoleAdmin,
		ActionExport: RoleUser,
	},
	ComponentTransactions: {
		ActionView:   RoleReadOnly,
		ActionCreate: RoleUser,
		ActionExport: RoleUser,
	},
	ComponentCategories: {
		ActionView:   RoleReadOnly,
		ActionCreate: RoleAdmin,
		ActionEdit:   RoleAdmin,
		ActionDelete: RoleAdmin,
	},
	ComponentReports: {
		ActionView:   RoleUser,
		ActionExport: RoleAdmin,
	},
}

// DefaultMatrix devuelve la matriz de permisos de la aplicación.
func DefaultMatrix() *Matrix {
	return &Matrix{fields: fieldMatrix, actions: actionMatrix}
}

// Components devuelve los componentes conocidos por la matriz, ordenados.
func (m *Matrix) Components() []Component {
	seen := make(map[Component]bool)
	for c := range m.fields {
		seen[c] = true
	}
	for c := range m.actions {
		seen[c] = true
	}
	out := make([]Component, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Fields devuelve el conjunto completo de campos conocidos del componente,
// ordenado. Vacío si el componente no tiene campos en la matriz.
func (m *Matrix) Fields(component Component) []string {
	fields := m.fields[component]
	out := make([]string, 0, len(fields))
	for f := range fields {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Actions devuelve las acciones conocidas del componente, ordenadas.
func (m *Matrix) Actions(component Component) []Action {
	actions := m.actions[component]
	out := make([]Action, 0, len(actions))
	for a := range actions {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ValidateMatrix revisa que cada entrada de la matriz use un rol válido y un
// componente/acción conocidos. Se invoca desde los tests (validación en
// build, no en cada lookup).
func (m *Matrix) ValidateMatrix() error {
	knownActions := map[Action]bool{
		ActionView: true, ActionCreate: true, ActionEdit: true,
		ActionDelete: true, ActionVoid: true, ActionExport: true,
	}
	for component, fields := range m.fields {
		for field, role := range fields {
			if !role.Valid() {
				return fmt.Errorf("matriz: rol inválido en %s.%s", component, field)
			}
		}
	}
	for component, actions := range m.actions {
		for action, role := range actions {
			if !knownActions[action] {
				return fmt.Errorf("matriz: acción desconocida %s.%s", component, action)
			}
			if !role.Valid() {
				return fmt.Errorf("matriz: rol inválido en %s.%s", component, action)
			}
		}
	}
	return nil
}
