// Package access implementa el motor de autorización por rol a nivel de
// campo. Todas las decisiones son funciones puras de (rol, componente,
// campo|acción) y la matriz estática: cada control de UI re-deriva su estado
// en cada evaluación en vez de confiar en un render anterior, porque el rol
// puede cambiar durante la sesión (refresh de token con otro claim).
package access

// Engine responde decisiones de acceso contra una matriz fija.
// No guarda estado mutable; es seguro compartirlo como singleton.
type Engine struct {
	matrix *Matrix
}

// NewEngine construye el motor sobre la matriz dada (nil usa la de la app).
func NewEngine(matrix *Matrix) *Engine {
	if matrix == nil {
		matrix = DefaultMatrix()
	}
	return &Engine{matrix: matrix}
}

// CanAccessField informa si el rol puede editar el campo del componente.
// Pares (componente, campo) desconocidos se niegan siempre (fail-closed).
func (e *Engine) CanAccessField(role Role, component Component, field string) bool {
	fields, ok := e.matrix.fields[component]
	if !ok {
		return false
	}
	min, ok := fields[field]
	if !ok {
		return false
	}
	return IsAtLeastRole(role, min)
}

// CanPerformAction informa si el rol puede ejecutar la acción sobre el
// componente. Igual que los campos: desconocido = negado.
func (e *Engine) CanPerformAction(role Role, component Component, action Action) bool {
	actions, ok := e.matrix.actions[component]
	if !ok {
		return false
	}
	min, ok := actions[action]
	if !ok {
		return false
	}
	return IsAtLeastRole(role, min)
}

// AccessibleFields devuelve los campos del componente que el rol puede
// editar, ordenados.
func (e *Engine) AccessibleFields(role Role, component Component) []string {
	out := make([]string, 0)
	for _, field := range e.matrix.Fields(component) {
		if e.CanAccessField(role, component, field) {
			out = append(out, field)
		}
	}
	return out
}

// RestrictedFields devuelve el complemento de AccessibleFields: la unión de
// ambos es el conjunto completo de campos y la intersección es vacía.
func (e *Engine) RestrictedFields(role Role, component Component) []string {
	out := make([]string, 0)
	for _, field := range e.matrix.Fields(component) {
		if !e.CanAccessField(role, component, field) {
			out = append(out, field)
		}
	}
	return out
}
