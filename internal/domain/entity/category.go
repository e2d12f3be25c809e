package entity

import "time"

// Category representa una entrada de la lista de categorías: el nombre de la
// categoría (el texto que llevan los repuestos) y la familia a la que
// pertenece. La jerarquía completa se deriva en la caché de categorías.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Family    string    `json:"family"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntityID implementa Record.
func (c Category) EntityID() string { return c.ID }
