package entity

import "time"

// Buyer representa un comprador (cliente) al que se le facturan repuestos.
type Buyer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"taxId"` // NIT o cédula
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntityID implementa Record.
func (b Buyer) EntityID() string { return b.ID }
