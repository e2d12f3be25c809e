package ports

import "github.com/jhoicas/Repuestos-sync/internal/domain/access"

// Identity es el colaborador de identidad: entrega el rol vigente y la
// credencial de acceso al almacén remoto. El rol es estado externo que puede
// cambiar entre llamadas (ej. refresh de token con otro claim), por eso se
// consulta en cada decisión y nunca se cachea más allá de una evaluación.
type Identity interface {
	// Role devuelve el rol vigente del usuario.
	Role() (access.Role, error)
	// Credential devuelve la credencial para el almacén remoto.
	// Vacía o ausente equivale a domain.ErrAuthRequired.
	Credential() (string, error)
}
