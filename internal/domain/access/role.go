package access

import "github.com/jhoicas/Repuestos-sync/internal/domain"

// Role es el rol del usuario actual. Lo asigna el colaborador de identidad
// (claim del token); para este núcleo es estado externo de solo lectura que
// puede cambiar entre llamadas, por eso todas las decisiones lo reciben como
// parámetro en vez de leer un global.
type Role int

// Jerarquía total de roles: ReadOnly < User < Admin.
const (
	RoleReadOnly Role = 1
	RoleUser     Role = 2
	RoleAdmin    Role = 3
)

// String devuelve el nombre del rol tal como viaja en el claim del token.
func (r Role) String() string {
	switch r {
	case RoleReadOnly:
		return "readonly"
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// Valid informa si el rol es uno de los tres conocidos.
func (r Role) Valid() bool {
	return r == RoleReadOnly || r == RoleUser || r == RoleAdmin
}

// ParseRole convierte el claim de rol en un Role. Claims desconocidos o
// vacíos devuelven error (nunca se asume un rol por defecto).
func ParseRole(s string) (Role, error) {
	switch s {
	case "readonly":
		return RoleReadOnly, nil
	case "user":
		return RoleUser, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return 0, domain.ErrInvalidInput
	}
}

// IsAtLeastRole informa si role alcanza o supera el nivel de target.
// Es el ÚNICO punto donde se compara la jerarquía; toda decisión de acceso
// pasa por aquí en vez de re-implementar comparaciones de nivel.
func IsAtLeastRole(role, target Role) bool {
	return role >= target
}
