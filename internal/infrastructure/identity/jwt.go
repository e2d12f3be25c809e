// Package identity adapta el token JWT del colaborador de autenticación al
// puerto Identity del núcleo.
package identity

import (
	"sync"

	"github.com/jhoicas/Repuestos-sync/internal/domain"
	"github.com/jhoicas/Repuestos-sync/internal/domain/access"
	pkgjwt "github.com/jhoicas/Repuestos-sync/pkg/jwt"
)

// JWTIdentity implementa ports.Identity leyendo el claim de rol del token.
// El rol se re-parsea en cada consulta: un SetToken (refresh con otro claim)
// cambia el rol vigente sin reiniciar nada.
type JWTIdentity struct {
	secret string

	mu    sync.Mutex
	token string
}

// NewJWT construye la identidad con el secreto de verificación y el token
// inicial (puede ser vacío: sin sesión).
func NewJWT(secret, token string) *JWTIdentity {
	return &JWTIdentity{secret: secret, token: token}
}

// SetToken reemplaza el token vigente (refresh de sesión).
func (i *JWTIdentity) SetToken(token string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.token = token
}

// Credential devuelve el token para el almacén remoto; vacío es
// ErrAuthRequired, no un fallo genérico.
func (i *JWTIdentity) Credential() (string, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.token == "" {
		return "", domain.ErrAuthRequired
	}
	return i.token, nil
}

// Role valida el token y devuelve el rol del claim.
func (i *JWTIdentity) Role() (access.Role, error) {
	i.mu.Lock()
	token := i.token
	i.mu.Unlock()
	if token == "" {
		return 0, domain.ErrAuthRequired
	}
	_, roleClaim, err := pkgjwt.Parse(i.secret, token)
	if err != nil {
		return 0, domain.ErrAuthRequired
	}
	role, err := access.ParseRole(roleClaim)
	if err != nil {
		return 0, domain.ErrForbidden
	}
	return role, nil
}
