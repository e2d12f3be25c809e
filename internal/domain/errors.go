package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Taxonomía: ErrAuthRequired se detecta antes de cualquier llamada remota y
// nunca se reintenta; ErrRemote envuelve fallos del almacén remoto (se
// registran en el estado de la colección y se devuelven una sola vez al
// llamador); el resto son validaciones locales que jamás llegan al almacén.
var (
	ErrAuthRequired      = errors.New("autenticación requerida")
	ErrRemote            = errors.New("operación remota fallida")
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidCategory   = errors.New("categoría inválida")
	ErrClosed            = errors.New("instancia desmontada")
)
