// Package ports define los puertos de salida del núcleo de sincronización
// (DIP): el almacén remoto de listas, las notificaciones y la identidad.
package ports

import (
	"context"

	"github.com/jhoicas/Repuestos-sync/internal/domain/entity"
)

// Query opciones de consulta para listados del almacén remoto.
type Query struct {
	Filter  map[string]string
	OrderBy string
	Limit   int
	Offset  int
}

// BatchError resultado individual de un borrado fallido dentro de un lote.
// Lleva el ID para que el llamador sepa exactamente qué quedó sin borrar.
type BatchError struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// BatchResult reporte de fallo parcial de un borrado por lotes. Un lote de N
// no es atómico: cada elemento tiene resultado independiente y el llamador
// debe distinguir éxito parcial de fallo total.
type BatchResult struct {
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
	Errors    []BatchError `json:"errors"`
}

// ListStore define el puerto del almacén remoto de listas para una colección
// tipada. Toda llamada exige credencial del llamador; sin credencial la
// implementación devuelve domain.ErrAuthRequired de inmediato, sin tocar la
// red. El transporte y el esquema son asunto del colaborador externo.
type ListStore[T entity.Record] interface {
	List(ctx context.Context, q Query) ([]T, error)
	Create(ctx context.Context, data T) (T, error)
	Update(ctx context.Context, id string, data T) (T, error)
	Delete(ctx context.Context, id string) error
	DeleteBatch(ctx context.Context, ids []string) (BatchResult, error)
}
