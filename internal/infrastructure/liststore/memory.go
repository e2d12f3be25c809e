package liststore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Repuestos-sync/internal/application/ports"
	"github.com/jhoicas/Repuestos-sync/internal/domain"
	"github.com/jhoicas/Repuestos-sync/internal/domain/entity"
)

// Stamp estampa id y procedencia en un registro recién creado; cada tipo de
// entidad aporta el suyo porque el almacén en memoria no conoce los campos.
type Stamp[T entity.Record] func(data T, id string, now time.Time) T

// Memory implementa ListStore[T] en memoria: respaldo de los tests y del
// desarrollo sin almacén remoto. Conserva el orden de inserción, como las
// listas del almacén real.
type Memory[T entity.Record] struct {
	mu    sync.Mutex
	items []T
	stamp Stamp[T]

	failDelete map[string]error // fallos inyectados por id
}

// NewMemory construye el almacén en memoria. stamp puede ser nil si los
// registros ya traen id.
func NewMemory[T entity.Record](stamp Stamp[T]) *Memory[T] {
	return &Memory[T]{stamp: stamp, failDelete: make(map[string]error)}
}

// Seed precarga registros tal cual, sin estampar.
func (m *Memory[T]) Seed(items ...T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, items...)
}

// FailDeleteWith hace que Delete(id) devuelva err (para probar lotes con
// fallo parcial).
func (m *Memory[T]) FailDeleteWith(id string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failDelete[id] = err
}

// List devuelve una copia de la colección en orden de inserción. Filtros y
// orden no se aplican aquí: los tests consultan colecciones completas.
func (m *Memory[T]) List(ctx context.Context, q ports.Query) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out, nil
}

// Create estampa id/procedencia y agrega el registro al final.
func (m *Memory[T]) Create(ctx context.Context, data T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stamp != nil {
		data = m.stamp(data, uuid.NewString(), time.Now())
	}
	m.items = append(m.items, data)
	return data, nil
}

// Update reemplaza el registro por id.
func (m *Memory[T]) Update(ctx context.Context, id string, data T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].EntityID() == id {
			m.items[i] = data
			return data, nil
		}
	}
	var zero T
	return zero, domain.ErrNotFound
}

// Delete borra el registro por id (o devuelve el fallo inyectado).
func (m *Memory[T]) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleteLocked(id)
}

func (m *Memory[T]) deleteLocked(id string) error {
	if err, ok := m.failDelete[id]; ok {
		return err
	}
	for i := range m.items {
		if m.items[i].EntityID() == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// DeleteBatch borra elemento por elemento; resultados independientes.
func (m *Memory[T]) DeleteBatch(ctx context.Context, ids []string) (ports.BatchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := ports.BatchResult{Errors: []ports.BatchError{}}
	for _, id := range ids {
		if err := m.deleteLocked(id); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, ports.BatchError{ID: id, Message: err.Error()})
			continue
		}
		result.Succeeded++
	}
	return result, nil
}
