// Package resource implementa la caché genérica de sincronización de
// colecciones: un contrato uniforme de lectura y mutación por tipo de
// entidad sobre el almacén remoto de listas, con la garantía de que ningún
// consumidor observa escrituras de una suscripción desmontada o superada.
//
// Contratos por operación (asimetría intencional, no unificar):
//   - Create refetcha la colección completa: la siguiente lectura refleja los
//     campos asignados por el servidor (id, columnas calculadas).
//   - Update parchea el ítem en memoria por id con el registro que devuelve
//     el almacén (parche optimista): cambia frescura por respuesta; quien
//     necesite datos autoritativos llama Refresh explícitamente.
//
// El chequeo de permisos es responsabilidad del llamador (motor access);
// aquí no se consulta la matriz.
package resource

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/Repuestos-sync/internal/application/ports"
	"github.com/jhoicas/Repuestos-sync/internal/domain"
	"github.com/jhoicas/Repuestos-sync/internal/domain/entity"
	"github.com/jhoicas/Repuestos-sync/pkg/logger"
)

// Cache sincroniza una colección tipada contra el almacén remoto. Cada
// instancia posee su propia copia de la colección; dos instancias del mismo
// tipo de entidad divergen hasta su siguiente refresh.
type Cache[T entity.Record] struct {
	name   string
	store  ports.ListStore[T]
	notify ports.Notifier
	log    *logger.Logger

	mu       sync.Mutex
	query    ports.Query
	state    CollectionState[T]
	closed   bool
	gen      uint64 // generación de carga: la última emitida gana
	onChange func(CollectionState[T])
}

// NewCache construye la caché para una colección. name identifica la
// colección en logs y notificaciones (ej. "repuestos", "facturas").
func NewCache[T entity.Record](name string, store ports.ListStore[T], notify ports.Notifier, log *logger.Logger) *Cache[T] {
	if notify == nil {
		notify = ports.NopNotifier{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Cache[T]{
		name:   name,
		store:  store,
		notify: notify,
		log:    log,
		state:  CollectionState[T]{Items: []T{}, Phase: PhaseIdle},
	}
}

// SetQuery fija las opciones de consulta usadas por Load/Refresh.
func (c *Cache[T]) SetQuery(q ports.Query) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = q
}

// OnChange registra el callback de suscripción: se invoca con un snapshot
// tras cada transición de estado. No se invoca tras Close.
func (c *Cache[T]) OnChange(fn func(CollectionState[T])) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// State devuelve un snapshot del estado actual (copia propia del slice).
func (c *Cache[T]) State() CollectionState[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Close desmonta la instancia. Las resoluciones pendientes se observan pero
// sus resultados se descartan: después de Close no ocurre ninguna escritura
// de estado ni invocación del callback. Es la única primitiva de cancelación;
// no se cancela la llamada remota en sí.
func (c *Cache[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.onChange = nil
}

// Load trae la colección completa (con las opciones de consulta vigentes).
// Marca Loading al entrar; al completar fija Items y limpia Loading/Err, o
// registra el error. Cargas solapadas: gana la última emitida (contador de
// generación monotónico); una resolución superada o posterior al desmontaje
// se descarta sin efecto observable y sin error.
func (c *Cache[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return domain.ErrClosed
	}
	c.gen++
	gen := c.gen
	c.state.Loading = true
	c.state.Phase = PhaseLoading
	c.state.Err = nil
	c.emitLocked()
	query := c.query
	c.mu.Unlock()

	items, err := c.store.List(ctx, query)

	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		c.log.Debug().Str("coleccion", c.name).Msg("carga descartada: instancia desmontada o carga superada")
		return nil
	}
	defer c.mu.Unlock()
	c.state.Loading = false
	if err != nil {
		c.state.Err = err
		c.state.Phase = PhaseFailed
		c.emitLocked()
		c.notify.NotifyError(fmt.Sprintf("no se pudo cargar %s", c.name))
		return fmt.Errorf("cargar %s: %w", c.name, err)
	}
	if items == nil {
		items = []T{}
	}
	c.state.Items = items
	c.state.Err = nil
	c.state.Phase = PhaseReady
	c.emitLocked()
	c.log.Debug().Str("coleccion", c.name).Int("items", len(items)).Msg("colección cargada")
	return nil
}

// Refresh es alias de Load: marca intención explícita de re-sincronizar con
// la fuente de verdad.
func (c *Cache[T]) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

// Create crea el registro en el almacén y, si tiene éxito, dispara un Load
// completo en lugar de un empalme local: la siguiente lectura refleja los
// campos asignados por el servidor. Devuelve el registro creado tal como lo
// devolvió el almacén.
func (c *Cache[T]) Create(ctx context.Context, data T) (T, error) {
	var zero T
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return zero, domain.ErrClosed
	}
	c.mu.Unlock()

	created, err := c.store.Create(ctx, data)
	if err != nil {
		c.recordFailure(fmt.Sprintf("no se pudo crear en %s", c.name), err)
		return zero, fmt.Errorf("crear en %s: %w", c.name, err)
	}
	c.notify.NotifySuccess("registro creado")
	if err := c.Load(ctx); err != nil {
		return created, err
	}
	return created, nil
}

// Update actualiza el registro en el almacén y parchea el ítem en memoria
// por id con el registro devuelto (parche optimista): no refetcha. Se
// rechaza con ErrConflict si hay un Load en vuelo sobre esta instancia.
func (c *Cache[T]) Update(ctx context.Context, id string, data T) (T, error) {
	var zero T
	if err := c.guardPatch(); err != nil {
		return zero, err
	}

	updated, err := c.store.Update(ctx, id, data)
	if err != nil {
		c.recordFailure(fmt.Sprintf("no se pudo actualizar en %s", c.name), err)
		return zero, fmt.Errorf("actualizar en %s: %w", c.name, err)
	}

	c.mu.Lock()
	// Un Load emitido mientras el parche estaba en vuelo trae el estado
	// autoritativo: parchear aquí dejaría una escritura que esa carga puede
	// pisar sin orden garantizado. El registro actualizado se devuelve igual;
	// la mutación remota ya ocurrió.
	if c.closed || c.state.Loading {
		c.mu.Unlock()
		return updated, nil
	}
	for i := range c.state.Items {
		if c.state.Items[i].EntityID() == id {
			c.state.Items[i] = updated
			break
		}
	}
	c.emitLocked()
	c.mu.Unlock()
	c.notify.NotifySuccess("registro actualizado")
	return updated, nil
}

// Delete borra el registro en el almacén y lo retira de la copia local.
// Mismo rechazo que Update durante un Load en vuelo.
func (c *Cache[T]) Delete(ctx context.Context, id string) error {
	if err := c.guardPatch(); err != nil {
		return err
	}
	if err := c.store.Delete(ctx, id); err != nil {
		c.recordFailure(fmt.Sprintf("no se pudo eliminar en %s", c.name), err)
		return fmt.Errorf("eliminar en %s: %w", c.name, err)
	}
	c.removeLocal(map[string]bool{id: true})
	c.notify.NotifySuccess("registro eliminado")
	return nil
}

// DeleteMultiple borra un lote. NO es atómico: cada elemento tiene resultado
// independiente y el reporte distingue éxito parcial de fallo total.
// Localmente se retiran exactamente los que el almacén confirmó borrados.
func (c *Cache[T]) DeleteMultiple(ctx context.Context, ids []string) (ports.BatchResult, error) {
	if err := c.guardPatch(); err != nil {
		return ports.BatchResult{}, err
	}
	result, err := c.store.DeleteBatch(ctx, ids)
	if err != nil {
		c.recordFailure(fmt.Sprintf("no se pudo eliminar el lote en %s", c.name), err)
		return ports.BatchResult{}, fmt.Errorf("eliminar lote en %s: %w", c.name, err)
	}

	failed := make(map[string]bool, len(result.Errors))
	for _, e := range result.Errors {
		failed[e.ID] = true
	}
	removed := make(map[string]bool, result.Succeeded)
	for _, id := range ids {
		if !failed[id] {
			removed[id] = true
		}
	}
	c.removeLocal(removed)

	switch {
	case result.Failed == 0:
		c.notify.NotifySuccess(fmt.Sprintf("%d registros eliminados", result.Succeeded))
	case result.Succeeded == 0:
		c.notify.NotifyError("no se eliminó ningún registro del lote")
	default:
		c.notify.NotifyError(fmt.Sprintf("lote parcial: %d eliminados, %d fallidos", result.Succeeded, result.Failed))
	}
	return result, nil
}

// guardPatch valida que la instancia acepte una operación de parche:
// rechaza tras Close y, por política documentada, durante un Load en vuelo
// (encolar exigiría garantías de orden que el almacén remoto no da). La
// condición se re-chequea al retomar el lock para aplicar el parche: un Load
// emitido en la ventana entre esta guarda y la resolución remota también
// descarta la escritura local.
func (c *Cache[T]) guardPatch() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domain.ErrClosed
	}
	if c.state.Loading {
		return fmt.Errorf("%s: %w", c.name, domain.ErrConflict)
	}
	return nil
}

// recordFailure registra el fallo remoto en el estado (canal lateral del
// último error) y lo notifica; la colección en memoria queda intacta.
func (c *Cache[T]) recordFailure(message string, err error) {
	c.mu.Lock()
	if !c.closed {
		c.state.Err = err
		c.emitLocked()
	}
	c.mu.Unlock()
	c.notify.NotifyError(message)
	c.log.Warn().Str("coleccion", c.name).Err(err).Msg("operación remota fallida")
}

// removeLocal retira de la copia local los ids indicados.
func (c *Cache[T]) removeLocal(ids map[string]bool) {
	if len(ids) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.state.Loading {
		return
	}
	kept := c.state.Items[:0]
	for _, item := range c.state.Items {
		if !ids[item.EntityID()] {
			kept = append(kept, item)
		}
	}
	c.state.Items = kept
	c.emitLocked()
}

// emitLocked invoca el callback con un snapshot. Se llama con el lock
// tomado; el callback no debe volver a entrar en la caché.
func (c *Cache[T]) emitLocked() {
	if c.onChange != nil {
		c.onChange(c.state.clone())
	}
}
