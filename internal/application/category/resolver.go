// Package category reconstruye la relación categoría → familia. El campo de
// categoría de un repuesto es texto libre (limitación de referencias del
// almacén remoto, la "solución híbrida"); este índice en memoria devuelve la
// estructura a partir del snapshot de la lista de categorías.
package category

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"

	"github.com/jhoicas/Repuestos-sync/internal/application/ports"
	"github.com/jhoicas/Repuestos-sync/internal/domain"
	"github.com/jhoicas/Repuestos-sync/internal/domain/entity"
)

// UnknownFamily es el fallback de lectura para categorías presentes en un
// repuesto pero ausentes del snapshot (deriva transitoria de datos). Leer
// nunca falla; escribir sí se rechaza vía ValidateCategory.
const UnknownFamily = "Unknown Family"

// DefaultTTL es la vigencia del índice. Las definiciones de categorías
// cambian mucho menos que los repuestos: el índice NO se invalida con
// mutaciones de repuestos, solo por edad.
const DefaultTTL = 15 * time.Minute

// Clock entrega el instante actual; inyectable para gobernar el TTL en tests.
type Clock func() time.Time

// Resolver es el índice compartido categoría → familia con reconstrucción
// por TTL. Es el único estado pensado como singleton de solo-lectura junto a
// la matriz de permisos; la reconstrucción intercambia el índice completo
// bajo el lock, atómica para cualquier turno síncrono.
type Resolver struct {
	store ports.ListStore[entity.Category]
	ttl   time.Duration
	now   Clock

	mu         sync.Mutex
	loadedAt   time.Time
	populated  bool
	byCategory map[string]string   // clave normalizada → familia
	byFamily   map[string][]string // familia → categorías en orden del snapshot
	families   []string            // orden de primera aparición
}

// NewResolver construye el resolver sobre la lista remota de categorías.
// ttl <= 0 usa DefaultTTL.
func NewResolver(store ports.ListStore[entity.Category], ttl time.Duration) *Resolver {
	return NewResolverWithClock(store, ttl, nil)
}

// NewResolverWithClock construye el resolver con un reloj propio; clock nil
// usa time.Now.
func NewResolverWithClock(store ports.ListStore[entity.Category], ttl time.Duration, clock Clock) *Resolver {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = time.Now
	}
	return &Resolver{
		store: store,
		ttl:   ttl,
		now:   clock,
	}
}

// foldKey normaliza la clave de búsqueda: sin espacios laterales y con
// case folding Unicode (insensible a mayúsculas).
var folder = cases.Fold()

func foldKey(category string) string {
	return folder.String(strings.TrimSpace(category))
}

// Load reconstruye el índice solo si nunca se pobló o si superó el TTL;
// si está vigente no toca la red. Invalidate fuerza la reconstrucción en la
// próxima llamada.
func (r *Resolver) Load(ctx context.Context) error {
	r.mu.Lock()
	if r.populated && r.now().Sub(r.loadedAt) < r.ttl {
		r.mu.Unlock()
		return nil
	}
	r.mu.Unlock()

	list, err := r.store.List(ctx, ports.Query{})
	if err != nil {
		return err
	}

	byCategory := make(map[string]string, len(list))
	byFamily := make(map[string][]string)
	families := make([]string, 0)
	for _, c := range list {
		key := foldKey(c.Name)
		if key == "" {
			continue
		}
		if _, dup := byCategory[key]; dup {
			continue // primera definición gana
		}
		byCategory[key] = c.Family
		if _, seen := byFamily[c.Family]; !seen {
			families = append(families, c.Family)
		}
		byFamily[c.Family] = append(byFamily[c.Family], strings.TrimSpace(c.Name))
	}

	r.mu.Lock()
	r.byCategory = byCategory
	r.byFamily = byFamily
	r.families = families
	r.loadedAt = r.now()
	r.populated = true
	r.mu.Unlock()
	return nil
}

// Invalidate descarta el índice: el próximo Load reconstruye sí o sí.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.populated = false
}

// FamilyByCategory devuelve la familia de la categoría, o UnknownFamily si
// la categoría no está en el snapshot vigente. Nunca falla: las rutas de
// presentación degradan, no rompen.
func (r *Resolver) FamilyByCategory(category string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if family, ok := r.byCategory[foldKey(category)]; ok {
		return family
	}
	return UnknownFamily
}

// ValidateCategory informa si la categoría existe en el índice vigente.
// Es la puerta autoritativa en escritura: un repuesto con categoría fuera
// del snapshot se acepta en lectura pero se rechaza aquí al guardar.
func (r *Resolver) ValidateCategory(category string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.byCategory[foldKey(category)]
	return ok
}

// EnsureValid devuelve ErrInvalidCategory si la categoría no existe en el
// índice vigente. Es la forma con error de ValidateCategory, para las rutas
// de guardado que propagan la taxonomía de dominio.
func (r *Resolver) EnsureValid(category string) error {
	if !r.ValidateCategory(category) {
		return fmt.Errorf("%q: %w", category, domain.ErrInvalidCategory)
	}
	return nil
}

// CategoriesInFamily devuelve las categorías de la familia en el orden del
// snapshot. Familia desconocida devuelve secuencia vacía, no error.
func (r *Resolver) CategoriesInFamily(family string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	src := r.byFamily[family]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Families devuelve las familias conocidas en orden de primera aparición.
func (r *Resolver) Families() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.families))
	copy(out, r.families)
	return out
}

// Age devuelve la edad del índice y si alguna vez se pobló.
func (r *Resolver) Age() (time.Duration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.populated {
		return 0, false
	}
	return r.now().Sub(r.loadedAt), true
}
