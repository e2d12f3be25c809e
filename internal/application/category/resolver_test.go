package category_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Repuestos-sync/internal/application/category"
	"github.com/jhoicas/Repuestos-sync/internal/application/ports"
	"github.com/jhoicas/Repuestos-sync/internal/domain"
	"github.com/jhoicas/Repuestos-sync/internal/domain/entity"
)

// countingStore implementa ports.ListStore[entity.Category] contando las
// llamadas List para observar cuándo el resolver toca la red.
type countingStore struct {
	mu    sync.Mutex
	list  []entity.Category
	calls int
}

func (s *countingStore) List(ctx context.Context, q ports.Query) ([]entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	out := make([]entity.Category, len(s.list))
	copy(out, s.list)
	return out, nil
}

func (s *countingStore) Create(ctx context.Context, data entity.Category) (entity.Category, error) {
	return data, nil
}

func (s *countingStore) Update(ctx context.Context, id string, data entity.Category) (entity.Category, error) {
	return data, nil
}

func (s *countingStore) Delete(ctx context.Context, id string) error { return nil }

func (s *countingStore) DeleteBatch(ctx context.Context, ids []string) (ports.BatchResult, error) {
	return ports.BatchResult{}, nil
}

func (s *countingStore) listCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func snapshot() []entity.Category {
	return []entity.Category{
		{ID: "c1", Name: "Filtros de aceite", Family: "Filtración"},
		{ID: "c2", Name: "Filtros de aire", Family: "Filtración"},
		{ID: "c3", Name: "Pastillas de freno", Family: "Frenos"},
		{ID: "c4", Name: "  Discos de freno  ", Family: "Frenos"}, // espacios del dato real
	}
}

// fakeClock reloj inyectable para avanzar el TTL sin dormir.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestResolver(store *countingStore, ttl time.Duration) (*category.Resolver, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	return category.NewResolverWithClock(store, ttl, clock.Now), clock
}

// ──────────────────────────────────────────────────────────────────────────────
// Round-trip: toda categoría del snapshot valida y resuelve a familia conocida
// ──────────────────────────────────────────────────────────────────────────────

func TestResolver_RoundTripDelSnapshot(t *testing.T) {
	store := &countingStore{list: snapshot()}
	r, _ := newTestResolver(store, 0)
	require.NoError(t, r.Load(context.Background()))

	families := make(map[string]bool)
	for _, f := range r.Families() {
		families[f] = true
	}
	for _, c := range snapshot() {
		assert.True(t, r.ValidateCategory(c.Name), "la categoría %q debe validar", c.Name)
		family := r.FamilyByCategory(c.Name)
		assert.NotEqual(t, category.UnknownFamily, family, "categoría %q", c.Name)
		assert.True(t, families[family], "la familia %q debe ser conocida", family)
	}
}

func TestResolver_ClaveInsensibleAMayusculasYEspacios(t *testing.T) {
	store := &countingStore{list: snapshot()}
	r, _ := newTestResolver(store, 0)
	require.NoError(t, r.Load(context.Background()))

	assert.Equal(t, "Filtración", r.FamilyByCategory("  FILTROS DE ACEITE "))
	assert.True(t, r.ValidateCategory("filtros de aire"))
	assert.Equal(t, "Frenos", r.FamilyByCategory("discos de freno"),
		"el dato con espacios laterales debe resolverse igual")
}

// ──────────────────────────────────────────────────────────────────────────────
// Deriva de datos: categoría de un repuesto ausente del snapshot
// ──────────────────────────────────────────────────────────────────────────────

func TestResolver_CategoriaAusenteDegradaSinFallar(t *testing.T) {
	store := &countingStore{list: snapshot()}
	r, _ := newTestResolver(store, 0)
	require.NoError(t, r.Load(context.Background()))

	// Lectura: fallback definido, nunca un error.
	assert.Equal(t, category.UnknownFamily, r.FamilyByCategory("Correas"))
	// Escritura: la puerta autoritativa rechaza.
	assert.False(t, r.ValidateCategory("Correas"))
	assert.ErrorIs(t, r.EnsureValid("Correas"), domain.ErrInvalidCategory)
	assert.NoError(t, r.EnsureValid("Filtros de aceite"))
}

func TestResolver_FamiliaDesconocidaDevuelveVacio(t *testing.T) {
	store := &countingStore{list: snapshot()}
	r, _ := newTestResolver(store, 0)
	require.NoError(t, r.Load(context.Background()))

	assert.Empty(t, r.CategoriesInFamily("Suspensión"), "secuencia vacía, no error")
}

func TestResolver_CategoriasEnFamiliaConservanElOrdenDelSnapshot(t *testing.T) {
	store := &countingStore{list: snapshot()}
	r, _ := newTestResolver(store, 0)
	require.NoError(t, r.Load(context.Background()))

	assert.Equal(t, []string{"Filtros de aceite", "Filtros de aire"}, r.CategoriesInFamily("Filtración"))
	assert.Equal(t, []string{"Pastillas de freno", "Discos de freno"}, r.CategoriesInFamily("Frenos"))
	assert.Equal(t, []string{"Filtración", "Frenos"}, r.Families(), "orden de primera aparición")
}

// ──────────────────────────────────────────────────────────────────────────────
// TTL: el índice solo se reconstruye por edad, no por mutaciones ajenas
// ──────────────────────────────────────────────────────────────────────────────

func TestResolver_TTLGobiernaLaReconstruccion(t *testing.T) {
	store := &countingStore{list: snapshot()}
	r, clock := newTestResolver(store, 15*time.Minute)

	require.NoError(t, r.Load(context.Background()))
	assert.Equal(t, 1, store.listCalls())

	// Dentro del TTL: vigente, sin red.
	clock.Advance(14 * time.Minute)
	require.NoError(t, r.Load(context.Background()))
	assert.Equal(t, 1, store.listCalls(), "índice vigente no toca la red")

	// Pasado el TTL: reconstrucción.
	clock.Advance(2 * time.Minute)
	require.NoError(t, r.Load(context.Background()))
	assert.Equal(t, 2, store.listCalls(), "superado el TTL se reconstruye")
}

func TestResolver_InvalidateFuerzaLaProximaReconstruccion(t *testing.T) {
	store := &countingStore{list: snapshot()}
	r, _ := newTestResolver(store, 15*time.Minute)

	require.NoError(t, r.Load(context.Background()))
	r.Invalidate()
	require.NoError(t, r.Load(context.Background()))
	assert.Equal(t, 2, store.listCalls())
}

func TestResolver_AgeReportaEdadYPoblado(t *testing.T) {
	store := &countingStore{list: snapshot()}
	r, clock := newTestResolver(store, 15*time.Minute)

	_, populated := r.Age()
	assert.False(t, populated, "antes del primer Load no hay índice")

	require.NoError(t, r.Load(context.Background()))
	clock.Advance(3 * time.Minute)
	age, populated := r.Age()
	assert.True(t, populated)
	assert.Equal(t, 3*time.Minute, age)
}

// La primera definición de una clave duplicada gana; la duplicada no parte
// la familia.
func TestResolver_DefinicionDuplicadaGanaLaPrimera(t *testing.T) {
	list := append(snapshot(), entity.Category{ID: "c9", Name: "filtros de ACEITE", Family: "Motor"})
	store := &countingStore{list: list}
	r, _ := newTestResolver(store, 0)
	require.NoError(t, r.Load(context.Background()))

	assert.Equal(t, "Filtración", r.FamilyByCategory("Filtros de aceite"))
	assert.NotContains(t, r.Families(), "Motor")
}
