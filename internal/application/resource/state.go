package resource

// Phase es la fase del ciclo de vida de una colección:
// Idle → Loading → {Ready, Failed}. Ready y Failed vuelven a Loading con
// cualquier Load/Create/Refresh; Update/Delete no pasan por Loading (son
// parches sobre una colección ya Ready).
type Phase string

// Fases de la colección.
const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseFailed  Phase = "failed"
)

// CollectionState es el estado observable de una colección sincronizada.
// Invariante: Loading=false y Err=nil implican que Items refleja el último
// fetch o refresh exitoso. Cada snapshot es una copia propia: dos instancias
// de caché nunca comparten el slice aunque sean del mismo tipo de entidad.
type CollectionState[T any] struct {
	Items   []T
	Loading bool
	Err     error
	Phase   Phase
}

// clone devuelve una copia defensiva del estado (el slice no se comparte).
func (s CollectionState[T]) clone() CollectionState[T] {
	out := s
	out.Items = make([]T, len(s.Items))
	copy(out.Items, s.Items)
	return out
}
