package entity

// Record es el contrato mínimo de toda entidad sincronizada con el almacén
// remoto: un identificador estable asignado por el servidor.
type Record interface {
	EntityID() string
}
