package entity

import "time"

// Base campos comunes a todas las entidades del dominio: identidad, timestamps
// y borrado lógico. Se embebe por composición en cada agregado.
// El ID lo asigna la base de datos al insertar y es inmutable después.
type Base struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	IsDeleted bool
}

// newBase inicializa los timestamps de una entidad recién construida.
// CreatedAt == UpdatedAt hasta la primera mutación.
func newBase(now time.Time) Base {
	return Base{CreatedAt: now, UpdatedAt: now}
}

// touch refresca UpdatedAt tras una mutación exitosa. CreatedAt nunca cambia.
func (b *Base) touch() {
	b.UpdatedAt = time.Now()
}

// MarkDeleted marca la entidad como borrada (borrado lógico) y refresca UpdatedAt.
// No valida el estado previo: la guarda de idempotencia vive en el caso de uso.
func (b *Base) MarkDeleted() {
	b.IsDeleted = true
	b.touch()
}
