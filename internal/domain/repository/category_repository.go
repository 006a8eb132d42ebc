package repository

import "github.com/jhoicas/estocare-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Todas las lecturas ordinarias excluyen filas con borrado lógico; un resultado
// ausente se señala con (nil, nil) sin distinguir "nunca existió" de "borrada".
type CategoryRepository interface {
	// Create inserta la categoría y puebla el ID asignado por la base.
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	// Update persiste todos los campos; devuelve domain.ErrNotFound si no hay fila con ese ID.
	Update(category *entity.Category) error
	// Delete marca la entidad como borrada y la persiste (conveniencia sobre MarkDeleted + Update).
	Delete(category *entity.Category) error
	// GetByIDAny ignora el filtro de visibilidad. Solo para la guarda de borrado
	// y verificaciones administrativas; nunca para lecturas ordinarias.
	GetByIDAny(id int64) (*entity.Category, error)
}
