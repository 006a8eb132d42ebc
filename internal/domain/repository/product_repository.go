package repository

import "github.com/jhoicas/estocare-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Mismas reglas de visibilidad que CategoryRepository.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	// ListByCategory devuelve los productos no borrados de la categoría indicada.
	ListByCategory(categoryID int64) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(product *entity.Product) error
	GetByIDAny(id int64) (*entity.Product, error)
}
