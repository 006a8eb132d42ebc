package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/estocare-api/internal/application/dto"
	"github.com/jhoicas/estocare-api/internal/domain"
	"github.com/jhoicas/estocare-api/internal/domain/entity"
	"github.com/jhoicas/estocare-api/internal/domain/repository"
)

// ProductUseCase aplica reglas de negocio para productos. Estructuralmente
// idéntico a CategoryUseCase, más la verificación de la categoría referenciada.
type ProductUseCase struct {
	repo repository.ProductRepository
	tx   TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, tx TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx}
}

// List lista todos los productos no borrados.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListByCategory lista los productos no borrados de una categoría.
func (uc *ProductUseCase) ListByCategory(categoryID int64) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// GetByID obtiene un producto por ID. Ausente (o borrado) devuelve (nil, nil).
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// GetByName obtiene un producto por nombre. Ausente devuelve (nil, nil).
func (uc *ProductUseCase) GetByName(name string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Create crea un producto. La categoría referenciada debe existir y estar
// visible; si no, domain.ErrInvalidInput. Nombre duplicado entre no borrados
// devuelve domain.ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product, err := entity.NewProduct(in.Name, in.Description, in.Price, in.Stock, in.CategoryID)
	if err != nil {
		return nil, err
	}
	err = uc.tx.Run(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		if err := requireCategory(categories, product.CategoryID); err != nil {
			return err
		}
		existing, err := products.GetByName(product.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		return products.Create(product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto existente aplicando las mutaciones validadas de
// la entidad. Devuelve domain.ErrNotFound si no hay producto visible con ese ID
// y domain.ErrInvalidInput si algún campo no pasa validación (sin persistir nada).
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) error {
	return uc.tx.Run(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		product, err := products.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := product.Rename(in.Name); err != nil {
			return err
		}
		if err := product.UpdateDescription(in.Description); err != nil {
			return err
		}
		if err := product.UpdatePrice(in.Price); err != nil {
			return err
		}
		if err := product.UpdateStockQuantity(in.Stock); err != nil {
			return err
		}
		if in.CategoryID != product.CategoryID {
			if err := requireCategory(categories, in.CategoryID); err != nil {
				return err
			}
			if err := product.MoveToCategory(in.CategoryID); err != nil {
				return err
			}
		}
		return products.Update(product)
	})
}

// Delete borra lógicamente un producto. Mismas guardas que en categorías:
// domain.ErrNotFound si nunca existió, domain.ErrAlreadyDeleted si ya estaba borrado.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.tx.Run(ctx, func(_ repository.CategoryRepository, products repository.ProductRepository) error {
		product, err := products.GetByIDAny(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.IsDeleted {
			return domain.ErrAlreadyDeleted
		}
		product.MarkDeleted()
		return products.Update(product)
	})
}

// requireCategory verifica que la categoría exista y esté visible.
func requireCategory(categories repository.CategoryRepository, categoryID int64) error {
	category, err := categories.GetByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("%w: la categoría %d no existe", domain.ErrInvalidInput, categoryID)
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.StockQuantity,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}
