package usecase

import (
	"context"

	"github.com/jhoicas/estocare-api/internal/application/dto"
	"github.com/jhoicas/estocare-api/internal/domain"
	"github.com/jhoicas/estocare-api/internal/domain/entity"
	"github.com/jhoicas/estocare-api/internal/domain/repository"
)

// CategoryUseCase aplica reglas de negocio para categorías: unicidad del
// nombre entre no borradas, guardas de existencia y de borrado idempotente.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	tx   TxRunner
}

// NewCategoryUseCase construye el caso de uso con el puerto de persistencia y el runner transaccional.
func NewCategoryUseCase(repo repository.CategoryRepository, tx TxRunner) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, tx: tx}
}

// List lista todas las categorías no borradas.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// GetByID obtiene una categoría por ID. Ausente (o borrada) devuelve (nil, nil).
func (uc *CategoryUseCase) GetByID(id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// GetByName obtiene una categoría por nombre. Ausente devuelve (nil, nil).
func (uc *CategoryUseCase) GetByName(name string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// Create crea una categoría. Devuelve domain.ErrDuplicate si ya existe una no
// borrada con ese nombre; un nombre de categoría borrada sí puede reutilizarse.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := entity.NewCategory(in.Name)
	if err != nil {
		return nil, err
	}
	err = uc.tx.Run(ctx, func(categories repository.CategoryRepository, _ repository.ProductRepository) error {
		existing, err := categories.GetByName(category.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		return categories.Create(category)
	})
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update renombra una categoría existente. Devuelve domain.ErrNotFound si no
// hay categoría visible con ese ID y domain.ErrInvalidInput si el nombre no pasa validación.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.UpdateCategoryRequest) error {
	return uc.tx.Run(ctx, func(categories repository.CategoryRepository, _ repository.ProductRepository) error {
		category, err := categories.GetByID(id)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}
		if err := category.Rename(in.Name); err != nil {
			return err
		}
		return categories.Update(category)
	})
}

// Delete borra lógicamente una categoría. Devuelve domain.ErrNotFound si nunca
// existió y domain.ErrAlreadyDeleted si ya estaba borrada (estado terminal).
// No cascada a los productos de la categoría.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	return uc.tx.Run(ctx, func(categories repository.CategoryRepository, _ repository.ProductRepository) error {
		category, err := categories.GetByIDAny(id)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}
		if category.IsDeleted {
			return domain.ErrAlreadyDeleted
		}
		category.MarkDeleted()
		return categories.Update(category)
	})
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
