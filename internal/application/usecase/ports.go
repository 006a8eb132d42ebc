package usecase

import (
	"context"

	"github.com/jhoicas/estocare-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Las escrituras leer-luego-escribir de los
// casos de uso corren dentro de ella para que nunca se observe un estado
// validado pero no persistido.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		categories repository.CategoryRepository,
		products repository.ProductRepository,
	) error) error
}
