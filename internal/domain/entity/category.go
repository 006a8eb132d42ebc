package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/estocare-api/internal/domain"
)

// maxCategoryNameLen límite de la columna name en categories (varchar(100)).
const maxCategoryNameLen = 100

// Category agrupa productos. El nombre es único entre categorías no borradas.
type Category struct {
	Base
	Name string
}

// NewCategory construye una categoría válida o devuelve domain.ErrInvalidInput.
// Nunca entrega una entidad a medio construir.
func NewCategory(name string) (*Category, error) {
	c := &Category{Base: newBase(time.Now())}
	if err := c.setName(name); err != nil {
		return nil, err
	}
	return c, nil
}

// Rename valida y actualiza el nombre, refrescando UpdatedAt.
// Si la validación falla la entidad queda intacta, incluido el timestamp.
func (c *Category) Rename(newName string) error {
	if err := c.setName(newName); err != nil {
		return err
	}
	c.touch()
	return nil
}

func (c *Category) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: el nombre de la categoría no puede estar vacío", domain.ErrInvalidInput)
	}
	if len(name) > maxCategoryNameLen {
		return fmt.Errorf("%w: el nombre de la categoría supera los %d caracteres", domain.ErrInvalidInput, maxCategoryNameLen)
	}
	c.Name = name
	return nil
}
