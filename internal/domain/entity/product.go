package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estocare-api/internal/domain"
)

// Límites de columnas en products (varchar(200) / varchar(1000)).
const (
	maxProductNameLen        = 200
	maxProductDescriptionLen = 1000
)

// Product producto del catálogo, asociado a una categoría existente.
// Price usa decimal (numeric(18,2) en la base) para evitar redondeos binarios.
// CategoryID queda en 0 si la categoría fue removida físicamente (FK set-null);
// el borrado lógico de una categoría no toca sus productos.
type Product struct {
	Base
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	CategoryID    int64
}

// NewProduct construye un producto válido o devuelve domain.ErrInvalidInput.
// Valida todos los campos antes de entregar la entidad.
func NewProduct(name, description string, price decimal.Decimal, stockQuantity int, categoryID int64) (*Product, error) {
	p := &Product{Base: newBase(time.Now())}
	if err := p.setName(name); err != nil {
		return nil, err
	}
	if err := p.setDescription(description); err != nil {
		return nil, err
	}
	if err := p.setPrice(price); err != nil {
		return nil, err
	}
	if err := p.setStockQuantity(stockQuantity); err != nil {
		return nil, err
	}
	if err := p.setCategory(categoryID); err != nil {
		return nil, err
	}
	return p, nil
}

// Rename valida y actualiza el nombre, refrescando UpdatedAt.
func (p *Product) Rename(newName string) error {
	if err := p.setName(newName); err != nil {
		return err
	}
	p.touch()
	return nil
}

// UpdateDescription valida y actualiza la descripción, refrescando UpdatedAt.
func (p *Product) UpdateDescription(newDescription string) error {
	if err := p.setDescription(newDescription); err != nil {
		return err
	}
	p.touch()
	return nil
}

// UpdatePrice valida y actualiza el precio, refrescando UpdatedAt.
// Con precio inválido la entidad queda intacta, incluido el timestamp.
func (p *Product) UpdatePrice(newPrice decimal.Decimal) error {
	if err := p.setPrice(newPrice); err != nil {
		return err
	}
	p.touch()
	return nil
}

// UpdateStockQuantity valida y actualiza el stock, refrescando UpdatedAt.
func (p *Product) UpdateStockQuantity(newQuantity int) error {
	if err := p.setStockQuantity(newQuantity); err != nil {
		return err
	}
	p.touch()
	return nil
}

// MoveToCategory valida y actualiza la categoría, refrescando UpdatedAt.
// La existencia de la categoría destino la verifica el caso de uso.
func (p *Product) MoveToCategory(categoryID int64) error {
	if err := p.setCategory(categoryID); err != nil {
		return err
	}
	p.touch()
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: el nombre del producto no puede estar vacío", domain.ErrInvalidInput)
	}
	if len(name) > maxProductNameLen {
		return fmt.Errorf("%w: el nombre del producto supera los %d caracteres", domain.ErrInvalidInput, maxProductNameLen)
	}
	p.Name = name
	return nil
}

func (p *Product) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return fmt.Errorf("%w: la descripción del producto no puede estar vacía", domain.ErrInvalidInput)
	}
	if len(description) > maxProductDescriptionLen {
		return fmt.Errorf("%w: la descripción del producto supera los %d caracteres", domain.ErrInvalidInput, maxProductDescriptionLen)
	}
	p.Description = description
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: el precio del producto debe ser mayor que cero", domain.ErrInvalidInput)
	}
	p.Price = price
	return nil
}

func (p *Product) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return fmt.Errorf("%w: el stock del producto no puede ser negativo", domain.ErrInvalidInput)
	}
	p.StockQuantity = stockQuantity
	return nil
}

func (p *Product) setCategory(categoryID int64) error {
	if categoryID <= 0 {
		return fmt.Errorf("%w: el identificador de la categoría debe ser positivo", domain.ErrInvalidInput)
	}
	p.CategoryID = categoryID
	return nil
}
