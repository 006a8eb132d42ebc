package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/estocare-api/internal/domain"
	"github.com/jhoicas/estocare-api/internal/domain/entity"
	"github.com/jhoicas/estocare-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productColumns columnas en el orden de escaneo. category_id es nullable en
// la base (FK set-null); COALESCE lo trae como 0 cuando la categoría fue
// removida físicamente.
const productColumns = "id, name, description, price, stock_quantity, COALESCE(category_id, 0), created_at, updated_at, is_deleted"

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create inserta el producto y puebla el ID asignado por la base.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, price, stock_quantity, category_id, created_at, updated_at, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Description, product.Price, product.StockQuantity,
		product.CategoryID, product.CreatedAt, product.UpdatedAt, product.IsDeleted,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto no borrado por ID. Ausente devuelve (nil, nil).
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND ` + notDeleted
	return r.scanOne(query, id)
}

// GetByName obtiene un producto no borrado por nombre (chequeo de unicidad del caso de uso).
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1 AND ` + notDeleted
	return r.scanOne(query, name)
}

// GetByIDAny obtiene un producto por ID ignorando el filtro de visibilidad.
func (r *ProductRepo) GetByIDAny(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(query, id)
}

// List lista todos los productos no borrados en orden de inserción.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE ` + notDeleted + ` ORDER BY id`
	return r.scanMany(query)
}

// ListByCategory lista los productos no borrados de la categoría indicada.
func (r *ProductRepo) ListByCategory(categoryID int64) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category_id = $1 AND ` + notDeleted + ` ORDER BY id`
	return r.scanMany(query, categoryID)
}

// Update persiste todos los campos actuales. Devuelve domain.ErrNotFound si no hay fila con ese ID.
// category_id se guarda como NULL cuando la entidad lo trae en 0.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, stock_quantity = $5,
			category_id = NULLIF($6, 0), updated_at = $7, is_deleted = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.StockQuantity,
		product.CategoryID, product.UpdatedAt, product.IsDeleted,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete marca el producto como borrado y lo persiste.
func (r *ProductRepo) Delete(product *entity.Product) error {
	product.MarkDeleted()
	return r.Update(product)
}

func (r *ProductRepo) scanOne(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.StockQuantity,
		&p.CategoryID, &p.CreatedAt, &p.UpdatedAt, &p.IsDeleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepo) scanMany(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.StockQuantity,
			&p.CategoryID, &p.CreatedAt, &p.UpdatedAt, &p.IsDeleted); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
