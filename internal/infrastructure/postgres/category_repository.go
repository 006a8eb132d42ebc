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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// notDeleted predicado de visibilidad: toda lectura ordinaria lo lleva de
// forma explícita en el SQL (no hay filtro global ambiente).
const notDeleted = "is_deleted = FALSE"

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create inserta la categoría y puebla el ID asignado por la base.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (name, created_at, updated_at, is_deleted)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		category.Name, category.CreatedAt, category.UpdatedAt, category.IsDeleted,
	).Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría no borrada por ID. Ausente devuelve (nil, nil).
func (r *CategoryRepo) GetByID(id int64) (*entity.Category, error) {
	query := `
		SELECT id, name, created_at, updated_at, is_deleted
		FROM categories WHERE id = $1 AND ` + notDeleted
	return r.scanOne(query, id)
}

// GetByName obtiene una categoría no borrada por nombre (chequeo de unicidad del caso de uso).
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	query := `
		SELECT id, name, created_at, updated_at, is_deleted
		FROM categories WHERE name = $1 AND ` + notDeleted
	return r.scanOne(query, name)
}

// GetByIDAny obtiene una categoría por ID ignorando el filtro de visibilidad.
func (r *CategoryRepo) GetByIDAny(id int64) (*entity.Category, error) {
	query := `
		SELECT id, name, created_at, updated_at, is_deleted
		FROM categories WHERE id = $1`
	return r.scanOne(query, id)
}

// List lista todas las categorías no borradas en orden de inserción.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	query := `
		SELECT id, name, created_at, updated_at, is_deleted
		FROM categories WHERE ` + notDeleted + ` ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt, &c.IsDeleted); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update persiste todos los campos actuales. Devuelve domain.ErrNotFound si no hay fila con ese ID.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, updated_at = $3, is_deleted = $4
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.UpdatedAt, category.IsDeleted,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete marca la categoría como borrada y la persiste.
func (r *CategoryRepo) Delete(category *entity.Category) error {
	category.MarkDeleted()
	return r.Update(category)
}

func (r *CategoryRepo) scanOne(query string, arg any) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt, &c.IsDeleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}
