package usecase_test

import (
	"context"

	"github.com/jhoicas/estocare-api/internal/domain"
	"github.com/jhoicas/estocare-api/internal/domain/entity"
	"github.com/jhoicas/estocare-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. Devuelven copias para imitar una base real: una mutación
// sobre la entidad cargada no se observa hasta pasar por Update.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	seq   int64
	items map[int64]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: make(map[int64]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(category *entity.Category) error {
	for _, c := range r.items {
		if !c.IsDeleted && c.Name == category.Name {
			return domain.ErrDuplicate
		}
	}
	r.seq++
	category.ID = r.seq
	cp := *category
	r.items[category.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	c, ok := r.items[id]
	if !ok || c.IsDeleted {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.items {
		if !c.IsDeleted && c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetByIDAny(id int64) (*entity.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	var list []*entity.Category
	for id := int64(1); id <= r.seq; id++ {
		if c, ok := r.items[id]; ok && !c.IsDeleted {
			cp := *c
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeCategoryRepo) Update(category *entity.Category) error {
	if _, ok := r.items[category.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *category
	r.items[category.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(category *entity.Category) error {
	category.MarkDeleted()
	return r.Update(category)
}

type fakeProductRepo struct {
	seq   int64
	items map[int64]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: make(map[int64]*entity.Product)}
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	for _, p := range r.items {
		if !p.IsDeleted && p.Name == product.Name {
			return domain.ErrDuplicate
		}
	}
	r.seq++
	product.ID = r.seq
	cp := *product
	r.items[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok || p.IsDeleted {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.items {
		if !p.IsDeleted && p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByIDAny(id int64) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	var list []*entity.Product
	for id := int64(1); id <= r.seq; id++ {
		if p, ok := r.items[id]; ok && !p.IsDeleted {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeProductRepo) ListByCategory(categoryID int64) ([]*entity.Product, error) {
	all, _ := r.List()
	var list []*entity.Product
	for _, p := range all {
		if p.CategoryID == categoryID {
			list = append(list, p)
		}
	}
	return list, nil
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	if _, ok := r.items[product.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *product
	r.items[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(product *entity.Product) error {
	product.MarkDeleted()
	return r.Update(product)
}

// fakeTxRunner ejecuta el callback directo sobre los fakes, sin transacción real.
type fakeTxRunner struct {
	cats  *fakeCategoryRepo
	prods *fakeProductRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
) error) error {
	return fn(r.cats, r.prods)
}
