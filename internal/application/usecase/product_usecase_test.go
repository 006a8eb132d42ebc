package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estocare-api/internal/application/dto"
	"github.com/jhoicas/estocare-api/internal/application/usecase"
	"github.com/jhoicas/estocare-api/internal/domain"
)

// buildProductUC arma el caso de uso con una categoría ya sembrada (ID 1).
func buildProductUC(t *testing.T) (*usecase.ProductUseCase, *fakeProductRepo) {
	t.Helper()
	cats := newFakeCategoryRepo()
	prods := newFakeProductRepo()
	tx := &fakeTxRunner{cats: cats, prods: prods}

	catUC := usecase.NewCategoryUseCase(cats, tx)
	_, err := catUC.Create(context.Background(), dto.CreateCategoryRequest{Name: "General"})
	require.NoError(t, err)

	return usecase.NewProductUseCase(prods, tx), prods
}

func createProductRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:        "A",
		Description: "producto de prueba",
		Price:       decimal.NewFromInt(10),
		Stock:       5,
		CategoryID:  1,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_OK(t *testing.T) {
	uc, _ := buildProductUC(t)

	out, err := uc.Create(context.Background(), createProductRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 5, out.Stock)
	assert.Equal(t, int64(1), out.CategoryID)
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	uc, prods := buildProductUC(t)

	in := createProductRequest()
	in.CategoryID = 99
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"referenciar una categoría inexistente es un error de validación")
	assert.Empty(t, prods.items)
}

func TestProductCreate_NombreDuplicado(t *testing.T) {
	uc, _ := buildProductUC(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, createProductRequest())
	require.NoError(t, err)

	_, err = uc.Create(ctx, createProductRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_PrecioInvalido(t *testing.T) {
	uc, _ := buildProductUC(t)

	in := createProductRequest()
	in.Price = decimal.Zero
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: la validación fallida no persiste nada
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_PrecioNegativoPreservaEstado(t *testing.T) {
	uc, _ := buildProductUC(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, createProductRequest())
	require.NoError(t, err)

	in := dto.UpdateProductRequest{
		Name:        "A",
		Description: "producto de prueba",
		Price:       decimal.NewFromInt(-1),
		Stock:       5,
		CategoryID:  1,
	}
	err = uc.Update(ctx, out.ID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := uc.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(10)),
		"el precio almacenado debe seguir siendo 10 tras el update rechazado")
}

func TestProductUpdate_Ausente(t *testing.T) {
	uc, _ := buildProductUC(t)

	in := dto.UpdateProductRequest{
		Name:        "X",
		Description: "desc",
		Price:       decimal.NewFromInt(1),
		Stock:       0,
		CategoryID:  1,
	}
	err := uc.Update(context.Background(), 42, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_CambiaCategoriaVerificandoExistencia(t *testing.T) {
	uc, _ := buildProductUC(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, createProductRequest())
	require.NoError(t, err)

	in := dto.UpdateProductRequest{
		Name:        "A",
		Description: "producto de prueba",
		Price:       decimal.NewFromInt(10),
		Stock:       5,
		CategoryID:  7, // no existe
	}
	err = uc.Update(ctx, out.ID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := uc.GetByID(out.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.CategoryID, "la categoría no debe cambiar si el destino no existe")
}

func TestProductUpdate_Completo(t *testing.T) {
	uc, _ := buildProductUC(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, createProductRequest())
	require.NoError(t, err)

	in := dto.UpdateProductRequest{
		Name:        "A+",
		Description: "mejorado",
		Price:       decimal.NewFromFloat(12.50),
		Stock:       3,
		CategoryID:  1,
	}
	require.NoError(t, uc.Update(ctx, out.ID, in))

	got, err := uc.GetByID(out.ID)
	require.NoError(t, err)
	assert.Equal(t, "A+", got.Name)
	assert.Equal(t, "mejorado", got.Description)
	assert.True(t, got.Price.Equal(decimal.NewFromFloat(12.50)))
	assert.Equal(t, 3, got.Stock)
	assert.False(t, got.UpdatedAt.Before(out.UpdatedAt))
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete y visibilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestProductDelete_NuncaCreado(t *testing.T) {
	uc, _ := buildProductUC(t)
	err := uc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_Idempotencia(t *testing.T) {
	uc, prods := buildProductUC(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, createProductRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, out.ID))
	assert.ErrorIs(t, uc.Delete(ctx, out.ID), domain.ErrAlreadyDeleted)

	row, err := prods.GetByIDAny(out.ID)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.True(t, row.IsDeleted, "IsDeleted queda en true pase lo que pase después")
}

func TestProductListByCategory(t *testing.T) {
	uc, _ := buildProductUC(t)
	ctx := context.Background()

	first := createProductRequest()
	_, err := uc.Create(ctx, first)
	require.NoError(t, err)

	second := createProductRequest()
	second.Name = "B"
	out, err := uc.Create(ctx, second)
	require.NoError(t, err)
	require.NoError(t, uc.Delete(ctx, out.ID))

	list, err := uc.ListByCategory(1)
	require.NoError(t, err)
	require.Len(t, list, 1, "los borrados no aparecen por categoría")
	assert.Equal(t, "A", list[0].Name)
}
