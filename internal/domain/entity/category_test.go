package entity_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estocare-api/internal/domain"
	"github.com/jhoicas/estocare-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Construcción
// ──────────────────────────────────────────────────────────────────────────────

func TestNewCategory_Valida(t *testing.T) {
	c, err := entity.NewCategory("Bebidas")
	require.NoError(t, err)

	assert.Equal(t, "Bebidas", c.Name)
	assert.False(t, c.IsDeleted, "una categoría nueva no puede nacer borrada")
	assert.False(t, c.CreatedAt.IsZero())
	assert.Equal(t, c.CreatedAt, c.UpdatedAt,
		"CreatedAt y UpdatedAt deben coincidir hasta la primera mutación")
}

func TestNewCategory_NombreVacio(t *testing.T) {
	_, err := entity.NewCategory("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = entity.NewCategory("   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "espacios en blanco no son un nombre")
}

func TestNewCategory_NombreDemasiadoLargo(t *testing.T) {
	_, err := entity.NewCategory(strings.Repeat("x", 101))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// 100 exactos sí es válido
	_, err = entity.NewCategory(strings.Repeat("x", 100))
	assert.NoError(t, err)
}

func TestNewCategory_RecortaEspacios(t *testing.T) {
	c, err := entity.NewCategory("  Lácteos  ")
	require.NoError(t, err)
	assert.Equal(t, "Lácteos", c.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestCategory_Rename_RefrescaUpdatedAt(t *testing.T) {
	c, err := entity.NewCategory("Bebidas")
	require.NoError(t, err)
	before := c.UpdatedAt
	createdAt := c.CreatedAt

	require.NoError(t, c.Rename("Bebidas frías"))

	assert.Equal(t, "Bebidas frías", c.Name)
	assert.False(t, c.UpdatedAt.Before(before), "UpdatedAt nunca retrocede")
	assert.Equal(t, createdAt, c.CreatedAt, "CreatedAt es inmutable")
}

func TestCategory_Rename_InvalidoNoTocaNada(t *testing.T) {
	c, err := entity.NewCategory("Bebidas")
	require.NoError(t, err)
	before := c.UpdatedAt

	err = c.Rename("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Bebidas", c.Name, "la validación fallida no debe mutar el nombre")
	assert.Equal(t, before, c.UpdatedAt, "la validación fallida no debe tocar el timestamp")
}

func TestCategory_MarkDeleted(t *testing.T) {
	c, err := entity.NewCategory("Bebidas")
	require.NoError(t, err)
	before := c.UpdatedAt

	c.MarkDeleted()
	assert.True(t, c.IsDeleted)
	assert.False(t, c.UpdatedAt.Before(before))

	// A nivel de entidad no hay guarda: repetir solo re-estampa el timestamp.
	c.MarkDeleted()
	assert.True(t, c.IsDeleted, "el borrado es terminal")
}

func TestCategory_MonotoniaDeTimestamps(t *testing.T) {
	c, err := entity.NewCategory("Inicial")
	require.NoError(t, err)

	prev := c.UpdatedAt
	for _, name := range []string{"Uno", "Dos", "Tres"} {
		require.NoError(t, c.Rename(name))
		assert.False(t, c.UpdatedAt.Before(prev),
			"cada mutación exitosa deja UpdatedAt >= al valor anterior")
		prev = c.UpdatedAt
	}
	assert.False(t, c.UpdatedAt.Before(c.CreatedAt), "UpdatedAt >= CreatedAt siempre")
}
