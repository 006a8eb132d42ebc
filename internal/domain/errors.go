package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los fallos de validación de las entidades envuelven ErrInvalidInput vía fmt.Errorf("%w: ...").
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrDuplicate      = errors.New("ya existe un registro con ese nombre")
	ErrAlreadyDeleted = errors.New("el registro ya fue eliminado")
	ErrInvalidInput   = errors.New("entrada inválida")
)
