package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrConflict      = errors.New("conflicto con el estado actual")
	ErrNoValidLines  = errors.New("se requiere al menos una línea válida con SKU y peso")
	ErrNoBranch      = errors.New("sin sucursal (branch_id) especificada")
	ErrStoreTimeout  = errors.New("no hay respuesta del servidor (timeout)")
)
