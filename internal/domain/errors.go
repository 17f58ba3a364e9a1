package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrEmptyBatch   = errors.New("lote vacío")
	ErrMissingStore = errors.New("store_id requerido en cada registro")
	ErrDuplicateKey = errors.New("clave compuesta duplicada")
	ErrForeignKey   = errors.New("referencia a registro inexistente")
	ErrUnauthorized = errors.New("no autorizado")
)
