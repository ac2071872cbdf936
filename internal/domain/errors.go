package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrInvalidMovement movimiento mal formado: cantidad no positiva o combinación
	// origen/destino incompatible con su tipo. Se rechaza antes de cualquier escritura.
	ErrInvalidMovement = errors.New("movimiento inválido")

	// ErrFullDayConflict reasignación jornada completa -> jornada completa sin force.
	// Recuperable: el caller puede reintentar con force.
	ErrFullDayConflict = errors.New("conflicto de asignación de jornada completa")

	// ErrAlreadyFinalized el inventario ya está cerrado; hay que abrir uno nuevo.
	ErrAlreadyFinalized = errors.New("el inventario ya está finalizado")

	// ErrInvalidLocationKind la ubicación existe pero no es del tipo esperado
	// (p.ej. asignar un turno contra el almacén central en vez de una furgoneta).
	ErrInvalidLocationKind = errors.New("tipo de ubicación inválido para la operación")

	// ErrLocationInUse la ubicación tiene movimientos referenciados y no puede borrarse.
	ErrLocationInUse = errors.New("la ubicación tiene movimientos y no puede eliminarse")
)
