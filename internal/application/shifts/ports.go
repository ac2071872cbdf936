package shifts

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de asignaciones y usuarios atados a esa tx. El resolutor
// bloquea la fila del trabajador como ancla antes de leer las filas del día:
// un (trabajador, fecha) sin asignaciones no tiene filas que bloquear y sin
// ancla dos escritores concurrentes podrían comprometer estados incompatibles.
type TxRunner interface {
	RunShifts(ctx context.Context, fn func(
		shiftRepo repository.ShiftAssignmentRepository,
		userRepo repository.UserRepository,
	) error) error
}
