package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ShiftAssignmentRepository define el puerto de persistencia de asignaciones de turno (DIP).
// La PK compuesta (worker_id, date, shift) vive en la tabla; el resolutor de conflictos
// trabaja sobre las filas del día bloqueadas con ForUpdate.
type ShiftAssignmentRepository interface {
	Get(ctx context.Context, workerID string, date time.Time, shift string) (*entity.ShiftAssignment, error)
	// ListForWorkerDate filas del trabajador en una fecha (0..2 filas por el invariante).
	ListForWorkerDate(ctx context.Context, workerID string, date time.Time) ([]*entity.ShiftAssignment, error)
	// ListForWorkerDateForUpdate ídem con bloqueo de filas (SELECT FOR UPDATE).
	ListForWorkerDateForUpdate(ctx context.Context, workerID string, date time.Time) ([]*entity.ShiftAssignment, error)
	Insert(ctx context.Context, a *entity.ShiftAssignment) error
	// Upsert inserta o reemplaza la furgoneta de un turno ya asignado.
	Upsert(ctx context.Context, a *entity.ShiftAssignment) error
	// UpdateShift reescribe el turno de una fila conservando la furgoneta
	// (partición de jornada completa: FULL_DAY -> MORNING o AFTERNOON).
	UpdateShift(ctx context.Context, workerID string, date time.Time, oldShift, newShift string) error
	// Delete elimina la asignación; ErrNotFound si no existía.
	Delete(ctx context.Context, workerID string, date time.Time, shift string) error
	// ListForWorkerRange asignaciones del trabajador en un rango, fecha descendente.
	ListForWorkerRange(ctx context.Context, workerID string, from, to time.Time) ([]*entity.ShiftAssignment, error)
	// ListForDate cuadrante del día completo.
	ListForDate(ctx context.Context, date time.Time) ([]*entity.ShiftAssignment, error)
}
