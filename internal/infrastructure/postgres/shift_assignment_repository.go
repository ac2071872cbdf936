package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ShiftAssignmentRepository = (*ShiftAssignmentRepo)(nil)

// ShiftAssignmentRepo implementación de ShiftAssignmentRepository sobre PostgreSQL
// (usable con pool o tx). La PK compuesta (worker_id, date, shift) vive en la tabla.
type ShiftAssignmentRepo struct {
	q Querier
}

// NewShiftAssignmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShiftAssignmentRepository(q Querier) *ShiftAssignmentRepo {
	return &ShiftAssignmentRepo{q: q}
}

const shiftColumns = `worker_id, date, shift, van_id, created_at, updated_at`

// Get asignación por clave completa; nil si no existe.
func (r *ShiftAssignmentRepo) Get(ctx context.Context, workerID string, date time.Time, shift string) (*entity.ShiftAssignment, error) {
	query := `SELECT ` + shiftColumns + ` FROM shift_assignments WHERE worker_id = $1 AND date = $2 AND shift = $3`
	var a entity.ShiftAssignment
	err := r.q.QueryRow(ctx, query, workerID, date, shift).Scan(
		&a.WorkerID, &a.Date, &a.Shift, &a.VanID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shift assignment: %w", err)
	}
	return &a, nil
}

// ListForWorkerDate filas del trabajador en una fecha.
func (r *ShiftAssignmentRepo) ListForWorkerDate(ctx context.Context, workerID string, date time.Time) ([]*entity.ShiftAssignment, error) {
	query := `SELECT ` + shiftColumns + ` FROM shift_assignments WHERE worker_id = $1 AND date = $2 ORDER BY shift`
	return r.list(ctx, query, workerID, date)
}

// ListForWorkerDateForUpdate ídem con bloqueo de filas para el resolutor de conflictos.
func (r *ShiftAssignmentRepo) ListForWorkerDateForUpdate(ctx context.Context, workerID string, date time.Time) ([]*entity.ShiftAssignment, error) {
	query := `SELECT ` + shiftColumns + ` FROM shift_assignments WHERE worker_id = $1 AND date = $2 ORDER BY shift FOR UPDATE`
	return r.list(ctx, query, workerID, date)
}

// Insert crea una asignación; ErrDuplicate si la clave ya existe.
func (r *ShiftAssignmentRepo) Insert(ctx context.Context, a *entity.ShiftAssignment) error {
	query := `
		INSERT INTO shift_assignments (worker_id, date, shift, van_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, a.WorkerID, a.Date, a.Shift, a.VanID, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shift assignment: %w", err)
	}
	return nil
}

// Upsert inserta o reemplaza la furgoneta de un turno ya asignado.
func (r *ShiftAssignmentRepo) Upsert(ctx context.Context, a *entity.ShiftAssignment) error {
	query := `
		INSERT INTO shift_assignments (worker_id, date, shift, van_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (worker_id, date, shift)
		DO UPDATE SET van_id = EXCLUDED.van_id, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query, a.WorkerID, a.Date, a.Shift, a.VanID, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert shift assignment: %w", err)
	}
	return nil
}

// UpdateShift reescribe el turno de una fila conservando la furgoneta.
func (r *ShiftAssignmentRepo) UpdateShift(ctx context.Context, workerID string, date time.Time, oldShift, newShift string) error {
	query := `
		UPDATE shift_assignments SET shift = $4, updated_at = now()
		WHERE worker_id = $1 AND date = $2 AND shift = $3`
	tag, err := r.q.Exec(ctx, query, workerID, date, oldShift, newShift)
	if err != nil {
		return fmt.Errorf("update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la asignación; ErrNotFound si no existía.
func (r *ShiftAssignmentRepo) Delete(ctx context.Context, workerID string, date time.Time, shift string) error {
	query := `DELETE FROM shift_assignments WHERE worker_id = $1 AND date = $2 AND shift = $3`
	tag, err := r.q.Exec(ctx, query, workerID, date, shift)
	if err != nil {
		return fmt.Errorf("delete shift assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListForWorkerRange asignaciones del trabajador en un rango, fecha descendente.
func (r *ShiftAssignmentRepo) ListForWorkerRange(ctx context.Context, workerID string, from, to time.Time) ([]*entity.ShiftAssignment, error) {
	query := `
		SELECT ` + shiftColumns + ` FROM shift_assignments
		WHERE worker_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC, shift`
	return r.list(ctx, query, workerID, from, to)
}

// ListForDate cuadrante del día completo.
func (r *ShiftAssignmentRepo) ListForDate(ctx context.Context, date time.Time) ([]*entity.ShiftAssignment, error) {
	query := `SELECT ` + shiftColumns + ` FROM shift_assignments WHERE date = $1 ORDER BY worker_id, shift`
	return r.list(ctx, query, date)
}

func (r *ShiftAssignmentRepo) list(ctx context.Context, query string, args ...any) ([]*entity.ShiftAssignment, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shift assignments: %w", err)
	}
	defer rows.Close()

	var list []*entity.ShiftAssignment
	for rows.Next() {
		var a entity.ShiftAssignment
		if err := rows.Scan(&a.WorkerID, &a.Date, &a.Shift, &a.VanID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan shift assignment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
