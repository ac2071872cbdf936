package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/application/reconciliation"
	"github.com/jhoicas/Almacen-api/internal/application/shifts"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// Ensure TxRunner implementa los puertos transaccionales de los casos de uso.
var _ ledger.TxRunner = (*TxRunner)(nil)
var _ reconciliation.TxRunner = (*TxRunner)(nil)
var _ shifts.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción para el libro de movimientos: las comprobaciones
// de existencia y la inserción comparten tx. Hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	itemRepo repository.ItemRepository,
	locationRepo repository.LocationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMovementRepository(tx), NewItemRepository(tx), NewLocationRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunReconciliation transacción con repos de recuentos, movimientos y
// artículos: abrir fotografía y crea en la misma tx; finalizar crea todos los
// ajustes y cierra el recuento, o nada.
func (r *TxRunner) RunReconciliation(ctx context.Context, fn func(
	countRepo repository.InventoryCountRepository,
	movRepo repository.MovementRepository,
	itemRepo repository.ItemRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewInventoryCountRepository(tx), NewMovementRepository(tx), NewItemRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunShifts transacción para el resolutor de turnos: la fila del trabajador
// sirve de ancla de bloqueo y las filas del día se bloquean después.
func (r *TxRunner) RunShifts(ctx context.Context, fn func(
	shiftRepo repository.ShiftAssignmentRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewShiftAssignmentRepository(tx), NewUserRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
