package memory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/application/reconciliation"
	"github.com/jhoicas/Almacen-api/internal/application/shifts"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)
var _ reconciliation.TxRunner = (*TxRunner)(nil)
var _ shifts.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta los callbacks transaccionales sobre el almacén en memoria.
// No hay rollback: los tests que provocan errores comprueban el estado a mano.
type TxRunner struct {
	store *Store
}

// NewTxRunner crea el runner sobre el almacén compartido.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

func (r *TxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	itemRepo repository.ItemRepository,
	locationRepo repository.LocationRepository,
) error) error {
	return fn(NewMovementRepository(r.store), NewItemRepository(r.store), NewLocationRepository(r.store))
}

func (r *TxRunner) RunReconciliation(_ context.Context, fn func(
	countRepo repository.InventoryCountRepository,
	movRepo repository.MovementRepository,
	itemRepo repository.ItemRepository,
) error) error {
	return fn(NewInventoryCountRepository(r.store), NewMovementRepository(r.store), NewItemRepository(r.store))
}

func (r *TxRunner) RunShifts(_ context.Context, fn func(
	shiftRepo repository.ShiftAssignmentRepository,
	userRepo repository.UserRepository,
) error) error {
	return fn(NewShiftAssignmentRepository(r.store), NewUserRepository(r.store))
}
