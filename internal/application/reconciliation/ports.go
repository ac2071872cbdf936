package reconciliation

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de recuentos, movimientos y artículos atados a esa tx. Abrir un
// recuento fotografía el teórico y crea la cabecera en la misma transacción;
// finalizarlo es todo-o-nada: o se crean todos los ajustes y se cierra, o nada.
type TxRunner interface {
	RunReconciliation(ctx context.Context, fn func(
		countRepo repository.InventoryCountRepository,
		movRepo repository.MovementRepository,
		itemRepo repository.ItemRepository,
	) error) error
}
