package ledger

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando los
// repositorios de movimientos, artículos y ubicaciones atados a esa tx.
// Append es la única vía de escritura de stock y debe ser atómica junto con
// sus comprobaciones de existencia.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		itemRepo repository.ItemRepository,
		locationRepo repository.LocationRepository,
	) error) error
}
