package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// UseCase expone el libro de movimientos: Append valida y anota el evento
// inmutable; Query lo consulta con filtros. No existe ninguna otra mutación:
// recepciones, traslados, consumos, pérdidas, devoluciones y ajustes de
// inventario pasan todos por Append.
type UseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
}

// NewUseCase construye el caso de uso del libro de movimientos.
func NewUseCase(txRunner TxRunner, movRepo repository.MovementRepository) *UseCase {
	return &UseCase{
		txRunner: txRunner,
		movRepo:  movRepo,
	}
}

// AppendInput entrada para anotar un movimiento. La cantidad llega siempre
// positiva; la dirección la dan el tipo y los extremos poblados.
type AppendInput struct {
	Date          time.Time
	Kind          string
	ItemID        string
	Quantity      decimal.Decimal
	OriginID      *string
	DestinationID *string
	WorkOrder     string
	Responsible   string
	Reason        string
}

// Append valida el invariante tipo/origen/destino y la existencia de artículo y
// ubicaciones, y anota el movimiento dentro de una transacción. actorID es el
// usuario actuante (contexto de sesión explícito) y queda como created_by.
// Nunca se aplica parcialmente: o se inserta el movimiento completo o nada.
//
// No se impide que el stock teórico quede negativo: el libro tiene que poder
// anotar correcciones e inventarios que crucen el cero transitoriamente; esa
// validación de negocio es decisión del caller.
func (uc *UseCase) Append(ctx context.Context, actorID string, in AppendInput) (*entity.Movement, error) {
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	responsible := in.Responsible
	if responsible == "" {
		responsible = actorID
	}
	mov := &entity.Movement{
		Date:          date,
		Kind:          in.Kind,
		ItemID:        in.ItemID,
		Quantity:      in.Quantity,
		OriginID:      in.OriginID,
		DestinationID: in.DestinationID,
		WorkOrder:     in.WorkOrder,
		Responsible:   responsible,
		Reason:        in.Reason,
		CreatedAt:     time.Now(),
		CreatedBy:     actorID,
	}
	if err := mov.Validate(); err != nil {
		return nil, err
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		itemRepo repository.ItemRepository,
		locationRepo repository.LocationRepository,
	) error {
		item, err := itemRepo.GetByID(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		for _, locID := range []*string{in.OriginID, in.DestinationID} {
			if locID == nil {
				continue
			}
			loc, err := locationRepo.GetByID(ctx, *locID)
			if err != nil {
				return err
			}
			if loc == nil {
				return domain.ErrNotFound
			}
		}
		return movRepo.Insert(ctx, mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// Query consulta el libro con filtros (artículo, ubicación como origen o destino,
// tipo, OT, responsable, rango de fechas). Orden: fecha ascendente y, a igual
// fecha, id ascendente, que coincide con el orden de inserción.
func (uc *UseCase) Query(ctx context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return uc.movRepo.Query(ctx, filter)
}
