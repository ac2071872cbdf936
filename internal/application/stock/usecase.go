package stock

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// UseCase proyección de stock: deriva la cantidad actual agregando el libro de
// movimientos en cada lectura. No hay contador cacheado que pueda divergir del
// libro; el libro es la única verdad duradera.
type UseCase struct {
	movRepo      repository.MovementRepository
	itemRepo     repository.ItemRepository
	locationRepo repository.LocationRepository
}

// NewUseCase construye la proyección de stock.
func NewUseCase(
	movRepo repository.MovementRepository,
	itemRepo repository.ItemRepository,
	locationRepo repository.LocationRepository,
) *UseCase {
	return &UseCase{movRepo: movRepo, itemRepo: itemRepo, locationRepo: locationRepo}
}

// StockAt recalcula el stock de un artículo en una ubicación aplicando la regla
// de signos: + destino de RECEIPT/TRANSFER, - origen de TRANSFER/CONSUMPTION/
// LOSS/RETURN. Devuelve 0 para pares sin movimientos.
func (uc *UseCase) StockAt(ctx context.Context, locationID, itemID string) (decimal.Decimal, error) {
	if err := uc.checkLocation(ctx, locationID); err != nil {
		return decimal.Zero, err
	}
	if err := uc.checkItem(ctx, itemID); err != nil {
		return decimal.Zero, err
	}
	return uc.movRepo.SumAt(ctx, locationID, itemID)
}

// StockTotal stock del artículo sumado sobre todas las ubicaciones; equivale a
// la suma de cantidades con signo de todos sus movimientos.
func (uc *UseCase) StockTotal(ctx context.Context, itemID string) (decimal.Decimal, error) {
	if err := uc.checkItem(ctx, itemID); err != nil {
		return decimal.Zero, err
	}
	return uc.movRepo.SumTotal(ctx, itemID)
}

// StockByLocation desglose por ubicación del stock de un artículo.
func (uc *UseCase) StockByLocation(ctx context.Context, itemID string) ([]repository.LocationStock, error) {
	if err := uc.checkItem(ctx, itemID); err != nil {
		return nil, err
	}
	return uc.movRepo.SumByLocation(ctx, itemID)
}

// Snapshot stock por artículo de una ubicación (artículos con movimientos).
// Alimenta la apertura de recuentos y el informe de stock por ubicación.
func (uc *UseCase) Snapshot(ctx context.Context, locationID string) ([]repository.ItemStock, error) {
	if err := uc.checkLocation(ctx, locationID); err != nil {
		return nil, err
	}
	return uc.movRepo.SnapshotAt(ctx, locationID)
}

// BelowThreshold indica si el stock total del artículo está bajo su umbral de alerta.
func (uc *UseCase) BelowThreshold(ctx context.Context, itemID string) (bool, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return false, err
	}
	if item == nil {
		return false, domain.ErrNotFound
	}
	total, err := uc.movRepo.SumTotal(ctx, itemID)
	if err != nil {
		return false, err
	}
	return total.LessThan(item.AlertThreshold), nil
}

// Alerts lista los artículos activos bajo umbral (informe de reposición).
func (uc *UseCase) Alerts(ctx context.Context) ([]repository.ItemAlert, error) {
	return uc.itemRepo.ListBelowThreshold(ctx)
}

func (uc *UseCase) checkLocation(ctx context.Context, id string) error {
	loc, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if loc == nil {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *UseCase) checkItem(ctx context.Context, id string) error {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return nil
}
