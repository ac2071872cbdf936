package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

const (
	whID   = "00000000-0000-0000-0000-000000000001"
	vanID  = "00000000-0000-0000-0000-000000000002"
	itemID = "00000000-0000-0000-0000-00000000000a"
	actor  = "00000000-0000-0000-0000-0000000000ff"
)

type fixture struct {
	store  *memory.Store
	stock  *stock.UseCase
	ledger *ledger.UseCase
}

func newFixture(t *testing.T, threshold decimal.Decimal) *fixture {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	now := time.Now()

	locRepo := memory.NewLocationRepository(store)
	require.NoError(t, locRepo.Create(ctx, &entity.Location{
		ID: whID, Name: "Almacén central", Kind: entity.LocationKindWarehouse, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, locRepo.Create(ctx, &entity.Location{
		ID: vanID, Name: "Furgoneta 1", Kind: entity.LocationKindVan, CreatedAt: now, UpdatedAt: now,
	}))

	itemRepo := memory.NewItemRepository(store)
	require.NoError(t, itemRepo.Create(ctx, &entity.Item{
		ID: itemID, Name: "Codo PVC 32mm", Unit: "ud", AlertThreshold: threshold,
		Active: true, CreatedAt: now, UpdatedAt: now,
	}))

	movRepo := memory.NewMovementRepository(store)
	return &fixture{
		store:  store,
		stock:  stock.NewUseCase(movRepo, itemRepo, locRepo),
		ledger: ledger.NewUseCase(memory.NewTxRunner(store), movRepo),
	}
}

func strptr(s string) *string { return &s }

func (f *fixture) append(t *testing.T, in ledger.AppendInput) {
	t.Helper()
	_, err := f.ledger.Append(context.Background(), actor, in)
	require.NoError(t, err)
}

// Ciclo completo: entrada al almacén, traslado a furgoneta y consumo en obra.
func TestStock_CicloCompleto(t *testing.T) {
	f := newFixture(t, decimal.Zero)
	ctx := context.Background()

	f.append(t, ledger.AppendInput{
		Kind: entity.MovementKindReceipt, ItemID: itemID,
		Quantity: decimal.NewFromInt(10), DestinationID: strptr(whID),
	})
	f.append(t, ledger.AppendInput{
		Kind: entity.MovementKindTransfer, ItemID: itemID,
		Quantity: decimal.NewFromInt(4), OriginID: strptr(whID), DestinationID: strptr(vanID),
	})
	f.append(t, ledger.AppendInput{
		Kind: entity.MovementKindConsumption, ItemID: itemID,
		Quantity: decimal.NewFromInt(2), OriginID: strptr(vanID), WorkOrder: "OT-1001",
	})

	atWh, err := f.stock.StockAt(ctx, whID, itemID)
	require.NoError(t, err)
	assert.True(t, atWh.Equal(decimal.NewFromInt(6)), "almacén: 10 - 4 = 6, obtuvo %s", atWh)

	atVan, err := f.stock.StockAt(ctx, vanID, itemID)
	require.NoError(t, err)
	assert.True(t, atVan.Equal(decimal.NewFromInt(2)), "furgoneta: 4 - 2 = 2, obtuvo %s", atVan)

	total, err := f.stock.StockTotal(ctx, itemID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(8)), "total: 10 - 2 = 8, obtuvo %s", total)

	// El total coincide con la suma del desglose por ubicación.
	byLoc, err := f.stock.StockByLocation(ctx, itemID)
	require.NoError(t, err)
	sum := decimal.Zero
	for _, s := range byLoc {
		sum = sum.Add(s.Quantity)
	}
	assert.True(t, total.Equal(sum), "total %s debe igualar la suma del desglose %s", total, sum)
}

func TestStock_PerdidaYDevolucionRestan(t *testing.T) {
	f := newFixture(t, decimal.Zero)
	ctx := context.Background()

	f.append(t, ledger.AppendInput{
		Kind: entity.MovementKindReceipt, ItemID: itemID,
		Quantity: decimal.NewFromInt(10), DestinationID: strptr(whID),
	})
	f.append(t, ledger.AppendInput{
		Kind: entity.MovementKindLoss, ItemID: itemID,
		Quantity: decimal.NewFromInt(1), OriginID: strptr(whID), Reason: "rotura en descarga",
	})
	f.append(t, ledger.AppendInput{
		Kind: entity.MovementKindReturn, ItemID: itemID,
		Quantity: decimal.NewFromInt(3), OriginID: strptr(whID), Reason: "lote defectuoso",
	})

	total, err := f.stock.StockTotal(ctx, itemID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(6)), "10 - 1 - 3 = 6, obtuvo %s", total)
}

func TestStock_ParSinMovimientosEsCero(t *testing.T) {
	f := newFixture(t, decimal.Zero)

	qty, err := f.stock.StockAt(context.Background(), vanID, itemID)
	require.NoError(t, err)
	assert.True(t, qty.IsZero())
}

func TestStock_ArticuloInexistente(t *testing.T) {
	f := newFixture(t, decimal.Zero)

	_, err := f.stock.StockTotal(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.stock.StockAt(context.Background(), whID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStock_UbicacionInexistente(t *testing.T) {
	f := newFixture(t, decimal.Zero)

	_, err := f.stock.Snapshot(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStock_UmbralDeAlerta(t *testing.T) {
	f := newFixture(t, decimal.NewFromInt(5))
	ctx := context.Background()

	f.append(t, ledger.AppendInput{
		Kind: entity.MovementKindReceipt, ItemID: itemID,
		Quantity: decimal.NewFromInt(3), DestinationID: strptr(whID),
	})

	below, err := f.stock.BelowThreshold(ctx, itemID)
	require.NoError(t, err)
	assert.True(t, below, "3 < 5 debe marcar alerta")

	alerts, err := f.stock.Alerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, itemID, alerts[0].Item.ID)
	assert.True(t, alerts[0].Total.Equal(decimal.NewFromInt(3)))

	// Por encima del umbral desaparece del informe.
	f.append(t, ledger.AppendInput{
		Kind: entity.MovementKindReceipt, ItemID: itemID,
		Quantity: decimal.NewFromInt(4), DestinationID: strptr(whID),
	})
	below, err = f.stock.BelowThreshold(ctx, itemID)
	require.NoError(t, err)
	assert.False(t, below)

	alerts, err = f.stock.Alerts(ctx)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

// El stock teórico puede quedar negativo: el libro lo anota sin impedirlo.
func TestStock_NegativoPermitido(t *testing.T) {
	f := newFixture(t, decimal.Zero)

	f.append(t, ledger.AppendInput{
		Kind: entity.MovementKindConsumption, ItemID: itemID,
		Quantity: decimal.NewFromInt(2), OriginID: strptr(whID), WorkOrder: "OT-2",
	})

	total, err := f.stock.StockTotal(context.Background(), itemID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(-2)), "obtuvo %s", total)
}
