package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

const (
	whID   = "00000000-0000-0000-0000-000000000001"
	vanID  = "00000000-0000-0000-0000-000000000002"
	itemID = "00000000-0000-0000-0000-00000000000a"
	actor  = "00000000-0000-0000-0000-0000000000ff"
)

func newFixture(t *testing.T) (*ledger.UseCase, repository.MovementRepository) {
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
		ID: itemID, Name: "Tubo de cobre 18mm", Unit: "m", Active: true, CreatedAt: now, UpdatedAt: now,
	}))

	movRepo := memory.NewMovementRepository(store)
	uc := ledger.NewUseCase(memory.NewTxRunner(store), movRepo)
	return uc, movRepo
}

func strptr(s string) *string { return &s }

func TestAppend_EntradaValida(t *testing.T) {
	uc, _ := newFixture(t)

	mov, err := uc.Append(context.Background(), actor, ledger.AppendInput{
		Kind:          entity.MovementKindReceipt,
		ItemID:        itemID,
		Quantity:      decimal.NewFromInt(10),
		DestinationID: strptr(whID),
		Reason:        "pedido proveedor",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), mov.ID, "el primer movimiento recibe el id 1")
	assert.Equal(t, actor, mov.CreatedBy)
	assert.Equal(t, actor, mov.Responsible, "sin responsable explícito se usa el actor")
	assert.False(t, mov.Date.IsZero(), "sin fecha explícita se usa hoy")
}

func TestAppend_CantidadNoPositiva(t *testing.T) {
	uc, movRepo := newFixture(t)

	_, err := uc.Append(context.Background(), actor, ledger.AppendInput{
		Kind:          entity.MovementKindReceipt,
		ItemID:        itemID,
		Quantity:      decimal.Zero,
		DestinationID: strptr(whID),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMovement)

	list, err := movRepo.Query(context.Background(), repository.MovementFilter{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, list, "un movimiento inválido no deja rastro en el libro")
}

func TestAppend_TrasladoMismoExtremo(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Append(context.Background(), actor, ledger.AppendInput{
		Kind:          entity.MovementKindTransfer,
		ItemID:        itemID,
		Quantity:      decimal.NewFromInt(1),
		OriginID:      strptr(whID),
		DestinationID: strptr(whID),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMovement)
}

func TestAppend_ArticuloInexistente(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Append(context.Background(), actor, ledger.AppendInput{
		Kind:          entity.MovementKindReceipt,
		ItemID:        "no-existe",
		Quantity:      decimal.NewFromInt(1),
		DestinationID: strptr(whID),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAppend_UbicacionInexistente(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Append(context.Background(), actor, ledger.AppendInput{
		Kind:          entity.MovementKindConsumption,
		ItemID:        itemID,
		Quantity:      decimal.NewFromInt(1),
		OriginID:      strptr("no-existe"),
		WorkOrder:     "OT-77",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuery_OrdenYFiltros(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	day := func(d int) time.Time { return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC) }

	// Inserción desordenada por fecha: día 3, día 1, día 3 otra vez.
	_, err := uc.Append(ctx, actor, ledger.AppendInput{
		Date: day(3), Kind: entity.MovementKindReceipt, ItemID: itemID,
		Quantity: decimal.NewFromInt(5), DestinationID: strptr(whID),
	})
	require.NoError(t, err)
	_, err = uc.Append(ctx, actor, ledger.AppendInput{
		Date: day(1), Kind: entity.MovementKindReceipt, ItemID: itemID,
		Quantity: decimal.NewFromInt(2), DestinationID: strptr(whID),
	})
	require.NoError(t, err)
	_, err = uc.Append(ctx, actor, ledger.AppendInput{
		Date: day(3), Kind: entity.MovementKindTransfer, ItemID: itemID,
		Quantity: decimal.NewFromInt(3), OriginID: strptr(whID), DestinationID: strptr(vanID),
	})
	require.NoError(t, err)

	list, err := uc.Query(ctx, repository.MovementFilter{ItemID: itemID})
	require.NoError(t, err)
	require.Len(t, list, 3)

	// Fecha ascendente y, a igual fecha, id ascendente.
	assert.Equal(t, int64(2), list[0].ID)
	assert.Equal(t, int64(1), list[1].ID)
	assert.Equal(t, int64(3), list[2].ID)

	// La ubicación casa contra origen o destino.
	byVan, err := uc.Query(ctx, repository.MovementFilter{LocationID: vanID})
	require.NoError(t, err)
	require.Len(t, byVan, 1)
	assert.Equal(t, entity.MovementKindTransfer, byVan[0].Kind)

	byKind, err := uc.Query(ctx, repository.MovementFilter{Kind: entity.MovementKindReceipt})
	require.NoError(t, err)
	assert.Len(t, byKind, 2)

	from := day(2)
	since, err := uc.Query(ctx, repository.MovementFilter{From: &from})
	require.NoError(t, err)
	assert.Len(t, since, 2, "el filtro de fecha desde excluye el día 1")
}
