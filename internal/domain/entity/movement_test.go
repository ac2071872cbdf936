package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

func strptr(s string) *string { return &s }

func TestValidate_EntradaCorrecta(t *testing.T) {
	m := &entity.Movement{
		Kind:          entity.MovementKindReceipt,
		ItemID:        "item-1",
		Quantity:      decimal.NewFromInt(10),
		DestinationID: strptr("almacen"),
	}
	require.NoError(t, m.Validate())
}

func TestValidate_CantidadCeroONegativa(t *testing.T) {
	for _, qty := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-3)} {
		m := &entity.Movement{
			Kind:          entity.MovementKindReceipt,
			ItemID:        "item-1",
			Quantity:      qty,
			DestinationID: strptr("almacen"),
		}
		assert.ErrorIs(t, m.Validate(), domain.ErrInvalidMovement,
			"cantidad %s debe rechazarse", qty)
	}
}

func TestValidate_EntradaConOrigenEsInvalida(t *testing.T) {
	m := &entity.Movement{
		Kind:          entity.MovementKindReceipt,
		ItemID:        "item-1",
		Quantity:      decimal.NewFromInt(5),
		OriginID:      strptr("proveedor"),
		DestinationID: strptr("almacen"),
	}
	assert.ErrorIs(t, m.Validate(), domain.ErrInvalidMovement)
}

func TestValidate_TrasladoRequiereAmbosExtremos(t *testing.T) {
	m := &entity.Movement{
		Kind:     entity.MovementKindTransfer,
		ItemID:   "item-1",
		Quantity: decimal.NewFromInt(5),
		OriginID: strptr("almacen"),
	}
	assert.ErrorIs(t, m.Validate(), domain.ErrInvalidMovement)

	m.DestinationID = strptr("almacen") // mismo que origen
	assert.ErrorIs(t, m.Validate(), domain.ErrInvalidMovement)

	m.DestinationID = strptr("furgoneta-1")
	assert.NoError(t, m.Validate())
}

func TestValidate_SalidasNoLlevanDestino(t *testing.T) {
	for _, kind := range []string{entity.MovementKindConsumption, entity.MovementKindLoss, entity.MovementKindReturn} {
		m := &entity.Movement{
			Kind:          kind,
			ItemID:        "item-1",
			Quantity:      decimal.NewFromInt(2),
			OriginID:      strptr("furgoneta-1"),
			DestinationID: strptr("almacen"),
		}
		assert.ErrorIs(t, m.Validate(), domain.ErrInvalidMovement, kind)

		m.DestinationID = nil
		assert.NoError(t, m.Validate(), kind)
	}
}

func TestValidate_TipoDesconocido(t *testing.T) {
	m := &entity.Movement{
		Kind:          "SALE",
		ItemID:        "item-1",
		Quantity:      decimal.NewFromInt(1),
		DestinationID: strptr("almacen"),
	}
	assert.ErrorIs(t, m.Validate(), domain.ErrInvalidMovement)
}

func TestSignedQuantityAt_ReglaDeSignos(t *testing.T) {
	m := &entity.Movement{
		Kind:          entity.MovementKindTransfer,
		ItemID:        "item-1",
		Quantity:      decimal.NewFromInt(4),
		OriginID:      strptr("almacen"),
		DestinationID: strptr("furgoneta-1"),
	}
	assert.True(t, m.SignedQuantityAt("almacen").Equal(decimal.NewFromInt(-4)))
	assert.True(t, m.SignedQuantityAt("furgoneta-1").Equal(decimal.NewFromInt(4)))
	assert.True(t, m.SignedQuantityAt("furgoneta-2").IsZero())
	// El traslado no altera el stock total del artículo.
	assert.True(t, m.SignedQuantityTotal().IsZero())
}
