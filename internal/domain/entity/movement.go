package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
)

// Tipos de movimiento del libro de movimientos.
const (
	MovementKindReceipt     = "RECEIPT"     // entrada de proveedor: solo destino
	MovementKindTransfer    = "TRANSFER"    // traslado entre ubicaciones: origen y destino
	MovementKindConsumption = "CONSUMPTION" // consumo contra orden de trabajo: solo origen
	MovementKindLoss        = "LOSS"        // pérdida o rotura: solo origen
	MovementKindReturn      = "RETURN"      // devolución a proveedor: solo origen
)

// Movement es el evento inmutable central: todo cambio de stock es un movimiento.
// La cantidad se guarda siempre positiva; la dirección la dan el tipo y qué
// extremo (origen/destino) está poblado. Los movimientos nunca se actualizan ni
// se borran: las correcciones son movimientos compensatorios.
type Movement struct {
	ID            int64 // secuencial: el orden por (fecha, id) coincide con el de inserción
	Date          time.Time
	Kind          string
	ItemID        string
	Quantity      decimal.Decimal
	OriginID      *string
	DestinationID *string
	WorkOrder     string // OT contra la que se consumió material (libre)
	Responsible   string
	Reason        string
	CreatedAt     time.Time
	CreatedBy     string
}

// Validate comprueba el invariante tipo/origen/destino y que la cantidad sea positiva.
// Debe pasar antes de cualquier escritura; un movimiento inválido nunca se aplica parcialmente.
func (m *Movement) Validate() error {
	if !m.Quantity.IsPositive() {
		return fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidMovement)
	}
	if m.ItemID == "" {
		return fmt.Errorf("%w: falta el artículo", domain.ErrInvalidMovement)
	}
	switch m.Kind {
	case MovementKindReceipt:
		if m.OriginID != nil {
			return fmt.Errorf("%w: una entrada no lleva origen", domain.ErrInvalidMovement)
		}
		if m.DestinationID == nil {
			return fmt.Errorf("%w: una entrada requiere destino", domain.ErrInvalidMovement)
		}
	case MovementKindTransfer:
		if m.OriginID == nil || m.DestinationID == nil {
			return fmt.Errorf("%w: un traslado requiere origen y destino", domain.ErrInvalidMovement)
		}
		if *m.OriginID == *m.DestinationID {
			return fmt.Errorf("%w: origen y destino no pueden coincidir", domain.ErrInvalidMovement)
		}
	case MovementKindConsumption, MovementKindLoss, MovementKindReturn:
		if m.OriginID == nil {
			return fmt.Errorf("%w: %s requiere origen", domain.ErrInvalidMovement, m.Kind)
		}
		if m.DestinationID != nil {
			return fmt.Errorf("%w: %s no lleva destino", domain.ErrInvalidMovement, m.Kind)
		}
	default:
		return fmt.Errorf("%w: tipo desconocido %q", domain.ErrInvalidMovement, m.Kind)
	}
	return nil
}

// SignedQuantityAt devuelve la contribución del movimiento al stock de una ubicación:
// positiva si la ubicación es destino de RECEIPT/TRANSFER, negativa si es origen de
// TRANSFER/CONSUMPTION/LOSS/RETURN, cero si no la toca. Esta regla de signos es la
// definición del stock proyectado.
func (m *Movement) SignedQuantityAt(locationID string) decimal.Decimal {
	if m.DestinationID != nil && *m.DestinationID == locationID {
		return m.Quantity
	}
	if m.OriginID != nil && *m.OriginID == locationID {
		return m.Quantity.Neg()
	}
	return decimal.Zero
}

// SignedQuantityTotal devuelve la contribución al stock total del artículo,
// sumada sobre todas las ubicaciones: los traslados internos se anulan.
func (m *Movement) SignedQuantityTotal() decimal.Decimal {
	switch m.Kind {
	case MovementKindReceipt:
		return m.Quantity
	case MovementKindConsumption, MovementKindLoss, MovementKindReturn:
		return m.Quantity.Neg()
	default: // TRANSFER: entra lo mismo que sale
		return decimal.Zero
	}
}

// TouchesLocation indica si la ubicación aparece como origen o destino.
func (m *Movement) TouchesLocation(locationID string) bool {
	return (m.OriginID != nil && *m.OriginID == locationID) ||
		(m.DestinationID != nil && *m.DestinationID == locationID)
}
