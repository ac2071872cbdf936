package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un inventario físico. OPEN -> FINALIZED, sin más transiciones.
const (
	CountStatusOpen      = "OPEN"
	CountStatusFinalized = "FINALIZED"
)

// InventoryCount es la foto de un recuento físico en una ubicación: captura el
// stock teórico al abrirse y recibe las cantidades contadas por el operario.
// Mientras está OPEN se edita libremente; al finalizar queda inmutable.
type InventoryCount struct {
	ID          string
	Date        time.Time
	Responsible string // usuario que abre el recuento
	LocationID  string
	Note        string
	Status      string
	CreatedAt   time.Time
	Lines       []CountLine
}

// IsFinalized indica si el recuento ya está cerrado.
func (c *InventoryCount) IsFinalized() bool {
	return c.Status == CountStatusFinalized
}

// Line busca la línea de un artículo; nil si el artículo no entró en la foto.
func (c *InventoryCount) Line(itemID string) *CountLine {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			return &c.Lines[i]
		}
	}
	return nil
}

// CountLine es el teórico frente al contado de un artículo dentro del recuento.
// Counted a nil significa "no contado" (se ignora al finalizar), no "cero".
type CountLine struct {
	CountID     string
	ItemID      string
	ItemName    string // denormalizado para listados, no se persiste en la línea
	Theoretical decimal.Decimal
	Counted     *decimal.Decimal
	Difference  *decimal.Decimal // counted - theoretical
}
