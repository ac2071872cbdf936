package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo almacenable. Las cantidades se expresan siempre
// en su unidad de medida; el sistema no convierte entre unidades.
type Item struct {
	ID             string
	Name           string
	Unit           string          // ud, m, kg, l...
	AlertThreshold decimal.Decimal // umbral de reposición sobre el stock total
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
