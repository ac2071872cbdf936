package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AppendMovementRequest anotación de un movimiento en el libro.
// Date en formato 2006-01-02; vacío = hoy. La cantidad es siempre positiva.
type AppendMovementRequest struct {
	Date          string          `json:"date"`
	Kind          string          `json:"kind"` // RECEIPT | TRANSFER | CONSUMPTION | LOSS | RETURN
	ItemID        string          `json:"item_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	OriginID      *string         `json:"origin_id"`
	DestinationID *string         `json:"destination_id"`
	WorkOrder     string          `json:"work_order"`
	Responsible   string          `json:"responsible"`
	Reason        string          `json:"reason"`
}

// MovementResponse representación HTTP de un movimiento.
type MovementResponse struct {
	ID            int64           `json:"id"`
	Date          string          `json:"date"`
	Kind          string          `json:"kind"`
	ItemID        string          `json:"item_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	OriginID      *string         `json:"origin_id,omitempty"`
	DestinationID *string         `json:"destination_id,omitempty"`
	WorkOrder     string          `json:"work_order,omitempty"`
	Responsible   string          `json:"responsible,omitempty"`
	Reason        string          `json:"reason,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	CreatedBy     string          `json:"created_by,omitempty"`
}

// MovementListResponse listado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
