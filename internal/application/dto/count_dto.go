package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpenCountRequest apertura de un recuento físico en una ubicación.
// Date en formato 2006-01-02; vacío = hoy.
type OpenCountRequest struct {
	LocationID       string `json:"location_id"`
	Date             string `json:"date"`
	Note             string `json:"note"`
	IncludeZeroStock bool   `json:"include_zero_stock"`
}

// RecordCountRequest cantidad contada de una línea. Puntero a propósito: un
// cuerpo sin counted no es un recuento de cero y se rechaza.
type RecordCountRequest struct {
	Counted *decimal.Decimal `json:"counted"`
}

// FinalizeCountRequest cierre del recuento; ApplyAdjustments decide si las
// diferencias se vuelcan al libro como movimientos de ajuste.
type FinalizeCountRequest struct {
	ApplyAdjustments bool `json:"apply_adjustments"`
}

// CountLineResponse línea de recuento: teórico frente a contado.
type CountLineResponse struct {
	ItemID      string           `json:"item_id"`
	ItemName    string           `json:"item_name,omitempty"`
	Theoretical decimal.Decimal  `json:"theoretical"`
	Counted     *decimal.Decimal `json:"counted,omitempty"`
	Difference  *decimal.Decimal `json:"difference,omitempty"`
}

// CountResponse recuento físico con sus líneas.
type CountResponse struct {
	ID          string              `json:"id"`
	Date        string              `json:"date"`
	Responsible string              `json:"responsible"`
	LocationID  string              `json:"location_id"`
	Note        string              `json:"note,omitempty"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	Lines       []CountLineResponse `json:"lines,omitempty"`
}

// CountListResponse listado de cabeceras de recuento.
type CountListResponse struct {
	Items []CountResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ReconciliationResultResponse estadísticas de una finalización.
type ReconciliationResultResponse struct {
	CountID             string          `json:"count_id"`
	TotalLines          int             `json:"total_lines"`
	CountedLines        int             `json:"counted_lines"`
	LinesWithDifference int             `json:"lines_with_difference"`
	SurplusLines        int             `json:"surplus_lines"`
	SurplusQuantity     decimal.Decimal `json:"surplus_quantity"`
	ShortageLines       int             `json:"shortage_lines"`
	ShortageQuantity    decimal.Decimal `json:"shortage_quantity"`
	AdjustmentsApplied  int             `json:"adjustments_applied"`
}
