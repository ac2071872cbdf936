package dto

import "github.com/shopspring/decimal"

// LocationQuantity cantidad de un artículo en una ubicación.
type LocationQuantity struct {
	LocationID string          `json:"location_id"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// ItemQuantity cantidad de un artículo dentro de una ubicación.
type ItemQuantity struct {
	ItemID   string          `json:"item_id"`
	ItemName string          `json:"item_name,omitempty"`
	Unit     string          `json:"unit,omitempty"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ItemStockResponse proyección de stock de un artículo: total y desglose.
type ItemStockResponse struct {
	ItemID         string             `json:"item_id"`
	Total          decimal.Decimal    `json:"total"`
	BelowThreshold bool               `json:"below_threshold"`
	ByLocation     []LocationQuantity `json:"by_location"`
}

// LocationStockResponse proyección de stock de una ubicación.
type LocationStockResponse struct {
	LocationID string         `json:"location_id"`
	Items      []ItemQuantity `json:"items"`
}
