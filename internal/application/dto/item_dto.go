package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest alta de artículo.
type CreateItemRequest struct {
	Name           string          `json:"name"`
	Unit           string          `json:"unit"`
	AlertThreshold decimal.Decimal `json:"alert_threshold"`
}

// UpdateItemRequest modificación de artículo; Active permite desactivarlo.
type UpdateItemRequest struct {
	Name           string           `json:"name"`
	Unit           string           `json:"unit"`
	AlertThreshold *decimal.Decimal `json:"alert_threshold"`
	Active         *bool            `json:"active"`
}

// ItemResponse representación HTTP de un artículo.
type ItemResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Unit           string          `json:"unit"`
	AlertThreshold decimal.Decimal `json:"alert_threshold"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ItemListResponse listado paginado de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ItemAlertResponse artículo bajo umbral de reposición.
type ItemAlertResponse struct {
	Item  ItemResponse    `json:"item"`
	Total decimal.Decimal `json:"total"`
}
