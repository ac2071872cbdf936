package dto

import "time"

// CreateLocationRequest alta de ubicación (almacén o furgoneta).
type CreateLocationRequest struct {
	Name string `json:"name"`
	Kind string `json:"kind"` // warehouse | van
}

// UpdateLocationRequest cambio de nombre de una ubicación.
type UpdateLocationRequest struct {
	Name string `json:"name"`
}

// LocationResponse representación HTTP de una ubicación.
type LocationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocationListResponse listado paginado de ubicaciones.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
