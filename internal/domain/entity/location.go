package entity

import "time"

// Tipos de ubicación: el almacén central fijo o una furgoneta de la flota.
const (
	LocationKindWarehouse = "warehouse"
	LocationKindVan       = "van"
)

// Location representa un punto de stock: el almacén central o una furgoneta.
// Se crea por acción administrativa y nunca se borra si tiene movimientos.
type Location struct {
	ID        string
	Name      string
	Kind      string // warehouse | van
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsVan indica si la ubicación es una furgoneta (asignable a turnos).
func (l *Location) IsVan() bool {
	return l.Kind == LocationKindVan
}

// ValidLocationKind valida el discriminador de tipo.
func ValidLocationKind(kind string) bool {
	return kind == LocationKindWarehouse || kind == LocationKindVan
}
