// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria. Se usa en tests de casos de uso; el comportamiento replica el de los
// adaptadores PostgreSQL (orden de resultados, errores centinela, semántica
// append-only del libro).
package memory

import (
	"sync"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Store guarda todas las tablas en memoria bajo un único mutex.
type Store struct {
	mu sync.Mutex

	movements  []entity.Movement
	nextMovID  int64
	locations  map[string]entity.Location
	items      map[string]entity.Item
	users      map[string]entity.User
	counts     map[string]entity.InventoryCount
	shifts     []entity.ShiftAssignment
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		nextMovID: 1,
		locations: make(map[string]entity.Location),
		items:     make(map[string]entity.Item),
		users:     make(map[string]entity.User),
		counts:    make(map[string]entity.InventoryCount),
	}
}
