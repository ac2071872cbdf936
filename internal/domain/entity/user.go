package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin      = "admin"
	RoleAlmacenero = "almacenero"
	RoleOperario   = "operario"
)

// User representa un usuario de la aplicación (administradores, almaceneros y
// operarios de furgoneta). El operario es además el "trabajador" de las
// asignaciones de turno.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
