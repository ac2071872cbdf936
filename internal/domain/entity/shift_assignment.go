package entity

import "time"

// Turnos asignables: media jornada de mañana, de tarde o jornada completa.
// Invariante por (trabajador, fecha): FULL_DAY nunca convive con una media jornada.
const (
	ShiftMorning   = "MORNING"
	ShiftAfternoon = "AFTERNOON"
	ShiftFullDay   = "FULL_DAY"
)

// ShiftAssignment asigna una furgoneta a un trabajador para una fecha y turno.
// La clave primaria compuesta (worker, date, shift) fuerza en almacenamiento
// "una furgoneta por trabajador, turno y día".
type ShiftAssignment struct {
	WorkerID  string
	Date      time.Time
	Shift     string
	VanID     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidShift valida el valor de turno.
func ValidShift(shift string) bool {
	return shift == ShiftMorning || shift == ShiftAfternoon || shift == ShiftFullDay
}

// OtherHalf devuelve la media jornada complementaria; vacío si no es media jornada.
func OtherHalf(shift string) string {
	switch shift {
	case ShiftMorning:
		return ShiftAfternoon
	case ShiftAfternoon:
		return ShiftMorning
	}
	return ""
}
