package dto

// AssignShiftRequest asignación de furgoneta a trabajador para fecha y turno.
// Date en formato 2006-01-02. Force solo aplica al choque de jornadas completas.
type AssignShiftRequest struct {
	WorkerID string `json:"worker_id"`
	VanID    string `json:"van_id"`
	Date     string `json:"date"`
	Shift    string `json:"shift"` // MORNING | AFTERNOON | FULL_DAY
	Force    bool   `json:"force"`
}

// ShiftAssignmentResponse representación HTTP de una asignación.
type ShiftAssignmentResponse struct {
	WorkerID string `json:"worker_id"`
	Date     string `json:"date"`
	Shift    string `json:"shift"`
	VanID    string `json:"van_id"`
}

// ShiftListResponse listado de asignaciones.
type ShiftListResponse struct {
	Items []ShiftAssignmentResponse `json:"items"`
}
