package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/shifts"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/metrics"
)

// ShiftHandler maneja las asignaciones de turno de furgoneta (protegido).
type ShiftHandler struct {
	uc *shifts.UseCase
}

// NewShiftHandler construye el handler.
func NewShiftHandler(uc *shifts.UseCase) *ShiftHandler {
	return &ShiftHandler{uc: uc}
}

// Assign godoc
// @Summary      Asignar furgoneta a trabajador para fecha y turno
// @Description  Una media jornada parte la jornada completa existente; el choque de jornadas completas requiere force.
// @Tags         shifts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssignShiftRequest  true  "Asignación"
// @Success      200   {object}  dto.ShiftAssignmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shifts [post]
func (h *ShiftHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser AAAA-MM-DD"})
	}

	err = h.uc.Assign(c.Context(), shifts.AssignInput{
		WorkerID: in.WorkerID,
		VanID:    in.VanID,
		Date:     date,
		Shift:    in.Shift,
		Force:    in.Force,
	})
	if err != nil {
		if errors.Is(err, domain.ErrFullDayConflict) {
			metrics.ShiftConflicts.Inc()
		}
		return respondError(c, err)
	}
	return c.JSON(dto.ShiftAssignmentResponse{
		WorkerID: in.WorkerID,
		Date:     in.Date,
		Shift:    in.Shift,
		VanID:    in.VanID,
	})
}

// Get godoc
// @Summary      Obtener asignación por trabajador, fecha y turno
// @Tags         shifts
// @Security     Bearer
// @Produce      json
// @Param        workerId  path   string  true  "ID del trabajador"
// @Param        date      path   string  true  "Fecha (AAAA-MM-DD)"
// @Param        shift     path   string  true  "MORNING | AFTERNOON | FULL_DAY"
// @Success      200  {object}  dto.ShiftAssignmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shifts/{workerId}/{date}/{shift} [get]
func (h *ShiftHandler) Get(c *fiber.Ctx) error {
	date, err := time.Parse(dto.DateLayout, c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser AAAA-MM-DD"})
	}
	a, err := h.uc.Get(c.Context(), c.Params("workerId"), date, c.Params("shift"))
	if err != nil {
		return respondError(c, err)
	}
	if a == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "asignación no encontrada"})
	}
	return c.JSON(toShiftResponse(a))
}

// ListForWorker godoc
// @Summary      Asignaciones de un trabajador en un rango de fechas
// @Tags         shifts
// @Security     Bearer
// @Produce      json
// @Param        workerId  path   string  true   "ID del trabajador"
// @Param        from      query  string  true   "Desde (AAAA-MM-DD)"
// @Param        to        query  string  true   "Hasta (AAAA-MM-DD)"
// @Success      200  {object}  dto.ShiftListResponse
// @Router       /api/shifts/worker/{workerId} [get]
func (h *ShiftHandler) ListForWorker(c *fiber.Ctx) error {
	from, err := time.Parse(dto.DateLayout, c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser AAAA-MM-DD"})
	}
	to, err := time.Parse(dto.DateLayout, c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser AAAA-MM-DD"})
	}
	list, err := h.uc.ListForWorker(c.Context(), c.Params("workerId"), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toShiftList(list))
}

// ListForDate godoc
// @Summary      Cuadrante completo de una fecha
// @Tags         shifts
// @Security     Bearer
// @Produce      json
// @Param        date  path  string  true  "Fecha (AAAA-MM-DD)"
// @Success      200  {object}  dto.ShiftListResponse
// @Router       /api/shifts/day/{date} [get]
func (h *ShiftHandler) ListForDate(c *fiber.Ctx) error {
	date, err := time.Parse(dto.DateLayout, c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser AAAA-MM-DD"})
	}
	list, err := h.uc.ListForDate(c.Context(), date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toShiftList(list))
}

// Remove godoc
// @Summary      Eliminar asignación
// @Tags         shifts
// @Security     Bearer
// @Param        workerId  path  string  true  "ID del trabajador"
// @Param        date      path  string  true  "Fecha (AAAA-MM-DD)"
// @Param        shift     path  string  true  "MORNING | AFTERNOON | FULL_DAY"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shifts/{workerId}/{date}/{shift} [delete]
func (h *ShiftHandler) Remove(c *fiber.Ctx) error {
	date, err := time.Parse(dto.DateLayout, c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser AAAA-MM-DD"})
	}
	if err := h.uc.Remove(c.Context(), c.Params("workerId"), date, c.Params("shift")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toShiftResponse(a *entity.ShiftAssignment) dto.ShiftAssignmentResponse {
	return dto.ShiftAssignmentResponse{
		WorkerID: a.WorkerID,
		Date:     a.Date.Format(dto.DateLayout),
		Shift:    a.Shift,
		VanID:    a.VanID,
	}
}

func toShiftList(list []*entity.ShiftAssignment) dto.ShiftListResponse {
	out := dto.ShiftListResponse{Items: make([]dto.ShiftAssignmentResponse, 0, len(list))}
	for _, a := range list {
		out.Items = append(out.Items, toShiftResponse(a))
	}
	return out
}
