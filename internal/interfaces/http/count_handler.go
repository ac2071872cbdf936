package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/reconciliation"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/metrics"
)

// CountHandler maneja los recuentos físicos de inventario (protegido).
type CountHandler struct {
	uc *reconciliation.UseCase
}

// NewCountHandler construye el handler.
func NewCountHandler(uc *reconciliation.UseCase) *CountHandler {
	return &CountHandler{uc: uc}
}

// Open godoc
// @Summary      Abrir recuento físico en una ubicación
// @Description  Fotografía el stock teórico por artículo activo; las líneas quedan sin contar.
// @Tags         counts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenCountRequest  true  "Parámetros de apertura"
// @Success      201   {object}  dto.CountResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/counts [post]
func (h *CountHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenCountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	var date time.Time
	if in.Date != "" {
		parsed, err := time.Parse(dto.DateLayout, in.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser AAAA-MM-DD"})
		}
		date = parsed
	}
	count, err := h.uc.Open(c.Context(), GetUserID(c), reconciliation.OpenInput{
		LocationID:       in.LocationID,
		Date:             date,
		Note:             in.Note,
		IncludeZeroStock: in.IncludeZeroStock,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toCountResponse(count))
}

// Get godoc
// @Summary      Obtener recuento con sus líneas
// @Tags         counts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del recuento"
// @Success      200  {object}  dto.CountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/counts/{id} [get]
func (h *CountHandler) Get(c *fiber.Ctx) error {
	count, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toCountResponse(count))
}

// List godoc
// @Summary      Listar recuentos, más recientes primero
// @Tags         counts
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Filtrar por ubicación"
// @Param        limit        query  int     false  "Límite"  default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.CountListResponse
// @Router       /api/counts [get]
func (h *CountHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.uc.List(c.Context(), c.Query("location_id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.CountResponse, 0, len(list))
	for _, count := range list {
		items = append(items, toCountResponse(count))
	}
	return c.JSON(dto.CountListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	})
}

// RecordLine godoc
// @Summary      Anotar cantidad contada de un artículo
// @Description  Repetible mientras el recuento siga abierto; gana la última escritura.
// @Tags         counts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "ID del recuento"
// @Param        itemId  path  string  true  "ID del artículo"
// @Param        body    body  dto.RecordCountRequest  true  "Cantidad contada"
// @Success      200  {object}  dto.CountLineResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/counts/{id}/lines/{itemId} [put]
func (h *CountHandler) RecordLine(c *fiber.Ctx) error {
	var in dto.RecordCountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Counted == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "counted es obligatorio"})
	}
	line, err := h.uc.RecordCount(c.Context(), c.Params("id"), c.Params("itemId"), *in.Counted)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.CountLineResponse{
		ItemID:      line.ItemID,
		ItemName:    line.ItemName,
		Theoretical: line.Theoretical,
		Counted:     line.Counted,
		Difference:  line.Difference,
	})
}

// Finalize godoc
// @Summary      Finalizar recuento (OPEN -> FINALIZED, terminal)
// @Description  Con apply_adjustments anota un movimiento compensatorio por cada diferencia.
// @Tags         counts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del recuento"
// @Param        body  body  dto.FinalizeCountRequest  true  "Opciones de cierre"
// @Success      200   {object}  dto.ReconciliationResultResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/counts/{id}/finalize [post]
func (h *CountHandler) Finalize(c *fiber.Ctx) error {
	var in dto.FinalizeCountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.Finalize(c.Context(), GetUserID(c), c.Params("id"), in.ApplyAdjustments)
	if err != nil {
		return respondError(c, err)
	}
	metrics.CountsFinalized.Inc()
	metrics.AdjustmentsApplied.Add(float64(result.AdjustmentsApplied))
	return c.JSON(toResultResponse(result))
}

// Preview godoc
// @Summary      Simular el cierre de un recuento sin aplicar nada
// @Tags         counts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del recuento"
// @Success      200  {object}  dto.ReconciliationResultResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/counts/{id}/preview [get]
func (h *CountHandler) Preview(c *fiber.Ctx) error {
	result, err := h.uc.FinalizePreview(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toResultResponse(result))
}

func toCountResponse(count *entity.InventoryCount) dto.CountResponse {
	out := dto.CountResponse{
		ID:          count.ID,
		Date:        count.Date.Format(dto.DateLayout),
		Responsible: count.Responsible,
		LocationID:  count.LocationID,
		Note:        count.Note,
		Status:      count.Status,
		CreatedAt:   count.CreatedAt,
	}
	for i := range count.Lines {
		l := &count.Lines[i]
		out.Lines = append(out.Lines, dto.CountLineResponse{
			ItemID:      l.ItemID,
			ItemName:    l.ItemName,
			Theoretical: l.Theoretical,
			Counted:     l.Counted,
			Difference:  l.Difference,
		})
	}
	return out
}

func toResultResponse(r *reconciliation.Result) dto.ReconciliationResultResponse {
	return dto.ReconciliationResultResponse{
		CountID:             r.CountID,
		TotalLines:          r.TotalLines,
		CountedLines:        r.CountedLines,
		LinesWithDifference: r.LinesWithDifference,
		SurplusLines:        r.SurplusLines,
		SurplusQuantity:     r.SurplusQuantity,
		ShortageLines:       r.ShortageLines,
		ShortageQuantity:    r.ShortageQuantity,
		AdjustmentsApplied:  r.AdjustmentsApplied,
	}
}
