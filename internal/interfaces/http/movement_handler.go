package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/metrics"
)

// MovementHandler maneja el libro de movimientos (protegido).
type MovementHandler struct {
	uc *ledger.UseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *ledger.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Append godoc
// @Summary      Anotar movimiento en el libro
// @Description  Entrada, traslado, consumo, pérdida o devolución. La cantidad es siempre positiva.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AppendMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Append(c *fiber.Ctx) error {
	var in dto.AppendMovementRequest
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

	mov, err := h.uc.Append(c.Context(), GetUserID(c), ledger.AppendInput{
		Date:          date,
		Kind:          in.Kind,
		ItemID:        in.ItemID,
		Quantity:      in.Quantity,
		OriginID:      in.OriginID,
		DestinationID: in.DestinationID,
		WorkOrder:     in.WorkOrder,
		Responsible:   in.Responsible,
		Reason:        in.Reason,
	})
	if err != nil {
		return respondError(c, err)
	}
	metrics.MovementsAppended.WithLabelValues(mov.Kind).Inc()
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// Query godoc
// @Summary      Consultar el libro de movimientos
// @Description  Filtros combinables; orden por fecha e id ascendentes.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        item_id      query  string  false  "Artículo"
// @Param        location_id  query  string  false  "Ubicación (origen o destino)"
// @Param        kind         query  string  false  "RECEIPT | TRANSFER | CONSUMPTION | LOSS | RETURN"
// @Param        work_order   query  string  false  "Orden de trabajo"
// @Param        responsible  query  string  false  "Responsable"
// @Param        from         query  string  false  "Fecha desde (AAAA-MM-DD)"
// @Param        to           query  string  false  "Fecha hasta (AAAA-MM-DD)"
// @Param        limit        query  int     false  "Límite"  default(100)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) Query(c *fiber.Ctx) error {
	filter := repository.MovementFilter{
		ItemID:      c.Query("item_id"),
		LocationID:  c.Query("location_id"),
		Kind:        c.Query("kind"),
		WorkOrder:   c.Query("work_order"),
		Responsible: c.Query("responsible"),
		Limit:       c.QueryInt("limit", 100),
		Offset:      c.QueryInt("offset", 0),
	}
	for q, dst := range map[string]**time.Time{"from": &filter.From, "to": &filter.To} {
		if raw := c.Query(q); raw != "" {
			parsed, err := time.Parse(dto.DateLayout, raw)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: q + " debe ser AAAA-MM-DD"})
			}
			*dst = &parsed
		}
	}

	list, err := h.uc.Query(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	})
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		Date:          m.Date.Format(dto.DateLayout),
		Kind:          m.Kind,
		ItemID:        m.ItemID,
		Quantity:      m.Quantity,
		OriginID:      m.OriginID,
		DestinationID: m.DestinationID,
		WorkOrder:     m.WorkOrder,
		Responsible:   m.Responsible,
		Reason:        m.Reason,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}
