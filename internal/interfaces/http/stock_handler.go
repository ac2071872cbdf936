package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/stock"
)

// StockHandler expone la proyección de stock (protegido). Todas las lecturas
// recalculan desde el libro de movimientos.
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// ItemStock godoc
// @Summary      Stock de un artículo: total y desglose por ubicación
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/items/{id} [get]
func (h *StockHandler) ItemStock(c *fiber.Ctx) error {
	itemID := c.Params("id")
	total, err := h.uc.StockTotal(c.Context(), itemID)
	if err != nil {
		return respondError(c, err)
	}
	byLocation, err := h.uc.StockByLocation(c.Context(), itemID)
	if err != nil {
		return respondError(c, err)
	}
	below, err := h.uc.BelowThreshold(c.Context(), itemID)
	if err != nil {
		return respondError(c, err)
	}

	out := dto.ItemStockResponse{
		ItemID:         itemID,
		Total:          total,
		BelowThreshold: below,
		ByLocation:     make([]dto.LocationQuantity, 0, len(byLocation)),
	}
	for _, s := range byLocation {
		out.ByLocation = append(out.ByLocation, dto.LocationQuantity{
			LocationID: s.LocationID,
			Quantity:   s.Quantity,
		})
	}
	return c.JSON(out)
}

// LocationStock godoc
// @Summary      Stock por artículo de una ubicación
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la ubicación"
// @Success      200  {object}  dto.LocationStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/locations/{id} [get]
func (h *StockHandler) LocationStock(c *fiber.Ctx) error {
	locationID := c.Params("id")
	snapshot, err := h.uc.Snapshot(c.Context(), locationID)
	if err != nil {
		return respondError(c, err)
	}
	out := dto.LocationStockResponse{
		LocationID: locationID,
		Items:      make([]dto.ItemQuantity, 0, len(snapshot)),
	}
	for _, s := range snapshot {
		out.Items = append(out.Items, dto.ItemQuantity{
			ItemID:   s.ItemID,
			ItemName: s.ItemName,
			Unit:     s.Unit,
			Quantity: s.Quantity,
		})
	}
	return c.JSON(out)
}
