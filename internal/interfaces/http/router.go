package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/application/reconciliation"
	"github.com/jhoicas/Almacen-api/internal/application/shifts"
	"github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	LocationUC *usecase.LocationUseCase
	ItemUC     *usecase.ItemUseCase
	LedgerUC   *ledger.UseCase
	StockUC    *stock.UseCase
	CountUC    *reconciliation.UseCase
	ShiftUC    *shifts.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	manage := RequireRole(entity.RoleAdmin, entity.RoleAlmacenero)

	// Ubicaciones: almacén central y furgonetas (altas/bajas solo gestión)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", manage, locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", manage, locationHandler.Update)
	locations.Delete("/:id", manage, locationHandler.Delete)

	// Artículos
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", manage, itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/alerts", itemHandler.Alerts)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", manage, itemHandler.Update)

	// Libro de movimientos
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.LedgerUC)
	movements.Post("/", movementHandler.Append)
	movements.Get("/", movementHandler.Query)

	// Proyección de stock
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Get("/items/:id", stockHandler.ItemStock)
	stockGroup.Get("/locations/:id", stockHandler.LocationStock)

	// Recuentos físicos (finalizar solo gestión)
	counts := protected.Group("/counts")
	countHandler := NewCountHandler(deps.CountUC)
	counts.Post("/", countHandler.Open)
	counts.Get("/", countHandler.List)
	counts.Get("/:id", countHandler.Get)
	counts.Get("/:id/preview", countHandler.Preview)
	counts.Put("/:id/lines/:itemId", countHandler.RecordLine)
	counts.Post("/:id/finalize", manage, countHandler.Finalize)

	// Asignaciones de turno (escribir solo gestión)
	shiftsGroup := protected.Group("/shifts")
	shiftHandler := NewShiftHandler(deps.ShiftUC)
	shiftsGroup.Post("/", manage, shiftHandler.Assign)
	shiftsGroup.Get("/day/:date", shiftHandler.ListForDate)
	shiftsGroup.Get("/worker/:workerId", shiftHandler.ListForWorker)
	shiftsGroup.Get("/:workerId/:date/:shift", shiftHandler.Get)
	shiftsGroup.Delete("/:workerId/:date/:shift", manage, shiftHandler.Remove)
}
