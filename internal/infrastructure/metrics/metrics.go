// Package metrics expone los contadores Prometheus de la aplicación.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MovementsAppended movimientos anotados en el libro, por tipo.
	MovementsAppended = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "almacen_movements_appended_total",
		Help: "Movimientos anotados en el libro, por tipo.",
	}, []string{"kind"})

	// CountsFinalized recuentos físicos finalizados.
	CountsFinalized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "almacen_inventory_counts_finalized_total",
		Help: "Recuentos de inventario finalizados.",
	})

	// AdjustmentsApplied movimientos de ajuste emitidos al finalizar recuentos.
	AdjustmentsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "almacen_inventory_adjustments_applied_total",
		Help: "Movimientos de ajuste emitidos por regularización de inventario.",
	})

	// ShiftConflicts choques de jornada completa rechazados (sin force).
	ShiftConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "almacen_shift_full_day_conflicts_total",
		Help: "Asignaciones de turno rechazadas por choque de jornada completa.",
	})
)
