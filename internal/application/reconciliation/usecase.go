package reconciliation

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// UseCase motor de regularización de inventario físico: abre un recuento con el
// teórico fotografiado desde la proyección, acepta cantidades contadas y, al
// finalizar, emite los movimientos de ajuste que devuelven el libro a la
// realidad contada. Separar "anotar recuentos" de "aplicar ajustes" permite
// corregir un recuento varias veces antes de que toque el libro.
type UseCase struct {
	txRunner     TxRunner
	countRepo    repository.InventoryCountRepository
	locationRepo repository.LocationRepository
}

// NewUseCase construye el motor de regularización.
func NewUseCase(
	txRunner TxRunner,
	countRepo repository.InventoryCountRepository,
	locationRepo repository.LocationRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		countRepo:    countRepo,
		locationRepo: locationRepo,
	}
}

// OpenInput parámetros de apertura de un recuento físico.
type OpenInput struct {
	LocationID       string
	Date             time.Time
	Note             string
	IncludeZeroStock bool // incluir artículos con teórico cero
}

// Result estadísticas agregadas de una finalización (o de su simulación).
type Result struct {
	CountID             string
	TotalLines          int
	CountedLines        int
	LinesWithDifference int
	SurplusLines        int
	SurplusQuantity     decimal.Decimal // magnitud sumada de los sobrantes
	ShortageLines       int
	ShortageQuantity    decimal.Decimal // magnitud sumada de los faltantes
	AdjustmentsApplied  int
}

// Open crea un recuento en la ubicación con una línea por artículo activo,
// teórico = proyección de stock en ese instante y contado sin fijar. Con
// IncludeZeroStock a false se omiten los artículos con teórico cero. La foto
// del teórico y la cabecera se crean en la misma transacción: ningún
// movimiento puede colarse entre la lectura y el alta.
func (uc *UseCase) Open(ctx context.Context, actorID string, in OpenInput) (*entity.InventoryCount, error) {
	loc, err := uc.locationRepo.GetByID(ctx, in.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	count := &entity.InventoryCount{
		ID:          uuid.New().String(),
		Date:        date,
		Responsible: actorID,
		LocationID:  in.LocationID,
		Note:        in.Note,
		Status:      entity.CountStatusOpen,
		CreatedAt:   time.Now(),
	}

	err = uc.txRunner.RunReconciliation(ctx, func(
		countRepo repository.InventoryCountRepository,
		movRepo repository.MovementRepository,
		itemRepo repository.ItemRepository,
	) error {
		items, err := itemRepo.ListActive(ctx)
		if err != nil {
			return err
		}
		snapshot, err := movRepo.SnapshotAt(ctx, in.LocationID)
		if err != nil {
			return err
		}
		theoretical := make(map[string]decimal.Decimal, len(snapshot))
		for _, s := range snapshot {
			theoretical[s.ItemID] = s.Quantity
		}

		sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
		for _, item := range items {
			qty := theoretical[item.ID] // cero si no hay movimientos
			if qty.IsZero() && !in.IncludeZeroStock {
				continue
			}
			count.Lines = append(count.Lines, entity.CountLine{
				CountID:     count.ID,
				ItemID:      item.ID,
				ItemName:    item.Name,
				Theoretical: qty,
			})
		}
		return countRepo.Create(ctx, count)
	})
	if err != nil {
		return nil, err
	}
	return count, nil
}

// RecordCount fija la cantidad contada de una línea y recalcula la diferencia
// (contado - teórico). Repetible mientras el recuento siga abierto: gana la
// última escritura.
func (uc *UseCase) RecordCount(ctx context.Context, countID, itemID string, counted decimal.Decimal) (*entity.CountLine, error) {
	var line *entity.CountLine
	err := uc.txRunner.RunReconciliation(ctx, func(
		countRepo repository.InventoryCountRepository,
		_ repository.MovementRepository,
		_ repository.ItemRepository,
	) error {
		count, err := countRepo.GetByIDForUpdate(ctx, countID)
		if err != nil {
			return err
		}
		if count == nil {
			return domain.ErrNotFound
		}
		if count.IsFinalized() {
			return domain.ErrAlreadyFinalized
		}
		l := count.Line(itemID)
		if l == nil {
			return domain.ErrNotFound
		}
		difference := counted.Sub(l.Theoretical)
		if err := countRepo.UpdateLine(ctx, countID, itemID, counted, difference); err != nil {
			return err
		}
		l.Counted = &counted
		l.Difference = &difference
		line = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

// Finalize cierra el recuento (OPEN -> FINALIZED, terminal) en una sola
// transacción. Con applyAdjustments, por cada línea contada con diferencia no
// nula anota un movimiento compensatorio: RECEIPT hacia la ubicación si sobra,
// CONSUMPTION desde ella si falta, con OT sintética que referencia el recuento.
// Las líneas sin contar se ignoran: "no contado" no es "cero". Un segundo
// Finalize devuelve ErrAlreadyFinalized.
func (uc *UseCase) Finalize(ctx context.Context, actorID, countID string, applyAdjustments bool) (*Result, error) {
	var result *Result
	err := uc.txRunner.RunReconciliation(ctx, func(
		countRepo repository.InventoryCountRepository,
		movRepo repository.MovementRepository,
		_ repository.ItemRepository,
	) error {
		count, err := countRepo.GetByIDForUpdate(ctx, countID)
		if err != nil {
			return err
		}
		if count == nil {
			return domain.ErrNotFound
		}
		if count.IsFinalized() {
			return domain.ErrAlreadyFinalized
		}

		result = summarize(count)
		if applyAdjustments {
			now := time.Now()
			for i := range count.Lines {
				line := &count.Lines[i]
				if line.Counted == nil {
					continue
				}
				difference := line.Counted.Sub(line.Theoretical)
				if difference.IsZero() {
					continue
				}
				adj := adjustmentMovement(count, line, difference, actorID, now)
				if err := adj.Validate(); err != nil {
					return err
				}
				if err := movRepo.Insert(ctx, adj); err != nil {
					return err
				}
				result.AdjustmentsApplied++
			}
		}
		return countRepo.SetStatus(ctx, countID, entity.CountStatusFinalized)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FinalizePreview calcula las estadísticas de cierre sin tocar nada: sirve de
// simulación previa sin gastar la única finalización del recuento.
func (uc *UseCase) FinalizePreview(ctx context.Context, countID string) (*Result, error) {
	count, err := uc.countRepo.GetByID(ctx, countID)
	if err != nil {
		return nil, err
	}
	if count == nil {
		return nil, domain.ErrNotFound
	}
	return summarize(count), nil
}

// Get devuelve un recuento con sus líneas.
func (uc *UseCase) Get(ctx context.Context, countID string) (*entity.InventoryCount, error) {
	count, err := uc.countRepo.GetByID(ctx, countID)
	if err != nil {
		return nil, err
	}
	if count == nil {
		return nil, domain.ErrNotFound
	}
	return count, nil
}

// List cabeceras de recuentos, más recientes primero.
func (uc *UseCase) List(ctx context.Context, locationID string, limit, offset int) ([]*entity.InventoryCount, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return uc.countRepo.List(ctx, locationID, limit, offset)
}

// adjustmentMovement construye el movimiento compensatorio de una línea:
// sobrante entra como RECEIPT, faltante sale como CONSUMPTION.
func adjustmentMovement(count *entity.InventoryCount, line *entity.CountLine, difference decimal.Decimal, actorID string, now time.Time) *entity.Movement {
	locationID := count.LocationID
	mov := &entity.Movement{
		Date:        now,
		ItemID:      line.ItemID,
		WorkOrder:   fmt.Sprintf("INV-%s", count.ID),
		Responsible: actorID,
		Reason:      fmt.Sprintf("regularización por inventario físico %s", count.ID),
		CreatedAt:   now,
		CreatedBy:   actorID,
	}
	if difference.IsPositive() {
		mov.Kind = entity.MovementKindReceipt
		mov.Quantity = difference
		mov.DestinationID = &locationID
	} else {
		mov.Kind = entity.MovementKindConsumption
		mov.Quantity = difference.Neg()
		mov.OriginID = &locationID
	}
	return mov
}

func summarize(count *entity.InventoryCount) *Result {
	r := &Result{
		CountID:          count.ID,
		TotalLines:       len(count.Lines),
		SurplusQuantity:  decimal.Zero,
		ShortageQuantity: decimal.Zero,
	}
	for i := range count.Lines {
		line := &count.Lines[i]
		if line.Counted == nil {
			continue
		}
		r.CountedLines++
		difference := line.Counted.Sub(line.Theoretical)
		if difference.IsZero() {
			continue
		}
		r.LinesWithDifference++
		if difference.IsPositive() {
			r.SurplusLines++
			r.SurplusQuantity = r.SurplusQuantity.Add(difference)
		} else {
			r.ShortageLines++
			r.ShortageQuantity = r.ShortageQuantity.Add(difference.Neg())
		}
	}
	return r
}
