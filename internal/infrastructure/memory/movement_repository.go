package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepository)(nil)

// MovementRepository libro de movimientos en memoria.
type MovementRepository struct {
	store *Store
}

// NewMovementRepository crea el repositorio sobre el almacén compartido.
func NewMovementRepository(store *Store) *MovementRepository {
	return &MovementRepository{store: store}
}

// Insert anota el movimiento y le asigna el siguiente id secuencial.
func (r *MovementRepository) Insert(_ context.Context, m *entity.Movement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	m.ID = r.store.nextMovID
	r.store.nextMovID++
	r.store.movements = append(r.store.movements, *m)
	return nil
}

// Query filtra el libro y ordena por fecha ascendente, id ascendente.
func (r *MovementRepository) Query(_ context.Context, f repository.MovementFilter) ([]*entity.Movement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matched []entity.Movement
	for _, m := range r.store.movements {
		if f.ItemID != "" && m.ItemID != f.ItemID {
			continue
		}
		if f.LocationID != "" && !m.TouchesLocation(f.LocationID) {
			continue
		}
		if f.Kind != "" && m.Kind != f.Kind {
			continue
		}
		if f.WorkOrder != "" && m.WorkOrder != f.WorkOrder {
			continue
		}
		if f.Responsible != "" && m.Responsible != f.Responsible {
			continue
		}
		if f.From != nil && m.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && m.Date.After(*f.To) {
			continue
		}
		matched = append(matched, m)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.Before(matched[j].Date)
		}
		return matched[i].ID < matched[j].ID
	})

	if f.Offset > 0 {
		if f.Offset >= len(matched) {
			return nil, nil
		}
		matched = matched[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}

	list := make([]*entity.Movement, len(matched))
	for i := range matched {
		m := matched[i]
		list[i] = &m
	}
	return list, nil
}

// SumAt aplica la regla de signos para una (ubicación, artículo).
func (r *MovementRepository) SumAt(_ context.Context, locationID, itemID string) (decimal.Decimal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	total := decimal.Zero
	for _, m := range r.store.movements {
		if m.ItemID != itemID {
			continue
		}
		total = total.Add(m.SignedQuantityAt(locationID))
	}
	return total, nil
}

// SumTotal stock total del artículo; los traslados internos se anulan.
func (r *MovementRepository) SumTotal(_ context.Context, itemID string) (decimal.Decimal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	total := decimal.Zero
	for _, m := range r.store.movements {
		if m.ItemID != itemID {
			continue
		}
		total = total.Add(m.SignedQuantityTotal())
	}
	return total, nil
}

// SumByLocation desglose por ubicación del stock de un artículo, orden por id de ubicación.
func (r *MovementRepository) SumByLocation(_ context.Context, itemID string) ([]repository.LocationStock, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	byLoc := make(map[string]decimal.Decimal)
	for _, m := range r.store.movements {
		if m.ItemID != itemID {
			continue
		}
		if m.DestinationID != nil {
			byLoc[*m.DestinationID] = byLoc[*m.DestinationID].Add(m.SignedQuantityAt(*m.DestinationID))
		}
		if m.OriginID != nil {
			byLoc[*m.OriginID] = byLoc[*m.OriginID].Add(m.SignedQuantityAt(*m.OriginID))
		}
	}

	var list []repository.LocationStock
	for loc, qty := range byLoc {
		list = append(list, repository.LocationStock{LocationID: loc, Quantity: qty})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].LocationID < list[j].LocationID })
	return list, nil
}

// SnapshotAt stock por artículo de una ubicación, orden por nombre de artículo.
func (r *MovementRepository) SnapshotAt(_ context.Context, locationID string) ([]repository.ItemStock, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	byItem := make(map[string]decimal.Decimal)
	for _, m := range r.store.movements {
		if !m.TouchesLocation(locationID) {
			continue
		}
		byItem[m.ItemID] = byItem[m.ItemID].Add(m.SignedQuantityAt(locationID))
	}

	var list []repository.ItemStock
	for itemID, qty := range byItem {
		s := repository.ItemStock{ItemID: itemID, Quantity: qty}
		if item, ok := r.store.items[itemID]; ok {
			s.ItemName = item.Name
			s.Unit = item.Unit
		}
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ItemName < list[j].ItemName })
	return list, nil
}

// ExistsForLocation indica si la ubicación aparece en algún movimiento.
func (r *MovementRepository) ExistsForLocation(_ context.Context, locationID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, m := range r.store.movements {
		if m.TouchesLocation(locationID) {
			return true, nil
		}
	}
	return false, nil
}
