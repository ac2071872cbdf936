package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.InventoryCountRepository = (*InventoryCountRepository)(nil)

// InventoryCountRepository recuentos físicos en memoria.
type InventoryCountRepository struct {
	store *Store
}

// NewInventoryCountRepository crea el repositorio sobre el almacén compartido.
func NewInventoryCountRepository(store *Store) *InventoryCountRepository {
	return &InventoryCountRepository{store: store}
}

func (r *InventoryCountRepository) Create(_ context.Context, c *entity.InventoryCount) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *c
	stored.Lines = append([]entity.CountLine(nil), c.Lines...)
	r.store.counts[c.ID] = stored
	return nil
}

func (r *InventoryCountRepository) GetByID(_ context.Context, id string) (*entity.InventoryCount, error) {
	return r.get(id)
}

// GetByIDForUpdate en memoria no bloquea filas; equivale a GetByID.
func (r *InventoryCountRepository) GetByIDForUpdate(_ context.Context, id string) (*entity.InventoryCount, error) {
	return r.get(id)
}

func (r *InventoryCountRepository) get(id string) (*entity.InventoryCount, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.counts[id]
	if !ok {
		return nil, nil
	}
	out := c
	out.Lines = append([]entity.CountLine(nil), c.Lines...)
	for i := range out.Lines {
		if item, ok := r.store.items[out.Lines[i].ItemID]; ok {
			out.Lines[i].ItemName = item.Name
		}
	}
	sort.Slice(out.Lines, func(i, j int) bool { return out.Lines[i].ItemName < out.Lines[j].ItemName })
	return &out, nil
}

func (r *InventoryCountRepository) UpdateLine(_ context.Context, countID, itemID string, counted, difference decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.counts[countID]
	if !ok {
		return domain.ErrNotFound
	}
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			cv, dv := counted, difference
			c.Lines[i].Counted = &cv
			c.Lines[i].Difference = &dv
			r.store.counts[countID] = c
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *InventoryCountRepository) SetStatus(_ context.Context, id, status string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.counts[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Status = status
	r.store.counts[id] = c
	return nil
}

func (r *InventoryCountRepository) List(_ context.Context, locationID string, limit, offset int) ([]*entity.InventoryCount, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var list []*entity.InventoryCount
	for _, c := range r.store.counts {
		if locationID != "" && c.LocationID != locationID {
			continue
		}
		header := c
		header.Lines = nil
		list = append(list, &header)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.After(list[j].Date)
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return page(list, limit, offset), nil
}
