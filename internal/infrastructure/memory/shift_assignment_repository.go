package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ShiftAssignmentRepository = (*ShiftAssignmentRepository)(nil)

// ShiftAssignmentRepository asignaciones de turno en memoria. La unicidad de la
// clave compuesta (worker, date, shift) se comprueba a mano en Insert.
type ShiftAssignmentRepository struct {
	store *Store
}

// NewShiftAssignmentRepository crea el repositorio sobre el almacén compartido.
func NewShiftAssignmentRepository(store *Store) *ShiftAssignmentRepository {
	return &ShiftAssignmentRepository{store: store}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (r *ShiftAssignmentRepository) Get(_ context.Context, workerID string, date time.Time, shift string) (*entity.ShiftAssignment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, a := range r.store.shifts {
		if a.WorkerID == workerID && sameDay(a.Date, date) && a.Shift == shift {
			out := a
			return &out, nil
		}
	}
	return nil, nil
}

func (r *ShiftAssignmentRepository) ListForWorkerDate(_ context.Context, workerID string, date time.Time) ([]*entity.ShiftAssignment, error) {
	return r.listWhere(func(a entity.ShiftAssignment) bool {
		return a.WorkerID == workerID && sameDay(a.Date, date)
	}, byShift)
}

// ListForWorkerDateForUpdate en memoria no bloquea filas; equivale a ListForWorkerDate.
func (r *ShiftAssignmentRepository) ListForWorkerDateForUpdate(ctx context.Context, workerID string, date time.Time) ([]*entity.ShiftAssignment, error) {
	return r.ListForWorkerDate(ctx, workerID, date)
}

func (r *ShiftAssignmentRepository) Insert(_ context.Context, a *entity.ShiftAssignment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.shifts {
		if existing.WorkerID == a.WorkerID && sameDay(existing.Date, a.Date) && existing.Shift == a.Shift {
			return domain.ErrDuplicate
		}
	}
	r.store.shifts = append(r.store.shifts, *a)
	return nil
}

func (r *ShiftAssignmentRepository) Upsert(_ context.Context, a *entity.ShiftAssignment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, existing := range r.store.shifts {
		if existing.WorkerID == a.WorkerID && sameDay(existing.Date, a.Date) && existing.Shift == a.Shift {
			r.store.shifts[i].VanID = a.VanID
			r.store.shifts[i].UpdatedAt = a.UpdatedAt
			return nil
		}
	}
	r.store.shifts = append(r.store.shifts, *a)
	return nil
}

func (r *ShiftAssignmentRepository) UpdateShift(_ context.Context, workerID string, date time.Time, oldShift, newShift string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, existing := range r.store.shifts {
		if existing.WorkerID == workerID && sameDay(existing.Date, date) && existing.Shift == oldShift {
			r.store.shifts[i].Shift = newShift
			r.store.shifts[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *ShiftAssignmentRepository) Delete(_ context.Context, workerID string, date time.Time, shift string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, existing := range r.store.shifts {
		if existing.WorkerID == workerID && sameDay(existing.Date, date) && existing.Shift == shift {
			r.store.shifts = append(r.store.shifts[:i], r.store.shifts[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *ShiftAssignmentRepository) ListForWorkerRange(_ context.Context, workerID string, from, to time.Time) ([]*entity.ShiftAssignment, error) {
	return r.listWhere(func(a entity.ShiftAssignment) bool {
		return a.WorkerID == workerID && !a.Date.Before(from) && !a.Date.After(to)
	}, func(list []*entity.ShiftAssignment) {
		sort.Slice(list, func(i, j int) bool {
			if !list[i].Date.Equal(list[j].Date) {
				return list[i].Date.After(list[j].Date)
			}
			return list[i].Shift < list[j].Shift
		})
	})
}

func (r *ShiftAssignmentRepository) ListForDate(_ context.Context, date time.Time) ([]*entity.ShiftAssignment, error) {
	return r.listWhere(func(a entity.ShiftAssignment) bool {
		return sameDay(a.Date, date)
	}, func(list []*entity.ShiftAssignment) {
		sort.Slice(list, func(i, j int) bool {
			if list[i].WorkerID != list[j].WorkerID {
				return list[i].WorkerID < list[j].WorkerID
			}
			return list[i].Shift < list[j].Shift
		})
	})
}

func (r *ShiftAssignmentRepository) listWhere(match func(entity.ShiftAssignment) bool, order func([]*entity.ShiftAssignment)) ([]*entity.ShiftAssignment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var list []*entity.ShiftAssignment
	for _, a := range r.store.shifts {
		if match(a) {
			out := a
			list = append(list, &out)
		}
	}
	order(list)
	return list, nil
}

func byShift(list []*entity.ShiftAssignment) {
	sort.Slice(list, func(i, j int) bool { return list[i].Shift < list[j].Shift })
}
