package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/normalize"
)

var _ repository.LocationRepository = (*LocationRepository)(nil)
var _ repository.ItemRepository = (*ItemRepository)(nil)
var _ repository.UserRepository = (*UserRepository)(nil)

// LocationRepository ubicaciones en memoria.
type LocationRepository struct {
	store *Store
}

// NewLocationRepository crea el repositorio sobre el almacén compartido.
func NewLocationRepository(store *Store) *LocationRepository {
	return &LocationRepository{store: store}
}

func (r *LocationRepository) Create(_ context.Context, l *entity.Location) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.locations[l.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.locations[l.ID] = *l
	return nil
}

func (r *LocationRepository) GetByID(_ context.Context, id string) (*entity.Location, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	l, ok := r.store.locations[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *LocationRepository) Update(_ context.Context, l *entity.Location) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.locations[l.ID] = *l
	return nil
}

func (r *LocationRepository) List(_ context.Context, kind string, limit, offset int) ([]*entity.Location, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var list []*entity.Location
	for _, l := range r.store.locations {
		if kind != "" && l.Kind != kind {
			continue
		}
		loc := l
		list = append(list, &loc)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return page(list, limit, offset), nil
}

func (r *LocationRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.locations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.locations, id)
	return nil
}

// ItemRepository artículos en memoria.
type ItemRepository struct {
	store *Store
}

// NewItemRepository crea el repositorio sobre el almacén compartido.
func NewItemRepository(store *Store) *ItemRepository {
	return &ItemRepository{store: store}
}

func (r *ItemRepository) Create(_ context.Context, i *entity.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.items[i.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.items[i.ID] = *i
	return nil
}

func (r *ItemRepository) GetByID(_ context.Context, id string) (*entity.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i, ok := r.store.items[id]
	if !ok {
		return nil, nil
	}
	return &i, nil
}

func (r *ItemRepository) Update(_ context.Context, i *entity.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.items[i.ID] = *i
	return nil
}

func (r *ItemRepository) List(_ context.Context, search string, limit, offset int) ([]*entity.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var list []*entity.Item
	for _, i := range r.store.items {
		if search != "" && !strings.Contains(normalize.Fold(i.Name), search) {
			continue
		}
		item := i
		list = append(list, &item)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return page(list, limit, offset), nil
}

func (r *ItemRepository) ListActive(_ context.Context) ([]*entity.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var list []*entity.Item
	for _, i := range r.store.items {
		if !i.Active {
			continue
		}
		item := i
		list = append(list, &item)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *ItemRepository) ListBelowThreshold(ctx context.Context) ([]repository.ItemAlert, error) {
	items, err := r.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	movRepo := NewMovementRepository(r.store)

	var list []repository.ItemAlert
	for _, i := range items {
		total, err := movRepo.SumTotal(ctx, i.ID)
		if err != nil {
			return nil, err
		}
		if total.LessThan(i.AlertThreshold) {
			list = append(list, repository.ItemAlert{Item: *i, Total: total})
		}
	}
	return list, nil
}

// UserRepository usuarios en memoria.
type UserRepository struct {
	store *Store
}

// NewUserRepository crea el repositorio sobre el almacén compartido.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.store.users[u.ID] = *u
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetByIDForUpdate en memoria no bloquea filas; equivale a GetByID.
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id string) (*entity.User, error) {
	return r.GetByID(ctx, id)
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var list []*entity.User
	for _, u := range r.store.users {
		user := u
		list = append(list, &user)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return page(list, limit, offset), nil
}

// page aplica limit/offset a una lista ya ordenada.
func page[T any](list []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(list) {
			return nil
		}
		list = list[offset:]
	}
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
