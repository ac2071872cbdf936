package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/normalize"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
// name_search guarda la clave normalizada (sin tildes, minúsculas) para búsquedas.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, name, unit, alert_threshold, active, created_at, updated_at`

// Create persiste un artículo.
func (r *ItemRepo) Create(ctx context.Context, i *entity.Item) error {
	query := `
		INSERT INTO items (id, name, name_search, unit, alert_threshold, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		i.ID, i.Name, normalize.Fold(i.Name), i.Unit, i.AlertThreshold, i.Active, i.CreatedAt, i.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID; nil si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	var i entity.Item
	err := r.q.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.Name, &i.Unit, &i.AlertThreshold, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

// Update actualiza un artículo, recalculando la clave de búsqueda.
func (r *ItemRepo) Update(ctx context.Context, i *entity.Item) error {
	query := `
		UPDATE items SET name = $2, name_search = $3, unit = $4, alert_threshold = $5, active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		i.ID, i.Name, normalize.Fold(i.Name), i.Unit, i.AlertThreshold, i.Active, i.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// List busca por clave normalizada; search vacío lista todos.
func (r *ItemRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items`
	args := []any{}
	pos := 1
	if search != "" {
		query += fmt.Sprintf(" WHERE name_search LIKE '%%' || $%d || '%%'", pos)
		args = append(args, search)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// ListActive artículos activos ordenados por nombre (foto de un recuento).
func (r *ItemRepo) ListActive(ctx context.Context) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE active ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// ListBelowThreshold artículos activos con stock total bajo umbral, agregando
// el libro de movimientos en la misma consulta.
func (r *ItemRepo) ListBelowThreshold(ctx context.Context) ([]repository.ItemAlert, error) {
	query := `
		SELECT i.id, i.name, i.unit, i.alert_threshold, i.active, i.created_at, i.updated_at,
		       COALESCE(s.total, 0)
		FROM items i
		LEFT JOIN (
			SELECT item_id, SUM(CASE
				WHEN kind = 'RECEIPT' THEN quantity
				WHEN kind IN ('CONSUMPTION','LOSS','RETURN') THEN -quantity
				ELSE 0 END) AS total
			FROM movements GROUP BY item_id
		) s ON s.item_id = i.id
		WHERE i.active AND COALESCE(s.total, 0) < i.alert_threshold
		ORDER BY i.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list below threshold: %w", err)
	}
	defer rows.Close()

	var list []repository.ItemAlert
	for rows.Next() {
		var a repository.ItemAlert
		if err := rows.Scan(&a.Item.ID, &a.Item.Name, &a.Item.Unit, &a.Item.AlertThreshold,
			&a.Item.Active, &a.Item.CreatedAt, &a.Item.UpdatedAt, &a.Total); err != nil {
			return nil, fmt.Errorf("scan item alert: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func scanItems(rows pgx.Rows) ([]*entity.Item, error) {
	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(&i.ID, &i.Name, &i.Unit, &i.AlertThreshold, &i.Active, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
