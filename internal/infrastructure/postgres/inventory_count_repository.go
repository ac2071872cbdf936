package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.InventoryCountRepository = (*InventoryCountRepo)(nil)

// InventoryCountRepo implementación de InventoryCountRepository sobre PostgreSQL
// (usable con pool o tx). Cabecera en inventory_counts, líneas en
// inventory_count_lines con PK compuesta (count_id, item_id).
type InventoryCountRepo struct {
	q Querier
}

// NewInventoryCountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryCountRepository(q Querier) *InventoryCountRepo {
	return &InventoryCountRepo{q: q}
}

// Create persiste cabecera y líneas del recuento.
func (r *InventoryCountRepo) Create(ctx context.Context, c *entity.InventoryCount) error {
	header := `
		INSERT INTO inventory_counts (id, date, responsible, location_id, note, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, header,
		c.ID, c.Date, nullable(c.Responsible), c.LocationID, nullable(c.Note), c.Status, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("create inventory count: %w", err)
	}

	line := `
		INSERT INTO inventory_count_lines (count_id, item_id, theoretical, counted, difference)
		VALUES ($1, $2, $3, $4, $5)`
	for i := range c.Lines {
		l := &c.Lines[i]
		if _, err := r.q.Exec(ctx, line, c.ID, l.ItemID, l.Theoretical, l.Counted, l.Difference); err != nil {
			return fmt.Errorf("create count line: %w", err)
		}
	}
	return nil
}

// GetByID recuento con sus líneas; nil si no existe.
func (r *InventoryCountRepo) GetByID(ctx context.Context, id string) (*entity.InventoryCount, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate ídem bloqueando la cabecera (SELECT FOR UPDATE).
func (r *InventoryCountRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.InventoryCount, error) {
	return r.get(ctx, id, true)
}

func (r *InventoryCountRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.InventoryCount, error) {
	header := `
		SELECT id, date, responsible, location_id, note, status, created_at
		FROM inventory_counts WHERE id = $1`
	if forUpdate {
		header += " FOR UPDATE"
	}
	var c entity.InventoryCount
	var responsible, note *string
	err := r.q.QueryRow(ctx, header, id).Scan(
		&c.ID, &c.Date, &responsible, &c.LocationID, &note, &c.Status, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory count: %w", err)
	}
	c.Responsible = deref(responsible)
	c.Note = deref(note)

	lines := `
		SELECT l.count_id, l.item_id, i.name, l.theoretical, l.counted, l.difference
		FROM inventory_count_lines l
		JOIN items i ON i.id = l.item_id
		WHERE l.count_id = $1
		ORDER BY i.name`
	rows, err := r.q.Query(ctx, lines, id)
	if err != nil {
		return nil, fmt.Errorf("get count lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l entity.CountLine
		if err := rows.Scan(&l.CountID, &l.ItemID, &l.ItemName, &l.Theoretical, &l.Counted, &l.Difference); err != nil {
			return nil, fmt.Errorf("scan count line: %w", err)
		}
		c.Lines = append(c.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateLine fija contado y diferencia de una línea; ErrNotFound si no existe.
func (r *InventoryCountRepo) UpdateLine(ctx context.Context, countID, itemID string, counted, difference decimal.Decimal) error {
	query := `
		UPDATE inventory_count_lines SET counted = $3, difference = $4
		WHERE count_id = $1 AND item_id = $2`
	tag, err := r.q.Exec(ctx, query, countID, itemID, counted, difference)
	if err != nil {
		return fmt.Errorf("update count line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetStatus cambia el estado de la cabecera.
func (r *InventoryCountRepo) SetStatus(ctx context.Context, id, status string) error {
	tag, err := r.q.Exec(ctx, `UPDATE inventory_counts SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("set count status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List cabeceras sin líneas, más recientes primero; locationID vacío = todas.
func (r *InventoryCountRepo) List(ctx context.Context, locationID string, limit, offset int) ([]*entity.InventoryCount, error) {
	query := `
		SELECT id, date, responsible, location_id, note, status, created_at
		FROM inventory_counts`
	args := []any{}
	pos := 1
	if locationID != "" {
		query += fmt.Sprintf(" WHERE location_id = $%d", pos)
		args = append(args, locationID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory counts: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryCount
	for rows.Next() {
		var c entity.InventoryCount
		var responsible, note *string
		if err := rows.Scan(&c.ID, &c.Date, &responsible, &c.LocationID, &note, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory count: %w", err)
		}
		c.Responsible = deref(responsible)
		c.Note = deref(note)
		list = append(list, &c)
	}
	return list, rows.Err()
}
