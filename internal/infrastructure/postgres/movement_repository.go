package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). La tabla es append-only: solo INSERT y SELECT.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, date, kind, item_id, quantity, origin_id, destination_id, work_order, responsible, reason, created_at, created_by`

// Insert anota un movimiento y rellena su id secuencial.
func (r *MovementRepo) Insert(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (date, kind, item_id, quantity, origin_id, destination_id, work_order, responsible, reason, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	createdBy := (*string)(nil)
	if m.CreatedBy != "" {
		createdBy = &m.CreatedBy
	}
	err := r.q.QueryRow(ctx, query,
		m.Date, m.Kind, m.ItemID, m.Quantity, m.OriginID, m.DestinationID,
		nullable(m.WorkOrder), nullable(m.Responsible), nullable(m.Reason),
		m.CreatedAt, createdBy,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// Query consulta el libro con filtros. Orden estable: fecha ascendente y, a
// igual fecha, id ascendente (coincide con el orden de inserción).
func (r *MovementRepo) Query(ctx context.Context, f repository.MovementFilter) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE 1=1`
	args := []any{}
	pos := 1
	if f.ItemID != "" {
		query += fmt.Sprintf(" AND item_id = $%d", pos)
		args = append(args, f.ItemID)
		pos++
	}
	if f.LocationID != "" {
		query += fmt.Sprintf(" AND (origin_id = $%d OR destination_id = $%d)", pos, pos)
		args = append(args, f.LocationID)
		pos++
	}
	if f.Kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", pos)
		args = append(args, f.Kind)
		pos++
	}
	if f.WorkOrder != "" {
		query += fmt.Sprintf(" AND work_order = $%d", pos)
		args = append(args, f.WorkOrder)
		pos++
	}
	if f.Responsible != "" {
		query += fmt.Sprintf(" AND responsible = $%d", pos)
		args = append(args, f.Responsible)
		pos++
	}
	if f.From != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *f.From)
		pos++
	}
	if f.To != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *f.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date ASC, id ASC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var workOrder, responsible, reason, createdBy *string
		if err := rows.Scan(&m.ID, &m.Date, &m.Kind, &m.ItemID, &m.Quantity,
			&m.OriginID, &m.DestinationID, &workOrder, &responsible, &reason,
			&m.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.WorkOrder = deref(workOrder)
		m.Responsible = deref(responsible)
		m.Reason = deref(reason)
		m.CreatedBy = deref(createdBy)
		list = append(list, &m)
	}
	return list, rows.Err()
}

// SumAt aplica la regla de signos para una (ubicación, artículo) en SQL:
// + destino de RECEIPT/TRANSFER, - origen de TRANSFER/CONSUMPTION/LOSS/RETURN.
func (r *MovementRepo) SumAt(ctx context.Context, locationID, itemID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE
			WHEN destination_id = $1 AND kind IN ('RECEIPT','TRANSFER') THEN quantity
			WHEN origin_id = $1 AND kind IN ('TRANSFER','CONSUMPTION','LOSS','RETURN') THEN -quantity
			ELSE 0 END), 0)
		FROM movements
		WHERE item_id = $2 AND (origin_id = $1 OR destination_id = $1)`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, locationID, itemID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum stock at location: %w", err)
	}
	return total, nil
}

// SumTotal stock total del artículo: los traslados internos se anulan entre sí.
func (r *MovementRepo) SumTotal(ctx context.Context, itemID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE
			WHEN kind = 'RECEIPT' THEN quantity
			WHEN kind IN ('CONSUMPTION','LOSS','RETURN') THEN -quantity
			ELSE 0 END), 0)
		FROM movements WHERE item_id = $1`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, itemID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum stock total: %w", err)
	}
	return total, nil
}

// SumByLocation desglose por ubicación del stock de un artículo.
func (r *MovementRepo) SumByLocation(ctx context.Context, itemID string) ([]repository.LocationStock, error) {
	query := `
		SELECT loc, COALESCE(SUM(signed), 0) FROM (
			SELECT destination_id AS loc, quantity AS signed FROM movements
			WHERE item_id = $1 AND destination_id IS NOT NULL AND kind IN ('RECEIPT','TRANSFER')
			UNION ALL
			SELECT origin_id, -quantity FROM movements
			WHERE item_id = $1 AND origin_id IS NOT NULL AND kind IN ('TRANSFER','CONSUMPTION','LOSS','RETURN')
		) s GROUP BY loc ORDER BY loc`
	rows, err := r.q.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("sum by location: %w", err)
	}
	defer rows.Close()

	var list []repository.LocationStock
	for rows.Next() {
		var s repository.LocationStock
		if err := rows.Scan(&s.LocationID, &s.Quantity); err != nil {
			return nil, fmt.Errorf("scan location stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// SnapshotAt stock por artículo de una ubicación, ordenado por nombre de artículo.
func (r *MovementRepo) SnapshotAt(ctx context.Context, locationID string) ([]repository.ItemStock, error) {
	query := `
		SELECT m.item_id, i.name, i.unit, COALESCE(SUM(CASE
			WHEN m.destination_id = $1 AND m.kind IN ('RECEIPT','TRANSFER') THEN m.quantity
			WHEN m.origin_id = $1 AND m.kind IN ('TRANSFER','CONSUMPTION','LOSS','RETURN') THEN -m.quantity
			ELSE 0 END), 0)
		FROM movements m
		JOIN items i ON i.id = m.item_id
		WHERE m.origin_id = $1 OR m.destination_id = $1
		GROUP BY m.item_id, i.name, i.unit
		ORDER BY i.name`
	rows, err := r.q.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("snapshot at location: %w", err)
	}
	defer rows.Close()

	var list []repository.ItemStock
	for rows.Next() {
		var s repository.ItemStock
		if err := rows.Scan(&s.ItemID, &s.ItemName, &s.Unit, &s.Quantity); err != nil {
			return nil, fmt.Errorf("scan item stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// ExistsForLocation indica si la ubicación aparece en algún movimiento.
func (r *MovementRepo) ExistsForLocation(ctx context.Context, locationID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM movements WHERE origin_id = $1 OR destination_id = $1)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, locationID).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists for location: %w", err)
	}
	return exists, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
