package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gmao-api/internal/domain/entity"
	"github.com/jhoicas/Gmao-api/internal/domain/repository"
)

var _ repository.ItemMovementRepository = (*ItemMovementRepo)(nil)

const movementColumns = `
	id, item_id, type, quantity, unit_price, total_price,
	supplier_id, invoice_number, invoice_date,
	related_type, related_id,
	notes, movement_date, created_by, created_at`

// ItemMovementRepo implementación de ItemMovementRepository sobre PostgreSQL
// (usable con pool o tx).
type ItemMovementRepo struct {
	q Querier
}

// NewItemMovementRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewItemMovementRepository(q Querier) *ItemMovementRepo {
	return &ItemMovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *ItemMovementRepo) Create(m *entity.ItemMovement) error {
	query := `
		INSERT INTO item_movements (
			id, item_id, type, quantity, unit_price, total_price,
			supplier_id, invoice_number, invoice_date,
			related_type, related_id,
			notes, movement_date, created_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ItemID, m.Type, m.Quantity, m.UnitPrice, m.TotalPrice,
		m.SupplierID, m.InvoiceNumber, m.InvoiceDate,
		m.RelatedType, m.RelatedID,
		m.Notes, m.MovementDate, m.CreatedBy, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *ItemMovementRepo) GetByID(id string) (*entity.ItemMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM item_movements WHERE id = $1`
	var m entity.ItemMovement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ItemID, &m.Type, &m.Quantity, &m.UnitPrice, &m.TotalPrice,
		&m.SupplierID, &m.InvoiceNumber, &m.InvoiceDate,
		&m.RelatedType, &m.RelatedID,
		&m.Notes, &m.MovementDate, &m.CreatedBy, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// Update actualiza un movimiento existente (corrección).
func (r *ItemMovementRepo) Update(m *entity.ItemMovement) error {
	query := `
		UPDATE item_movements SET
			quantity = $2, unit_price = $3, total_price = $4,
			supplier_id = $5, invoice_number = $6, invoice_date = $7,
			notes = $8, movement_date = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Quantity, m.UnitPrice, m.TotalPrice,
		m.SupplierID, m.InvoiceNumber, m.InvoiceDate,
		m.Notes, m.MovementDate,
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	return nil
}

// Delete elimina un movimiento por ID.
func (r *ItemMovementRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM item_movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

// ListByItem lista movimientos de un item, más recientes primero, con rango
// de fechas opcional.
func (r *ItemMovementRepo) ListByItem(itemID string, from, to *time.Time, limit, offset int) ([]*entity.ItemMovement, error) {
	query := `SELECT ` + movementColumns + `
		FROM item_movements
		WHERE item_id = $1
		  AND ($2::timestamptz IS NULL OR movement_date >= $2)
		  AND ($3::timestamptz IS NULL OR movement_date <= $3)
		ORDER BY movement_date DESC, created_at DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, itemID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListAllByItem devuelve todos los movimientos del item en orden cronológico
// ascendente (para el kardex con saldo acumulado).
func (r *ItemMovementRepo) ListAllByItem(itemID string) ([]*entity.ItemMovement, error) {
	query := `SELECT ` + movementColumns + `
		FROM item_movements
		WHERE item_id = $1
		ORDER BY movement_date ASC, created_at ASC`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list all movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// CountByItem cuenta los movimientos de un item.
func (r *ItemMovementRepo) CountByItem(itemID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM item_movements WHERE item_id = $1`, itemID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}

func scanMovements(rows pgx.Rows) ([]*entity.ItemMovement, error) {
	var list []*entity.ItemMovement
	for rows.Next() {
		var m entity.ItemMovement
		err := rows.Scan(
			&m.ID, &m.ItemID, &m.Type, &m.Quantity, &m.UnitPrice, &m.TotalPrice,
			&m.SupplierID, &m.InvoiceNumber, &m.InvoiceDate,
			&m.RelatedType, &m.RelatedID,
			&m.Notes, &m.MovementDate, &m.CreatedBy, &m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
