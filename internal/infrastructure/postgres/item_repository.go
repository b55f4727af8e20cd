package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gmao-api/internal/domain"
	"github.com/jhoicas/Gmao-api/internal/domain/entity"
	"github.com/jhoicas/Gmao-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `
	id, site_id, name, reference, price, currency, supplier_id,
	entry_total, exit_total,
	warning_enabled, warning_threshold, critical_enabled, critical_threshold,
	alert_recipients, created_at, updated_at`

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de items. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo item con acumulados a cero.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (
			id, site_id, name, reference, price, currency, supplier_id,
			entry_total, exit_total,
			warning_enabled, warning_threshold, critical_enabled, critical_threshold,
			alert_recipients, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SiteID, item.Name, item.Reference, item.Price, item.Currency, item.SupplierID,
		item.EntryTotal, item.ExitTotal,
		item.WarningEnabled, item.WarningThreshold, item.CriticalEnabled, item.CriticalThreshold,
		item.AlertRecipients, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get item")
}

// GetForUpdate obtiene un item y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *ItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get item for update")
}

// ListBySite lista items de la sede. El término de búsqueda llega ya
// normalizado (minúsculas, sin acentos) y se compara contra nombre y
// referencia con unaccent.
func (r *ItemRepo) ListBySite(siteID, search string, limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + `
		FROM items
		WHERE site_id = $1
		  AND ($2 = '' OR unaccent(lower(name)) LIKE '%' || $2 || '%'
		       OR unaccent(lower(reference)) LIKE '%' || $2 || '%')
		ORDER BY name ASC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, siteID, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		item, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables del item. Los acumulados NO se
// tocan aquí: van siempre por AddToEntryTotal/AddToExitTotal.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET
			name = $2, reference = $3, price = $4, currency = $5, supplier_id = $6,
			warning_enabled = $7, warning_threshold = $8,
			critical_enabled = $9, critical_threshold = $10,
			alert_recipients = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Reference, item.Price, item.Currency, item.SupplierID,
		item.WarningEnabled, item.WarningThreshold,
		item.CriticalEnabled, item.CriticalThreshold,
		item.AlertRecipients, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// UpdatePrice sobrescribe precio y proveedor vigentes del item.
func (r *ItemRepo) UpdatePrice(id string, price decimal.Decimal, supplierID *string) error {
	query := `UPDATE items SET price = $2, supplier_id = $3, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, price, supplierID)
	if err != nil {
		return fmt.Errorf("update item price: %w", err)
	}
	return nil
}

// AddToEntryTotal aplica un incremento relativo sobre entry_total. La
// suma la hace la base de datos, nunca se reescribe un valor leído.
func (r *ItemRepo) AddToEntryTotal(id string, delta int) error {
	query := `UPDATE items SET entry_total = entry_total + $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("add to entry_total: %w", err)
	}
	return nil
}

// AddToExitTotal aplica un incremento relativo sobre exit_total.
func (r *ItemRepo) AddToExitTotal(id string, delta int) error {
	query := `UPDATE items SET exit_total = exit_total + $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("add to exit_total: %w", err)
	}
	return nil
}

// Delete elimina un item por ID.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (r *ItemRepo) scanOne(row pgx.Row, op string) (*entity.Item, error) {
	var i entity.Item
	err := row.Scan(
		&i.ID, &i.SiteID, &i.Name, &i.Reference, &i.Price, &i.Currency, &i.SupplierID,
		&i.EntryTotal, &i.ExitTotal,
		&i.WarningEnabled, &i.WarningThreshold, &i.CriticalEnabled, &i.CriticalThreshold,
		&i.AlertRecipients, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &i, nil
}

func (r *ItemRepo) scanRow(rows pgx.Rows) (*entity.Item, error) {
	var i entity.Item
	err := rows.Scan(
		&i.ID, &i.SiteID, &i.Name, &i.Reference, &i.Price, &i.Currency, &i.SupplierID,
		&i.EntryTotal, &i.ExitTotal,
		&i.WarningEnabled, &i.WarningThreshold, &i.CriticalEnabled, &i.CriticalThreshold,
		&i.AlertRecipients, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}
