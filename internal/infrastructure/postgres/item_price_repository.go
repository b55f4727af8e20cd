package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gmao-api/internal/domain/entity"
	"github.com/jhoicas/Gmao-api/internal/domain/repository"
)

var _ repository.ItemPriceRepository = (*ItemPriceRepo)(nil)

// ItemPriceRepo implementación del historial de precios sobre PostgreSQL
// (usable con pool o tx). El historial es append-only.
type ItemPriceRepo struct {
	q Querier
}

// NewItemPriceRepository construye el adaptador del historial de precios.
func NewItemPriceRepository(q Querier) *ItemPriceRepo {
	return &ItemPriceRepo{q: q}
}

// Create añade un snapshot de precio al historial.
func (r *ItemPriceRepo) Create(p *entity.ItemPrice) error {
	query := `
		INSERT INTO item_prices (id, item_id, supplier_id, price, effective_date, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ItemID, p.SupplierID, p.Price, p.EffectiveDate, p.Notes, p.CreatedBy, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item price: %w", err)
	}
	return nil
}

// ListByItem lista el historial de precios de un item, más recientes primero.
func (r *ItemPriceRepo) ListByItem(itemID string, limit, offset int) ([]*entity.ItemPrice, error) {
	query := `
		SELECT id, item_id, supplier_id, price, effective_date, notes, created_by, created_at
		FROM item_prices
		WHERE item_id = $1
		ORDER BY effective_date DESC, created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list item prices: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemPrice
	for rows.Next() {
		var p entity.ItemPrice
		if err := rows.Scan(&p.ID, &p.ItemID, &p.SupplierID, &p.Price, &p.EffectiveDate, &p.Notes, &p.CreatedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item price: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
