package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Gmao-api/internal/domain/entity"
	"github.com/jhoicas/Gmao-api/internal/domain/repository"
)

var _ repository.CleaningRepository = (*CleaningRepo)(nil)

// CleaningRepo implementación del puerto CleaningRepository sobre PostgreSQL.
type CleaningRepo struct {
	pool *pgxpool.Pool
}

// NewCleaningRepository construye el adaptador de persistencia para limpiezas.
func NewCleaningRepository(pool *pgxpool.Pool) *CleaningRepo {
	return &CleaningRepo{pool: pool}
}

// Create persiste un registro de limpieza.
func (r *CleaningRepo) Create(c *entity.Cleaning) error {
	query := `
		INSERT INTO cleanings (id, site_id, zone_id, performed_by, notes, cleaned_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.SiteID, c.ZoneID, c.PerformedBy, c.Notes, c.CleanedAt, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cleaning: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de limpieza por ID.
func (r *CleaningRepo) GetByID(id string) (*entity.Cleaning, error) {
	query := `
		SELECT id, site_id, zone_id, performed_by, notes, cleaned_at, created_at
		FROM cleanings WHERE id = $1`
	var c entity.Cleaning
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.SiteID, &c.ZoneID, &c.PerformedBy, &c.Notes, &c.CleanedAt, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cleaning: %w", err)
	}
	return &c, nil
}

// ListByZone lista limpiezas de una zona, más recientes primero, con rango de fechas opcional.
func (r *CleaningRepo) ListByZone(zoneID string, from, to *time.Time, limit, offset int) ([]*entity.Cleaning, error) {
	query := `
		SELECT id, site_id, zone_id, performed_by, notes, cleaned_at, created_at
		FROM cleanings
		WHERE zone_id = $1
		  AND ($2::timestamptz IS NULL OR cleaned_at >= $2)
		  AND ($3::timestamptz IS NULL OR cleaned_at <= $3)
		ORDER BY cleaned_at DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.pool.Query(context.Background(), query, zoneID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cleanings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cleaning
	for rows.Next() {
		var c entity.Cleaning
		if err := rows.Scan(&c.ID, &c.SiteID, &c.ZoneID, &c.PerformedBy, &c.Notes, &c.CleanedAt, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cleaning: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un registro de limpieza por ID.
func (r *CleaningRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM cleanings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cleaning: %w", err)
	}
	return nil
}
