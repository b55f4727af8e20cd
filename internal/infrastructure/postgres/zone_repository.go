package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Gmao-api/internal/domain/entity"
	"github.com/jhoicas/Gmao-api/internal/domain/repository"
)

var _ repository.ZoneRepository = (*ZoneRepo)(nil)

// ZoneRepo implementación del puerto ZoneRepository sobre PostgreSQL.
type ZoneRepo struct {
	pool *pgxpool.Pool
}

// NewZoneRepository construye el adaptador de persistencia para zonas.
func NewZoneRepository(pool *pgxpool.Pool) *ZoneRepo {
	return &ZoneRepo{pool: pool}
}

// Create persiste una nueva zona.
func (r *ZoneRepo) Create(zone *entity.Zone) error {
	query := `
		INSERT INTO zones (id, site_id, name, floor, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		zone.ID, zone.SiteID, zone.Name, zone.Floor, zone.Description, zone.CreatedAt, zone.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert zone: %w", err)
	}
	return nil
}

// GetByID obtiene una zona por ID.
func (r *ZoneRepo) GetByID(id string) (*entity.Zone, error) {
	query := `
		SELECT id, site_id, name, floor, description, created_at, updated_at
		FROM zones WHERE id = $1`
	var z entity.Zone
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&z.ID, &z.SiteID, &z.Name, &z.Floor, &z.Description, &z.CreatedAt, &z.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get zone: %w", err)
	}
	return &z, nil
}

// ListBySite lista zonas de una sede con paginación.
func (r *ZoneRepo) ListBySite(siteID string, limit, offset int) ([]*entity.Zone, error) {
	query := `
		SELECT id, site_id, name, floor, description, created_at, updated_at
		FROM zones WHERE site_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, siteID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Zone
	for rows.Next() {
		var z entity.Zone
		if err := rows.Scan(&z.ID, &z.SiteID, &z.Name, &z.Floor, &z.Description, &z.CreatedAt, &z.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan zone: %w", err)
		}
		list = append(list, &z)
	}
	return list, rows.Err()
}

// Update actualiza una zona existente.
func (r *ZoneRepo) Update(zone *entity.Zone) error {
	query := `
		UPDATE zones SET name = $2, floor = $3, description = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		zone.ID, zone.Name, zone.Floor, zone.Description, zone.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update zone: %w", err)
	}
	return nil
}

// Delete elimina una zona por ID.
func (r *ZoneRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM zones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete zone: %w", err)
	}
	return nil
}
