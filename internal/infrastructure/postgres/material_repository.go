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

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

const materialColumns = `id, site_id, zone_id, name, serial_number, brand, status, installed_at, created_at, updated_at`

// MaterialRepo implementación del puerto MaterialRepository sobre PostgreSQL.
type MaterialRepo struct {
	pool *pgxpool.Pool
}

// NewMaterialRepository construye el adaptador de persistencia para materiales.
func NewMaterialRepository(pool *pgxpool.Pool) *MaterialRepo {
	return &MaterialRepo{pool: pool}
}

// Create persiste un nuevo material.
func (r *MaterialRepo) Create(m *entity.Material) error {
	query := `
		INSERT INTO materials (id, site_id, zone_id, name, serial_number, brand, status, installed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		m.ID, m.SiteID, m.ZoneID, m.Name, m.SerialNumber, m.Brand, m.Status, m.InstalledAt, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtiene un material por ID.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1`
	var m entity.Material
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.SiteID, &m.ZoneID, &m.Name, &m.SerialNumber, &m.Brand, &m.Status, &m.InstalledAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// ListByZone lista materiales de una zona con paginación.
func (r *MaterialRepo) ListByZone(zoneID string, limit, offset int) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + `
		FROM materials WHERE zone_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, zoneID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list materials by zone: %w", err)
	}
	defer rows.Close()
	return scanMaterials(rows)
}

// ListBySite lista materiales de una sede con paginación.
func (r *MaterialRepo) ListBySite(siteID string, limit, offset int) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + `
		FROM materials WHERE site_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, siteID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list materials by site: %w", err)
	}
	defer rows.Close()
	return scanMaterials(rows)
}

// Update actualiza un material existente.
func (r *MaterialRepo) Update(m *entity.Material) error {
	query := `
		UPDATE materials SET name = $2, serial_number = $3, brand = $4, status = $5, installed_at = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		m.ID, m.Name, m.SerialNumber, m.Brand, m.Status, m.InstalledAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// Delete elimina un material por ID.
func (r *MaterialRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}

func scanMaterials(rows pgx.Rows) ([]*entity.Material, error) {
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		err := rows.Scan(&m.ID, &m.SiteID, &m.ZoneID, &m.Name, &m.SerialNumber, &m.Brand, &m.Status, &m.InstalledAt, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
