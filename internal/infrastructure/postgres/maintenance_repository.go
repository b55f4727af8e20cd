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

var _ repository.MaintenanceRepository = (*MaintenanceRepo)(nil)

const maintenanceColumns = `id, site_id, material_id, zone_id, title, description, kind, status, scheduled_for, completed_at, assigned_to, created_by, created_at, updated_at`

// MaintenanceRepo implementación del puerto MaintenanceRepository sobre PostgreSQL.
type MaintenanceRepo struct {
	pool *pgxpool.Pool
}

// NewMaintenanceRepository construye el adaptador de persistencia para mantenimientos.
func NewMaintenanceRepository(pool *pgxpool.Pool) *MaintenanceRepo {
	return &MaintenanceRepo{pool: pool}
}

// Create persiste un nuevo mantenimiento.
func (r *MaintenanceRepo) Create(m *entity.Maintenance) error {
	query := `
		INSERT INTO maintenances (id, site_id, material_id, zone_id, title, description, kind, status, scheduled_for, completed_at, assigned_to, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.pool.Exec(context.Background(), query,
		m.ID, m.SiteID, m.MaterialID, m.ZoneID, m.Title, m.Description, m.Kind, m.Status,
		m.ScheduledFor, m.CompletedAt, m.AssignedTo, m.CreatedBy, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert maintenance: %w", err)
	}
	return nil
}

// GetByID obtiene un mantenimiento por ID.
func (r *MaintenanceRepo) GetByID(id string) (*entity.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenances WHERE id = $1`
	var m entity.Maintenance
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.SiteID, &m.MaterialID, &m.ZoneID, &m.Title, &m.Description, &m.Kind, &m.Status,
		&m.ScheduledFor, &m.CompletedAt, &m.AssignedTo, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get maintenance: %w", err)
	}
	return &m, nil
}

// ListBySite lista mantenimientos de una sede, próximos primero, con filtro opcional por estado.
func (r *MaintenanceRepo) ListBySite(siteID, status string, limit, offset int) ([]*entity.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + `
		FROM maintenances
		WHERE site_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY scheduled_for ASC
		LIMIT $3 OFFSET $4`
	rows, err := r.pool.Query(context.Background(), query, siteID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list maintenances: %w", err)
	}
	defer rows.Close()
	var list []*entity.Maintenance
	for rows.Next() {
		var m entity.Maintenance
		err := rows.Scan(&m.ID, &m.SiteID, &m.MaterialID, &m.ZoneID, &m.Title, &m.Description, &m.Kind, &m.Status,
			&m.ScheduledFor, &m.CompletedAt, &m.AssignedTo, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan maintenance: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza un mantenimiento existente.
func (r *MaintenanceRepo) Update(m *entity.Maintenance) error {
	query := `
		UPDATE maintenances SET title = $2, description = $3, status = $4, scheduled_for = $5, completed_at = $6, assigned_to = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		m.ID, m.Title, m.Description, m.Status, m.ScheduledFor, m.CompletedAt, m.AssignedTo, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update maintenance: %w", err)
	}
	return nil
}

// Delete elimina un mantenimiento por ID.
func (r *MaintenanceRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM maintenances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete maintenance: %w", err)
	}
	return nil
}
