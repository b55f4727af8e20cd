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

var _ repository.IncidentRepository = (*IncidentRepo)(nil)

const incidentColumns = `id, site_id, zone_id, title, description, priority, status, reported_by, resolved_at, created_at, updated_at`

// IncidentRepo implementación del puerto IncidentRepository sobre PostgreSQL.
type IncidentRepo struct {
	pool *pgxpool.Pool
}

// NewIncidentRepository construye el adaptador de persistencia para incidencias.
func NewIncidentRepository(pool *pgxpool.Pool) *IncidentRepo {
	return &IncidentRepo{pool: pool}
}

// Create persiste una nueva incidencia.
func (r *IncidentRepo) Create(i *entity.Incident) error {
	query := `
		INSERT INTO incidents (id, site_id, zone_id, title, description, priority, status, reported_by, resolved_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		i.ID, i.SiteID, i.ZoneID, i.Title, i.Description, i.Priority, i.Status, i.ReportedBy, i.ResolvedAt, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert incident: %w", err)
	}
	return nil
}

// GetByID obtiene una incidencia por ID.
func (r *IncidentRepo) GetByID(id string) (*entity.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1`
	var i entity.Incident
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.SiteID, &i.ZoneID, &i.Title, &i.Description, &i.Priority, &i.Status, &i.ReportedBy, &i.ResolvedAt, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get incident: %w", err)
	}
	return &i, nil
}

// ListBySite lista incidencias de una sede, más recientes primero, con filtro opcional por estado.
func (r *IncidentRepo) ListBySite(siteID, status string, limit, offset int) ([]*entity.Incident, error) {
	query := `SELECT ` + incidentColumns + `
		FROM incidents
		WHERE site_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.pool.Query(context.Background(), query, siteID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Incident
	for rows.Next() {
		var i entity.Incident
		err := rows.Scan(&i.ID, &i.SiteID, &i.ZoneID, &i.Title, &i.Description, &i.Priority, &i.Status, &i.ReportedBy, &i.ResolvedAt, &i.CreatedAt, &i.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan incident: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update actualiza una incidencia existente.
func (r *IncidentRepo) Update(i *entity.Incident) error {
	query := `
		UPDATE incidents SET title = $2, description = $3, priority = $4, status = $5, resolved_at = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		i.ID, i.Title, i.Description, i.Priority, i.Status, i.ResolvedAt, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update incident: %w", err)
	}
	return nil
}

// Delete elimina una incidencia por ID.
func (r *IncidentRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM incidents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete incident: %w", err)
	}
	return nil
}
