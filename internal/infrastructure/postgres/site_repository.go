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

var _ repository.SiteRepository = (*SiteRepo)(nil)

// SiteRepo implementación del puerto SiteRepository sobre PostgreSQL.
type SiteRepo struct {
	pool *pgxpool.Pool
}

// NewSiteRepository construye el adaptador de persistencia para sedes.
func NewSiteRepository(pool *pgxpool.Pool) *SiteRepo {
	return &SiteRepo{pool: pool}
}

// Create persiste una nueva sede.
func (r *SiteRepo) Create(site *entity.Site) error {
	query := `
		INSERT INTO sites (id, name, address, city, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		site.ID, site.Name, site.Address, site.City, site.Status, site.CreatedAt, site.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert site: %w", err)
	}
	return nil
}

// GetByID obtiene una sede por ID.
func (r *SiteRepo) GetByID(id string) (*entity.Site, error) {
	query := `
		SELECT id, name, address, city, status, created_at, updated_at
		FROM sites WHERE id = $1`
	var s entity.Site
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Address, &s.City, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get site: %w", err)
	}
	return &s, nil
}

// List lista sedes con paginación.
func (r *SiteRepo) List(limit, offset int) ([]*entity.Site, error) {
	query := `
		SELECT id, name, address, city, status, created_at, updated_at
		FROM sites ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}
	defer rows.Close()
	var list []*entity.Site
	for rows.Next() {
		var s entity.Site
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.City, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan site: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza una sede existente.
func (r *SiteRepo) Update(site *entity.Site) error {
	query := `
		UPDATE sites SET name = $2, address = $3, city = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		site.ID, site.Name, site.Address, site.City, site.Status, site.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update site: %w", err)
	}
	return nil
}
