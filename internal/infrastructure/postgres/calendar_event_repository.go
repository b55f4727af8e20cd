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

var _ repository.CalendarEventRepository = (*CalendarEventRepo)(nil)

const calendarEventColumns = `id, site_id, title, description, kind, starts_at, ends_at, related_type, related_id, created_by, created_at, updated_at`

// CalendarEventRepo implementación del puerto CalendarEventRepository sobre PostgreSQL.
type CalendarEventRepo struct {
	pool *pgxpool.Pool
}

// NewCalendarEventRepository construye el adaptador de persistencia para eventos.
func NewCalendarEventRepository(pool *pgxpool.Pool) *CalendarEventRepo {
	return &CalendarEventRepo{pool: pool}
}

// Create persiste un nuevo evento.
func (r *CalendarEventRepo) Create(e *entity.CalendarEvent) error {
	query := `
		INSERT INTO calendar_events (id, site_id, title, description, kind, starts_at, ends_at, related_type, related_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.SiteID, e.Title, e.Description, e.Kind, e.StartsAt, e.EndsAt, e.RelatedType, e.RelatedID, e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert calendar event: %w", err)
	}
	return nil
}

// GetByID obtiene un evento por ID.
func (r *CalendarEventRepo) GetByID(id string) (*entity.CalendarEvent, error) {
	query := `SELECT ` + calendarEventColumns + ` FROM calendar_events WHERE id = $1`
	var e entity.CalendarEvent
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.SiteID, &e.Title, &e.Description, &e.Kind, &e.StartsAt, &e.EndsAt, &e.RelatedType, &e.RelatedID, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get calendar event: %w", err)
	}
	return &e, nil
}

// ListBySite lista eventos de una sede que solapan el rango pedido.
func (r *CalendarEventRepo) ListBySite(siteID string, from, to *time.Time, limit, offset int) ([]*entity.CalendarEvent, error) {
	query := `SELECT ` + calendarEventColumns + `
		FROM calendar_events
		WHERE site_id = $1
		  AND ($2::timestamptz IS NULL OR ends_at >= $2)
		  AND ($3::timestamptz IS NULL OR starts_at <= $3)
		ORDER BY starts_at ASC
		LIMIT $4 OFFSET $5`
	rows, err := r.pool.Query(context.Background(), query, siteID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}
	defer rows.Close()
	var list []*entity.CalendarEvent
	for rows.Next() {
		var e entity.CalendarEvent
		err := rows.Scan(&e.ID, &e.SiteID, &e.Title, &e.Description, &e.Kind, &e.StartsAt, &e.EndsAt, &e.RelatedType, &e.RelatedID, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan calendar event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza un evento existente.
func (r *CalendarEventRepo) Update(e *entity.CalendarEvent) error {
	query := `
		UPDATE calendar_events SET title = $2, description = $3, kind = $4, starts_at = $5, ends_at = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.Title, e.Description, e.Kind, e.StartsAt, e.EndsAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update calendar event: %w", err)
	}
	return nil
}

// Delete elimina un evento por ID.
func (r *CalendarEventRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM calendar_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete calendar event: %w", err)
	}
	return nil
}
