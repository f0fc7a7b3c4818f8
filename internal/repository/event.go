package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/wenderson1/VibraTicket/internal/domain"
)

const eventColumns = `id, name, description, start_date, end_date, status,
			  banner_url, minimum_age, venue_id, affiliate_id, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (name, description, start_date, end_date, status,
				  banner_url, minimum_age, venue_id, affiliate_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id, created_at`
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		e.Name, e.Description, e.StartDate, e.EndDate, e.Status,
		e.BannerURL, e.MinimumAge, e.VenueID, e.AffiliateID,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	if err = row.Scan(&e.ID, &e.CreatedAt); err != nil {
		return fmt.Errorf("scan event id: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	return scanEvent(row)
}

// FindOverlap looks for any non-cancelled event at the venue whose interval
// intersects [start, end]. The two closed intervals intersect exactly when
// each starts no later than the other ends; this single predicate covers
// identical, contained and partially overlapping ranges. domain.Overlaps
// states the same rule in code and carries its tests.
func (r *EventRepository) FindOverlap(ctx context.Context, venueID int64, start, end time.Time, excludeID int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE venue_id = $1
				AND status <> $2
				AND id <> $3
				AND start_date <= $5
				AND end_date >= $4
			  LIMIT 1`
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		venueID, domain.EventStatusCancelled, excludeID, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("find event overlap: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, nil
		}
		return nil, err
	}

	return e, nil
}

func (r *EventRepository) HasTickets(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM tickets WHERE event_id = $1)`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return false, fmt.Errorf("check event tickets: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan event tickets: %w", err)
	}

	return exists, nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET name = $2, description = $3, start_date = $4, end_date = $5,
				  status = $6, banner_url = $7, minimum_age = $8, venue_id = $9,
				  affiliate_id = $10, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Description, e.StartDate, e.EndDate,
		e.Status, e.BannerURL, e.MinimumAge, e.VenueID, e.AffiliateID,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.NotFound("event not found")
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.NotFound("event not found")
	}

	return nil
}

const eventDetailsQuery = `
		SELECT
			e.id, e.name, e.description, e.start_date, e.end_date, e.status,
			e.banner_url, e.minimum_age, e.venue_id, e.affiliate_id,
			e.created_at, e.updated_at,
			v.id, v.name, v.address, v.city, v.state, v.zip_code, v.capacity,
			a.id, a.name, a.document, a.email, a.phone
		FROM events e
		JOIN venues v ON v.id = e.venue_id
		JOIN affiliates a ON a.id = e.affiliate_id`

func (r *EventRepository) GetDetails(ctx context.Context, id int64) (*domain.EventDetails, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, eventDetailsQuery+` WHERE e.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get event details: %w", err)
	}

	return scanEventDetails(row)
}

func (r *EventRepository) GetDetailsByTicketID(ctx context.Context, ticketID string) (*domain.EventDetails, error) {
	query := eventDetailsQuery + `
		JOIN tickets t ON t.event_id = e.id
		WHERE t.id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("get event by ticket: %w", err)
	}

	return scanEventDetails(row)
}

func scanEvent(row *sql.Row) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.Name, &e.Description, &e.StartDate, &e.EndDate, &e.Status,
		&e.BannerURL, &e.MinimumAge, &e.VenueID, &e.AffiliateID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("event not found")
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func scanEventDetails(row *sql.Row) (*domain.EventDetails, error) {
	var d domain.EventDetails
	err := row.Scan(
		&d.Event.ID, &d.Event.Name, &d.Event.Description, &d.Event.StartDate,
		&d.Event.EndDate, &d.Event.Status, &d.Event.BannerURL, &d.Event.MinimumAge,
		&d.Event.VenueID, &d.Event.AffiliateID, &d.Event.CreatedAt, &d.Event.UpdatedAt,
		&d.Venue.ID, &d.Venue.Name, &d.Venue.Address, &d.Venue.City, &d.Venue.State,
		&d.Venue.ZipCode, &d.Venue.Capacity,
		&d.Affiliate.ID, &d.Affiliate.Name, &d.Affiliate.Document,
		&d.Affiliate.Email, &d.Affiliate.Phone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("event not found")
		}
		return nil, fmt.Errorf("scan event details: %w", err)
	}

	return &d, nil
}
