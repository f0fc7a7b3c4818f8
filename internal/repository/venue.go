package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/wenderson1/VibraTicket/internal/domain"
)

type VenueRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVenueRepo(db *dbpg.DB) *VenueRepository {
	return &VenueRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	query := `INSERT INTO venues (name, address, city, state, zip_code, latitude, longitude, capacity)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id`
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		v.Name, v.Address, v.City, v.State, v.ZipCode, v.Latitude, v.Longitude, v.Capacity,
	)
	if err != nil {
		return fmt.Errorf("insert venue: %w", err)
	}
	if err = row.Scan(&v.ID); err != nil {
		return fmt.Errorf("scan venue id: %w", err)
	}

	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	query := `SELECT id, name, address, city, state, zip_code, latitude, longitude, capacity
			  FROM venues
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	var v domain.Venue
	if err = row.Scan(
		&v.ID, &v.Name, &v.Address, &v.City, &v.State,
		&v.ZipCode, &v.Latitude, &v.Longitude, &v.Capacity,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("venue not found")
		}
		return nil, fmt.Errorf("scan venue: %w", err)
	}

	return &v, nil
}

func (r *VenueRepository) Update(ctx context.Context, v *domain.Venue) error {
	query := `UPDATE venues
			  SET name = $2, address = $3, city = $4, state = $5,
				  zip_code = $6, latitude = $7, longitude = $8, capacity = $9
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.Name, v.Address, v.City, v.State,
		v.ZipCode, v.Latitude, v.Longitude, v.Capacity,
	)
	if err != nil {
		return fmt.Errorf("update venue: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("venue rows affected: %w", err)
	}
	if rows == 0 {
		return domain.NotFound("venue not found")
	}

	return nil
}

func (r *VenueRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.Validation("cannot delete a venue that has events")
		}
		return fmt.Errorf("delete venue: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("venue rows affected: %w", err)
	}
	if rows == 0 {
		return domain.NotFound("venue not found")
	}

	return nil
}

func (r *VenueRepository) HasEvents(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM events WHERE venue_id = $1)`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return false, fmt.Errorf("check venue events: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan venue events: %w", err)
	}

	return exists, nil
}
