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

type SectorRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSectorRepo(db *dbpg.DB) *SectorRepository {
	return &SectorRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SectorRepository) Create(ctx context.Context, s *domain.Sector) error {
	query := `INSERT INTO sectors (name, price, capacity, available_tickets, event_id)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		s.Name, s.Price, s.Capacity, s.AvailableTickets, s.EventID,
	)
	if err != nil {
		return fmt.Errorf("insert sector: %w", err)
	}
	if err = row.Scan(&s.ID); err != nil {
		return fmt.Errorf("scan sector id: %w", err)
	}

	return nil
}

func (r *SectorRepository) GetByID(ctx context.Context, id int64) (*domain.Sector, error) {
	query := `SELECT id, name, price, capacity, available_tickets, event_id
			  FROM sectors
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get sector: %w", err)
	}

	var s domain.Sector
	if err = row.Scan(&s.ID, &s.Name, &s.Price, &s.Capacity, &s.AvailableTickets, &s.EventID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("sector not found")
		}
		return nil, fmt.Errorf("scan sector: %w", err)
	}

	return &s, nil
}

func (r *SectorRepository) Update(ctx context.Context, s *domain.Sector) error {
	query := `UPDATE sectors
			  SET name = $2, price = $3, capacity = $4, available_tickets = $5
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.Name, s.Price, s.Capacity, s.AvailableTickets,
	)
	if err != nil {
		return fmt.Errorf("update sector: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sector rows affected: %w", err)
	}
	if rows == 0 {
		return domain.NotFound("sector not found")
	}

	return nil
}
