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

const ticketColumns = `id, ticket_number, price, status, event_id, sector_id,
			  customer_id, order_id, is_used, used_at, created_at`

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	var t domain.Ticket
	if err = row.Scan(
		&t.ID, &t.TicketNumber, &t.Price, &t.Status, &t.EventID, &t.SectorID,
		&t.CustomerID, &t.OrderID, &t.Used, &t.UsedAt, &t.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("ticket not found")
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return &t, nil
}

// IssueBatch inserts the tickets and takes them out of the sector's
// available counter in one transaction. The conditional decrement is the
// capacity guard: zero rows affected means the sector cannot cover the
// batch, and nothing is persisted.
func (r *TicketRepository) IssueBatch(ctx context.Context, sectorID int64, tickets []*domain.Ticket) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE sectors
		SET available_tickets = available_tickets - $2
		WHERE id = $1 AND available_tickets >= $2`,
		sectorID, len(tickets),
	)
	if err != nil {
		return fmt.Errorf("decrement sector availability: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sector rows affected: %w", err)
	}
	if rows == 0 {
		return domain.Validationf("sector %d cannot issue %d more tickets", sectorID, len(tickets))
	}

	query := `INSERT INTO tickets (id, ticket_number, price, status, event_id, sector_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, t := range tickets {
		if _, err = tx.ExecContext(
			ctx, query,
			t.ID, t.TicketNumber, t.Price, t.Status, t.EventID, t.SectorID, t.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert ticket: %w", err)
		}
	}

	return tx.Commit()
}

// MarkUsed burns a ticket at the gate: the update only matches a sold,
// unused row, so the check and the write are one atomic statement. When
// nothing matched, the ticket is re-read and Ticket.MarkUsed names the
// reason, keeping the diagnosis on the domain rule.
func (r *TicketRepository) MarkUsed(ctx context.Context, id string) (*domain.Ticket, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE tickets
			  SET status = $3, is_used = TRUE, used_at = now()
			  WHERE id = $1 AND status = $2 AND NOT is_used
			  RETURNING ` + ticketColumns
	row := tx.QueryRowContext(ctx, query, id, domain.TicketStatusSold, domain.TicketStatusUsed)

	var t domain.Ticket
	err = row.Scan(
		&t.ID, &t.TicketNumber, &t.Price, &t.Status, &t.EventID, &t.SectorID,
		&t.CustomerID, &t.OrderID, &t.Used, &t.UsedAt, &t.CreatedAt,
	)
	if err == nil {
		return &t, tx.Commit()
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("mark ticket used: %w", err)
	}

	stale := domain.Ticket{ID: id}
	checkQuery := `SELECT status, is_used FROM tickets WHERE id = $1`
	if scanErr := tx.QueryRowContext(ctx, checkQuery, id).Scan(&stale.Status, &stale.Used); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return nil, domain.NotFound("ticket not found")
		}
		return nil, fmt.Errorf("check ticket: %w", scanErr)
	}
	if markErr := stale.MarkUsed(time.Now()); markErr != nil {
		return nil, markErr
	}
	// Same transaction as the update, so a row MarkUsed accepts means the
	// conditional update should have matched.
	return nil, fmt.Errorf("mark ticket used: ticket %s unexpectedly unchanged", id)
}
