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

const orderColumns = `id, order_number, total_amount, status, is_active, customer_id, created_at`

type OrderRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOrderRepo(db *dbpg.DB) *OrderRepository {
	return &OrderRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// CreateWithTickets reserves the tickets and persists the order atomically.
// The ticket rows are locked before their status is checked, so a ticket
// that two requests race for is reserved by exactly one of them; the loser
// sees it as no longer available and the whole call rolls back.
func (r *OrderRepository) CreateWithTickets(ctx context.Context, o *domain.Order, ticketIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `
		SELECT id, price, status
		FROM tickets
		WHERE id = ANY($1)
		FOR UPDATE`,
		pq.Array(ticketIDs),
	)
	if err != nil {
		return fmt.Errorf("lock tickets: %w", err)
	}

	locked := make(map[string]*domain.Ticket, len(ticketIDs))
	for rows.Next() {
		var t domain.Ticket
		if err = rows.Scan(&t.ID, &t.Price, &t.Status); err != nil {
			rows.Close()
			return fmt.Errorf("scan ticket: %w", err)
		}
		locked[t.ID] = &t
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return fmt.Errorf("read tickets: %w", err)
	}

	total, err := domain.ReservationTotal(ticketIDs, locked)
	if err != nil {
		return err
	}
	o.TotalAmount = total

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (order_number, total_amount, status, is_active, customer_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		o.OrderNumber, o.TotalAmount, o.Status, o.Active, o.CustomerID,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.Conflict("order number collision, retry the request")
		}
		return fmt.Errorf("insert order: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE tickets
		SET order_id = $1, customer_id = $2, status = $3
		WHERE id = ANY($4)`,
		o.ID, o.CustomerID, domain.TicketStatusReserved, pq.Array(ticketIDs),
	); err != nil {
		return fmt.Errorf("reserve tickets: %w", err)
	}

	return tx.Commit()
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	var o domain.Order
	if err = scanOrder(row.Scan, &o); err != nil {
		return nil, err
	}

	return &o, nil
}

// ApplyPatch re-reads the order under a row lock and applies the patch with
// the state machine enforced against the fresh status, so a concurrent
// update cannot sneak an illegal transition through. Completing an order
// marks its reserved tickets sold; cancelling marks them cancelled.
func (r *OrderRepository) ApplyPatch(ctx context.Context, id int64, patch domain.OrderPatch) (*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id)

	var o domain.Order
	if err = scanOrder(row.Scan, &o); err != nil {
		return nil, err
	}

	hasApproved := false
	if patch.Status != nil && *patch.Status == domain.OrderStatusCompleted {
		err = tx.QueryRowContext(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM payments
				WHERE order_id = $1 AND status = $2 AND is_active
			)`,
			id, domain.PaymentStatusApproved,
		).Scan(&hasApproved)
		if err != nil {
			return nil, fmt.Errorf("check approved payment: %w", err)
		}
	}

	prev := o.Status
	if err = o.ApplyPatch(patch, hasApproved); err != nil {
		return nil, err
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE orders SET status = $2, is_active = $3 WHERE id = $1`,
		o.ID, o.Status, o.Active,
	); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	if o.Status != prev {
		var next domain.TicketStatus
		switch o.Status {
		case domain.OrderStatusCompleted:
			next = domain.TicketStatusSold
		case domain.OrderStatusCancelled:
			next = domain.TicketStatusCancelled
		}
		if next != "" {
			if _, err = tx.ExecContext(ctx, `
				UPDATE tickets SET status = $2 WHERE order_id = $1 AND status = $3`,
				o.ID, next, domain.TicketStatusReserved,
			); err != nil {
				return nil, fmt.Errorf("update order tickets: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit order update: %w", err)
	}

	return &o, nil
}

func (r *OrderRepository) CancelExpired(ctx context.Context, olderThan time.Duration) ([]*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `
		UPDATE orders
		SET status = $2
		WHERE status = $1
		  AND is_active
		  AND created_at + make_interval(secs => $3) < now()
		RETURNING `+orderColumns,
		domain.OrderStatusPendingPayment, domain.OrderStatusCancelled, olderThan.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel expired orders: %w", err)
	}

	var cancelled []*domain.Order
	var ids []int64
	for rows.Next() {
		var o domain.Order
		if err = scanOrder(rows.Scan, &o); err != nil {
			rows.Close()
			return nil, err
		}
		cancelled = append(cancelled, &o)
		ids = append(ids, o.ID)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("read cancelled orders: %w", err)
	}

	if len(ids) > 0 {
		if _, err = tx.ExecContext(ctx, `
			UPDATE tickets SET status = $2 WHERE order_id = ANY($1) AND status = $3`,
			pq.Array(ids), domain.TicketStatusCancelled, domain.TicketStatusReserved,
		); err != nil {
			return nil, fmt.Errorf("cancel expired tickets: %w", err)
		}
	}

	return cancelled, tx.Commit()
}

func scanOrder(scan func(...any) error, o *domain.Order) error {
	err := scan(&o.ID, &o.OrderNumber, &o.TotalAmount, &o.Status, &o.Active, &o.CustomerID, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFound("order not found")
		}
		return fmt.Errorf("scan order: %w", err)
	}

	return nil
}
