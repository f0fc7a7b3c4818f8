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

const paymentColumns = `id, order_id, amount, method, status, transaction_id,
			  gateway_response, is_active, created_at, processed_at`

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (id, order_id, amount, method, status,
				  transaction_id, gateway_response, is_active, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.OrderID, p.Amount, p.Method, p.Status,
		p.TransactionID, p.GatewayResponse, p.Active, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	var p domain.Payment
	if err = scanPayment(row.Scan, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *PaymentRepository) ListByOrder(ctx context.Context, orderID int64) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE order_id = $1
			  ORDER BY created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list payments by order: %w", err)
	}
	defer rows.Close()

	var res []*domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err = scanPayment(rows.Scan, &p); err != nil {
			return nil, err
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}

// Settle applies the gateway outcome under a row lock so two callbacks for
// the same payment serialize; the second sees the settled status and fails
// the transition check.
func (r *PaymentRepository) Settle(ctx context.Context, id string, status domain.PaymentStatus, transactionID, gatewayResponse *string) (*domain.Payment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1 FOR UPDATE`, id)

	var p domain.Payment
	if err = scanPayment(row.Scan, &p); err != nil {
		return nil, err
	}

	if err = p.Settle(status, transactionID, gatewayResponse, time.Now().UTC()); err != nil {
		return nil, err
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE payments
		SET status = $2, transaction_id = $3, gateway_response = $4, processed_at = $5
		WHERE id = $1`,
		p.ID, p.Status, p.TransactionID, p.GatewayResponse, p.ProcessedAt,
	); err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit payment settle: %w", err)
	}

	return &p, nil
}

func scanPayment(scan func(...any) error, p *domain.Payment) error {
	err := scan(
		&p.ID, &p.OrderID, &p.Amount, &p.Method, &p.Status,
		&p.TransactionID, &p.GatewayResponse, &p.Active, &p.CreatedAt, &p.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFound("payment not found")
		}
		return fmt.Errorf("scan payment: %w", err)
	}

	return nil
}
