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

const affiliateColumns = `id, name, full_name, document, email, phone,
			  bank_name, bank_account, bank_branch, default_commission_rate,
			  is_active, created_at`

type AffiliateRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAffiliateRepo(db *dbpg.DB) *AffiliateRepository {
	return &AffiliateRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AffiliateRepository) Create(ctx context.Context, a *domain.Affiliate) error {
	query := `INSERT INTO affiliates (name, full_name, document, email, phone,
				  bank_name, bank_account, bank_branch, default_commission_rate, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id, created_at`
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		a.Name, a.FullName, a.Document, a.Email, a.Phone,
		a.BankName, a.BankAccount, a.BankBranch, a.DefaultCommissionRate, a.Active,
	)
	if err != nil {
		return fmt.Errorf("insert affiliate: %w", err)
	}
	if err = row.Scan(&a.ID, &a.CreatedAt); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.Conflict("an affiliate with this document already exists")
		}
		return fmt.Errorf("scan affiliate id: %w", err)
	}

	return nil
}

func (r *AffiliateRepository) GetByID(ctx context.Context, id int64) (*domain.Affiliate, error) {
	query := `SELECT ` + affiliateColumns + ` FROM affiliates WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get affiliate: %w", err)
	}

	return scanAffiliate(row)
}

func (r *AffiliateRepository) GetActiveByDocument(ctx context.Context, document string) (*domain.Affiliate, error) {
	query := `SELECT ` + affiliateColumns + ` FROM affiliates WHERE document = $1 AND is_active`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, document)
	if err != nil {
		return nil, fmt.Errorf("get affiliate by document: %w", err)
	}

	return scanAffiliate(row)
}

func (r *AffiliateRepository) Update(ctx context.Context, a *domain.Affiliate) error {
	query := `UPDATE affiliates
			  SET name = $2, full_name = $3, document = $4, email = $5, phone = $6,
				  bank_name = $7, bank_account = $8, bank_branch = $9,
				  default_commission_rate = $10, is_active = $11
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.ID, a.Name, a.FullName, a.Document, a.Email, a.Phone,
		a.BankName, a.BankAccount, a.BankBranch, a.DefaultCommissionRate, a.Active,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.Conflict("an affiliate with this document already exists")
		}
		return fmt.Errorf("update affiliate: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("affiliate rows affected: %w", err)
	}
	if rows == 0 {
		return domain.NotFound("affiliate not found")
	}

	return nil
}

func scanAffiliate(row *sql.Row) (*domain.Affiliate, error) {
	var a domain.Affiliate
	err := row.Scan(
		&a.ID, &a.Name, &a.FullName, &a.Document, &a.Email, &a.Phone,
		&a.BankName, &a.BankAccount, &a.BankBranch, &a.DefaultCommissionRate,
		&a.Active, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("affiliate not found")
		}
		return nil, fmt.Errorf("scan affiliate: %w", err)
	}

	return &a, nil
}
