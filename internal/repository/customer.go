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

const customerColumns = `id, full_name, name, email, document, phone, birth_date,
			  address, city, state, zip_code, is_active, created_at`

type CustomerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCustomerRepo(db *dbpg.DB) *CustomerRepository {
	return &CustomerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (full_name, name, email, document, phone, birth_date,
				  address, city, state, zip_code, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING id, created_at`
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		c.FullName, c.Name, c.Email, c.Document, c.Phone, c.BirthDate,
		c.Address, c.City, c.State, c.ZipCode, c.Active,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	if err = row.Scan(&c.ID, &c.CreatedAt); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.Conflict("an active customer with this email or document already exists")
		}
		return fmt.Errorf("scan customer id: %w", err)
	}

	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	return scanCustomer(row)
}

func (r *CustomerRepository) GetActiveByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1 AND is_active`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get customer by email: %w", err)
	}

	return scanCustomer(row)
}

func (r *CustomerRepository) GetActiveByDocument(ctx context.Context, document string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE document = $1 AND is_active`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, document)
	if err != nil {
		return nil, fmt.Errorf("get customer by document: %w", err)
	}

	return scanCustomer(row)
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers
			  SET full_name = $2, name = $3, email = $4, document = $5, phone = $6,
				  birth_date = $7, address = $8, city = $9, state = $10, zip_code = $11,
				  is_active = $12
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.FullName, c.Name, c.Email, c.Document, c.Phone,
		c.BirthDate, c.Address, c.City, c.State, c.ZipCode, c.Active,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.Conflict("an active customer with this email or document already exists")
		}
		return fmt.Errorf("update customer: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("customer rows affected: %w", err)
	}
	if rows == 0 {
		return domain.NotFound("customer not found")
	}

	return nil
}

func scanCustomer(row *sql.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.ID, &c.FullName, &c.Name, &c.Email, &c.Document, &c.Phone, &c.BirthDate,
		&c.Address, &c.City, &c.State, &c.ZipCode, &c.Active, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("customer not found")
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}

	return &c, nil
}
