package ports

import (
	"context"

	"github.com/wenderson1/VibraTicket/internal/domain"
)

// The Get* lookups are named for their filter: GetByID sees every row,
// GetActiveBy* only rows whose active flag is set, so soft-deleted records
// never satisfy a uniqueness check by accident.

type AffiliateRepo interface {
	Create(ctx context.Context, a *domain.Affiliate) error
	GetByID(ctx context.Context, id int64) (*domain.Affiliate, error)
	GetActiveByDocument(ctx context.Context, document string) (*domain.Affiliate, error)
	Update(ctx context.Context, a *domain.Affiliate) error
}

type CustomerRepo interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetActiveByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetActiveByDocument(ctx context.Context, document string) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
}
