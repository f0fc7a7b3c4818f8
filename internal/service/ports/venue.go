package ports

import (
	"context"

	"github.com/wenderson1/VibraTicket/internal/domain"
)

type VenueRepo interface {
	Create(ctx context.Context, v *domain.Venue) error
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	Update(ctx context.Context, v *domain.Venue) error
	Delete(ctx context.Context, id int64) error
	HasEvents(ctx context.Context, id int64) (bool, error)
}
