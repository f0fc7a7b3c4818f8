package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/wenderson1/VibraTicket/internal/domain"
)

type orderCanceller interface {
	CancelExpired(ctx context.Context, olderThan time.Duration) ([]*domain.Order, error)
}

// Scheduler periodically sweeps abandoned orders so reserved tickets return
// to sale instead of being held forever by carts that never paid.
type Scheduler struct {
	orderService orderCanceller
	interval     time.Duration
	orderTTL     time.Duration
	logger       logger.Logger
}

func New(
	orderService orderCanceller,
	interval time.Duration,
	orderTTL time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		orderService: orderService,
		interval:     interval,
		orderTTL:     orderTTL,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("order_ttl", s.orderTTL),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.orderService.CancelExpired(ctx, s.orderTTL)
	if err != nil {
		s.logger.Error("failed to cancel expired orders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, o := range cancelled {
		s.logger.Info("order expired",
			logger.Int64("order_id", o.ID),
			logger.String("order_number", o.OrderNumber),
			logger.Int64("customer_id", o.CustomerID),
		)
	}
}
