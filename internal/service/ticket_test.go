package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wenderson1/VibraTicket/internal/domain"
	"github.com/wenderson1/VibraTicket/internal/service/ports/mocks"
)

func TestTicketService_Issue_Success(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	sectorRepo := mocks.NewMockSectorRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	svc := NewTicketService(ticketRepo, sectorRepo, eventRepo)

	event := &domain.Event{ID: 1, Status: domain.EventStatusPublished}
	sector := &domain.Sector{ID: 2, EventID: 1, Price: decimal.NewFromInt(150), AvailableTickets: 100}

	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(event, nil)
	sectorRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(sector, nil)
	ticketRepo.EXPECT().IssueBatch(mock.Anything, int64(2), mock.Anything).Return(nil)

	tickets, err := svc.Issue(context.Background(), domain.IssueTicketsInput{
		EventID:  1,
		SectorID: 2,
		Quantity: 3,
	})

	require.NoError(t, err)
	require.Len(t, tickets, 3)
	for _, tk := range tickets {
		assert.NotEmpty(t, tk.ID)
		assert.NotEmpty(t, tk.TicketNumber)
		assert.Equal(t, domain.TicketStatusAvailable, tk.Status)
		assert.True(t, sector.Price.Equal(tk.Price))
		assert.Equal(t, int64(1), tk.EventID)
		assert.Equal(t, int64(2), tk.SectorID)
	}
}

func TestTicketService_Issue_ZeroQuantity(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	sectorRepo := mocks.NewMockSectorRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	svc := NewTicketService(ticketRepo, sectorRepo, eventRepo)

	_, err := svc.Issue(context.Background(), domain.IssueTicketsInput{EventID: 1, SectorID: 2})

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestTicketService_Issue_CancelledEvent(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	sectorRepo := mocks.NewMockSectorRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	svc := NewTicketService(ticketRepo, sectorRepo, eventRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.Event{ID: 1, Status: domain.EventStatusCancelled}, nil)

	_, err := svc.Issue(context.Background(), domain.IssueTicketsInput{EventID: 1, SectorID: 2, Quantity: 1})

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestTicketService_Issue_SectorOfOtherEvent(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	sectorRepo := mocks.NewMockSectorRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	svc := NewTicketService(ticketRepo, sectorRepo, eventRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.Event{ID: 1, Status: domain.EventStatusDraft}, nil)
	sectorRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.Sector{ID: 2, EventID: 9}, nil)

	_, err := svc.Issue(context.Background(), domain.IssueTicketsInput{EventID: 1, SectorID: 2, Quantity: 1})

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestTicketService_Issue_SectorSoldOut(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	sectorRepo := mocks.NewMockSectorRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	svc := NewTicketService(ticketRepo, sectorRepo, eventRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.Event{ID: 1, Status: domain.EventStatusPublished}, nil)
	sectorRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.Sector{ID: 2, EventID: 1}, nil)
	ticketRepo.EXPECT().IssueBatch(mock.Anything, int64(2), mock.Anything).
		Return(domain.Validation("sector does not have enough available tickets"))

	_, err := svc.Issue(context.Background(), domain.IssueTicketsInput{EventID: 1, SectorID: 2, Quantity: 5})

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestTicketService_Use_Success(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	sectorRepo := mocks.NewMockSectorRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	svc := NewTicketService(ticketRepo, sectorRepo, eventRepo)

	used := &domain.Ticket{ID: "t1", Status: domain.TicketStatusUsed, Used: true}
	ticketRepo.EXPECT().MarkUsed(mock.Anything, "t1").Return(used, nil)

	ticket, err := svc.Use(context.Background(), "t1")

	require.NoError(t, err)
	assert.True(t, ticket.Used)
	assert.Equal(t, domain.TicketStatusUsed, ticket.Status)
}

func TestTicketService_Use_AlreadyUsed(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	sectorRepo := mocks.NewMockSectorRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	svc := NewTicketService(ticketRepo, sectorRepo, eventRepo)

	ticketRepo.EXPECT().MarkUsed(mock.Anything, "t1").
		Return(nil, domain.Validationf("ticket %s has already been used", "t1"))

	_, err := svc.Use(context.Background(), "t1")

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}
