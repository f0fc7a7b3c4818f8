package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wenderson1/VibraTicket/internal/domain"
	"github.com/wenderson1/VibraTicket/internal/service/ports/mocks"
)

func validEventInput() domain.CreateEventInput {
	start := time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC)
	return domain.CreateEventInput{
		Name:        "Rock Night",
		StartDate:   start,
		EndDate:     start.Add(4 * time.Hour),
		VenueID:     1,
		AffiliateID: 2,
	}
}

func TestEventService_Create_Success(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	affiliateRepo := mocks.NewMockAffiliateRepo(t)

	svc := NewEventService(eventRepo, venueRepo, affiliateRepo)

	input := validEventInput()
	venueRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.Venue{ID: 1}, nil)
	affiliateRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.Affiliate{ID: 2, Active: true}, nil)
	eventRepo.EXPECT().FindOverlap(mock.Anything, int64(1), input.StartDate, input.EndDate, int64(0)).Return(nil, nil)
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, e *domain.Event) error {
		e.ID = 10
		return nil
	})

	event, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, int64(10), event.ID)
	assert.Equal(t, domain.EventStatusDraft, event.Status)
}

func TestEventService_Create_EndBeforeStart(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	affiliateRepo := mocks.NewMockAffiliateRepo(t)

	svc := NewEventService(eventRepo, venueRepo, affiliateRepo)

	input := validEventInput()
	input.EndDate = input.StartDate.Add(-time.Hour)

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestEventService_Create_VenueNotFound(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	affiliateRepo := mocks.NewMockAffiliateRepo(t)

	svc := NewEventService(eventRepo, venueRepo, affiliateRepo)

	venueRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(nil, domain.NotFound("venue not found"))

	_, err := svc.Create(context.Background(), validEventInput())

	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestEventService_Create_InactiveAffiliate(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	affiliateRepo := mocks.NewMockAffiliateRepo(t)

	svc := NewEventService(eventRepo, venueRepo, affiliateRepo)

	venueRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.Venue{ID: 1}, nil)
	affiliateRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.Affiliate{ID: 2, Active: false}, nil)

	_, err := svc.Create(context.Background(), validEventInput())

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestEventService_Create_VenueBooked(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	affiliateRepo := mocks.NewMockAffiliateRepo(t)

	svc := NewEventService(eventRepo, venueRepo, affiliateRepo)

	input := validEventInput()
	venueRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.Venue{ID: 1}, nil)
	affiliateRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.Affiliate{ID: 2, Active: true}, nil)
	eventRepo.EXPECT().FindOverlap(mock.Anything, int64(1), input.StartDate, input.EndDate, int64(0)).
		Return(&domain.Event{ID: 3, Name: "Jazz Festival"}, nil)

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestEventService_Update_RescheduleChecksOverlap(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	affiliateRepo := mocks.NewMockAffiliateRepo(t)

	svc := NewEventService(eventRepo, venueRepo, affiliateRepo)

	start := time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC)
	existing := &domain.Event{
		ID:          10,
		Name:        "Rock Night",
		StartDate:   start,
		EndDate:     start.Add(4 * time.Hour),
		Status:      domain.EventStatusDraft,
		VenueID:     1,
		AffiliateID: 2,
	}
	newStart := start.Add(24 * time.Hour)

	eventRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(existing, nil)
	eventRepo.EXPECT().FindOverlap(mock.Anything, int64(1), newStart, existing.EndDate, int64(10)).Return(nil, nil)
	eventRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Update(context.Background(), 10, domain.EventPatch{StartDate: &newStart})

	require.NoError(t, err)
	assert.Equal(t, newStart, event.StartDate)
}

func TestEventService_Update_RescheduleConflict(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	affiliateRepo := mocks.NewMockAffiliateRepo(t)

	svc := NewEventService(eventRepo, venueRepo, affiliateRepo)

	start := time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC)
	existing := &domain.Event{
		ID:        10,
		StartDate: start,
		EndDate:   start.Add(4 * time.Hour),
		VenueID:   1,
	}
	newStart := start.Add(24 * time.Hour)

	eventRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(existing, nil)
	eventRepo.EXPECT().FindOverlap(mock.Anything, int64(1), newStart, existing.EndDate, int64(10)).
		Return(&domain.Event{ID: 3, Name: "Jazz Festival"}, nil)

	_, err := svc.Update(context.Background(), 10, domain.EventPatch{StartDate: &newStart})

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestEventService_Update_StatusOnlySkipsOverlap(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	affiliateRepo := mocks.NewMockAffiliateRepo(t)

	svc := NewEventService(eventRepo, venueRepo, affiliateRepo)

	existing := &domain.Event{ID: 10, Status: domain.EventStatusDraft, VenueID: 1}
	status := domain.EventStatusPublished

	eventRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(existing, nil)
	eventRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Update(context.Background(), 10, domain.EventPatch{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusPublished, event.Status)
}

func TestEventService_Update_EmptyPatch(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	affiliateRepo := mocks.NewMockAffiliateRepo(t)

	svc := NewEventService(eventRepo, venueRepo, affiliateRepo)

	_, err := svc.Update(context.Background(), 10, domain.EventPatch{})

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestEventService_Delete_Draft(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	affiliateRepo := mocks.NewMockAffiliateRepo(t)

	svc := NewEventService(eventRepo, venueRepo, affiliateRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(&domain.Event{ID: 10, Status: domain.EventStatusDraft}, nil)
	eventRepo.EXPECT().HasTickets(mock.Anything, int64(10)).Return(false, nil)
	eventRepo.EXPECT().Delete(mock.Anything, int64(10)).Return(nil)

	err := svc.Delete(context.Background(), 10)

	require.NoError(t, err)
}

func TestEventService_Delete_Published(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	affiliateRepo := mocks.NewMockAffiliateRepo(t)

	svc := NewEventService(eventRepo, venueRepo, affiliateRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(&domain.Event{ID: 10, Status: domain.EventStatusPublished}, nil)

	err := svc.Delete(context.Background(), 10)

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestEventService_Delete_HasTickets(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	affiliateRepo := mocks.NewMockAffiliateRepo(t)

	svc := NewEventService(eventRepo, venueRepo, affiliateRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(&domain.Event{ID: 10, Status: domain.EventStatusDraft}, nil)
	eventRepo.EXPECT().HasTickets(mock.Anything, int64(10)).Return(true, nil)

	err := svc.Delete(context.Background(), 10)

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}
