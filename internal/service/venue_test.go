package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wenderson1/VibraTicket/internal/domain"
	"github.com/wenderson1/VibraTicket/internal/service/ports/mocks"
)

func TestVenueService_Create_Success(t *testing.T) {
	venueRepo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(venueRepo)

	venueRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, v *domain.Venue) error {
		v.ID = 1
		return nil
	})

	venue, err := svc.Create(context.Background(), domain.CreateVenueInput{
		Name:     "Arena Central",
		Address:  "Av. Principal, 100",
		City:     "Sao Paulo",
		State:    "SP",
		Capacity: 5000,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), venue.ID)
}

func TestVenueService_Create_MissingFields(t *testing.T) {
	venueRepo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(venueRepo)

	_, err := svc.Create(context.Background(), domain.CreateVenueInput{Capacity: -1})

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Contains(t, derr.Fields, "name")
	assert.Contains(t, derr.Fields, "capacity")
}

func TestVenueService_Delete_HasEvents(t *testing.T) {
	venueRepo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(venueRepo)

	venueRepo.EXPECT().HasEvents(mock.Anything, int64(1)).Return(true, nil)

	err := svc.Delete(context.Background(), 1)

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestVenueService_Delete_Success(t *testing.T) {
	venueRepo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(venueRepo)

	venueRepo.EXPECT().HasEvents(mock.Anything, int64(1)).Return(false, nil)
	venueRepo.EXPECT().Delete(mock.Anything, int64(1)).Return(nil)

	err := svc.Delete(context.Background(), 1)

	require.NoError(t, err)
}

func TestSectorService_Create_DefaultsAvailability(t *testing.T) {
	sectorRepo := mocks.NewMockSectorRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewSectorService(sectorRepo, eventRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.Event{ID: 1}, nil)
	sectorRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	sector, err := svc.Create(context.Background(), domain.CreateSectorInput{
		Name:     "Pista",
		Capacity: 200,
		EventID:  1,
	})

	require.NoError(t, err)
	assert.Equal(t, 200, sector.AvailableTickets)
}

func TestSectorService_Create_AvailabilityAboveCapacity(t *testing.T) {
	sectorRepo := mocks.NewMockSectorRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewSectorService(sectorRepo, eventRepo)

	available := 300
	_, err := svc.Create(context.Background(), domain.CreateSectorInput{
		Name:             "Pista",
		Capacity:         200,
		AvailableTickets: &available,
		EventID:          1,
	})

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}
