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

func validCustomerInput() domain.CreateCustomerInput {
	return domain.CreateCustomerInput{
		FullName:  "Maria da Silva",
		Name:      "Maria",
		Email:     "maria@example.com",
		Document:  "12345678900",
		BirthDate: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCustomerService_Create_Success(t *testing.T) {
	customerRepo := mocks.NewMockCustomerRepo(t)
	svc := NewCustomerService(customerRepo)

	customerRepo.EXPECT().GetActiveByEmail(mock.Anything, "maria@example.com").Return(nil, domain.NotFound("customer not found"))
	customerRepo.EXPECT().GetActiveByDocument(mock.Anything, "12345678900").Return(nil, domain.NotFound("customer not found"))
	customerRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, c *domain.Customer) error {
		c.ID = 7
		return nil
	})

	customer, err := svc.Create(context.Background(), validCustomerInput())

	require.NoError(t, err)
	assert.Equal(t, int64(7), customer.ID)
	assert.True(t, customer.Active)
}

func TestCustomerService_Create_MissingFields(t *testing.T) {
	customerRepo := mocks.NewMockCustomerRepo(t)
	svc := NewCustomerService(customerRepo)

	_, err := svc.Create(context.Background(), domain.CreateCustomerInput{})

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Contains(t, derr.Fields, "full_name")
	assert.Contains(t, derr.Fields, "email")
	assert.Contains(t, derr.Fields, "document")
}

func TestCustomerService_Create_EmailTaken(t *testing.T) {
	customerRepo := mocks.NewMockCustomerRepo(t)
	svc := NewCustomerService(customerRepo)

	customerRepo.EXPECT().GetActiveByEmail(mock.Anything, "maria@example.com").
		Return(&domain.Customer{ID: 1, Email: "maria@example.com", Active: true}, nil)

	_, err := svc.Create(context.Background(), validCustomerInput())

	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
}

func TestCustomerService_Create_DocumentTaken(t *testing.T) {
	customerRepo := mocks.NewMockCustomerRepo(t)
	svc := NewCustomerService(customerRepo)

	customerRepo.EXPECT().GetActiveByEmail(mock.Anything, "maria@example.com").Return(nil, domain.NotFound("customer not found"))
	customerRepo.EXPECT().GetActiveByDocument(mock.Anything, "12345678900").
		Return(&domain.Customer{ID: 1, Document: "12345678900", Active: true}, nil)

	_, err := svc.Create(context.Background(), validCustomerInput())

	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
}

func TestCustomerService_Update_EmailTakenByOther(t *testing.T) {
	customerRepo := mocks.NewMockCustomerRepo(t)
	svc := NewCustomerService(customerRepo)

	existing := &domain.Customer{ID: 7, Email: "maria@example.com", Document: "12345678900", Active: true}
	newEmail := "maria.silva@example.com"

	customerRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(existing, nil)
	customerRepo.EXPECT().GetActiveByEmail(mock.Anything, newEmail).
		Return(&domain.Customer{ID: 8, Email: newEmail, Active: true}, nil)

	_, err := svc.Update(context.Background(), 7, domain.CustomerPatch{Email: &newEmail})

	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
}

func TestCustomerService_Update_SameEmailNoConflictCheck(t *testing.T) {
	customerRepo := mocks.NewMockCustomerRepo(t)
	svc := NewCustomerService(customerRepo)

	existing := &domain.Customer{ID: 7, Email: "maria@example.com", Document: "12345678900", Active: true}
	same := "maria@example.com"
	name := "Maria S."

	customerRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(existing, nil)
	customerRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	customer, err := svc.Update(context.Background(), 7, domain.CustomerPatch{Email: &same, Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Maria S.", customer.Name)
}

func TestCustomerService_Deactivate(t *testing.T) {
	customerRepo := mocks.NewMockCustomerRepo(t)
	svc := NewCustomerService(customerRepo)

	customerRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(&domain.Customer{ID: 7, Active: true}, nil)
	customerRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(c *domain.Customer) bool {
		return !c.Active
	})).Return(nil)

	err := svc.Deactivate(context.Background(), 7)

	require.NoError(t, err)
}

func TestCustomerService_Deactivate_AlreadyInactive(t *testing.T) {
	customerRepo := mocks.NewMockCustomerRepo(t)
	svc := NewCustomerService(customerRepo)

	customerRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(&domain.Customer{ID: 7, Active: false}, nil)

	err := svc.Deactivate(context.Background(), 7)

	require.NoError(t, err)
}
