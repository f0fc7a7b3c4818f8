package service

import (
	"context"
	"fmt"

	"github.com/wenderson1/VibraTicket/internal/domain"
	"github.com/wenderson1/VibraTicket/internal/service/ports"
)

type CustomerService struct {
	customerRepo ports.CustomerRepo
}

func NewCustomerService(customerRepo ports.CustomerRepo) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Create registers a customer. Email and document must be unique among
// active customers; deactivated records do not block reuse.
func (s *CustomerService) Create(ctx context.Context, input domain.CreateCustomerInput) (*domain.Customer, error) {
	fields := map[string][]string{}
	if input.FullName == "" {
		fields["full_name"] = append(fields["full_name"], "full name is required")
	}
	if input.Name == "" {
		fields["name"] = append(fields["name"], "name is required")
	}
	if input.Email == "" {
		fields["email"] = append(fields["email"], "email is required")
	}
	if input.Document == "" {
		fields["document"] = append(fields["document"], "document is required")
	}
	if input.BirthDate.IsZero() {
		fields["birth_date"] = append(fields["birth_date"], "birth date is required")
	}
	if len(fields) > 0 {
		return nil, domain.FieldErrors(fields)
	}

	if existing, err := s.customerRepo.GetActiveByEmail(ctx, input.Email); err != nil && domain.KindOf(err) != domain.KindNotFound {
		return nil, fmt.Errorf("check email: %w", err)
	} else if existing != nil {
		return nil, domain.Conflict("an active customer with this email already exists")
	}
	if existing, err := s.customerRepo.GetActiveByDocument(ctx, input.Document); err != nil && domain.KindOf(err) != domain.KindNotFound {
		return nil, fmt.Errorf("check document: %w", err)
	} else if existing != nil {
		return nil, domain.Conflict("an active customer with this document already exists")
	}

	customer := &domain.Customer{
		FullName:  input.FullName,
		Name:      input.Name,
		Email:     input.Email,
		Document:  input.Document,
		Phone:     input.Phone,
		BirthDate: input.BirthDate,
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		ZipCode:   input.ZipCode,
		Active:    true,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	return customer, nil
}

func (s *CustomerService) Update(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error) {
	if patch.IsZero() {
		return nil, domain.Validation("no fields to update")
	}

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	if patch.Email != nil && *patch.Email != customer.Email {
		other, err := s.customerRepo.GetActiveByEmail(ctx, *patch.Email)
		if err != nil && domain.KindOf(err) != domain.KindNotFound {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if other != nil && other.ID != id {
			return nil, domain.Conflict("an active customer with this email already exists")
		}
	}
	if patch.Document != nil && *patch.Document != customer.Document {
		other, err := s.customerRepo.GetActiveByDocument(ctx, *patch.Document)
		if err != nil && domain.KindOf(err) != domain.KindNotFound {
			return nil, fmt.Errorf("check document: %w", err)
		}
		if other != nil && other.ID != id {
			return nil, domain.Conflict("an active customer with this document already exists")
		}
	}

	patch.Apply(customer)
	if err = s.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	return customer, nil
}

// Deactivate soft-deletes the customer, freeing the email and document for
// a future registration.
func (s *CustomerService) Deactivate(ctx context.Context, id int64) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get customer: %w", err)
	}
	if !customer.Active {
		return nil
	}

	customer.Active = false
	if err = s.customerRepo.Update(ctx, customer); err != nil {
		return fmt.Errorf("deactivate customer: %w", err)
	}
	return nil
}

func (s *CustomerService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *CustomerService) GetActiveByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return s.customerRepo.GetActiveByEmail(ctx, email)
}

func (s *CustomerService) GetActiveByDocument(ctx context.Context, document string) (*domain.Customer, error) {
	return s.customerRepo.GetActiveByDocument(ctx, document)
}
