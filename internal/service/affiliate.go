package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wenderson1/VibraTicket/internal/domain"
	"github.com/wenderson1/VibraTicket/internal/service/ports"
)

var maxCommissionRate = decimal.NewFromInt(100)

type AffiliateService struct {
	affiliateRepo ports.AffiliateRepo
}

func NewAffiliateService(affiliateRepo ports.AffiliateRepo) *AffiliateService {
	return &AffiliateService{affiliateRepo: affiliateRepo}
}

func (s *AffiliateService) Create(ctx context.Context, input domain.CreateAffiliateInput) (*domain.Affiliate, error) {
	fields := map[string][]string{}
	if input.Name == "" {
		fields["name"] = append(fields["name"], "name is required")
	}
	if input.FullName == "" {
		fields["full_name"] = append(fields["full_name"], "full name is required")
	}
	if input.Document == "" {
		fields["document"] = append(fields["document"], "document is required")
	}
	if input.DefaultCommissionRate.IsNegative() || input.DefaultCommissionRate.GreaterThan(maxCommissionRate) {
		fields["default_commission_rate"] = append(fields["default_commission_rate"], "must be between 0 and 100")
	}
	if len(fields) > 0 {
		return nil, domain.FieldErrors(fields)
	}

	existing, err := s.affiliateRepo.GetActiveByDocument(ctx, input.Document)
	if err != nil && domain.KindOf(err) != domain.KindNotFound {
		return nil, fmt.Errorf("check document: %w", err)
	}
	if existing != nil {
		return nil, domain.Conflict("an active affiliate with this document already exists")
	}

	affiliate := &domain.Affiliate{
		Name:                  input.Name,
		FullName:              input.FullName,
		Document:              input.Document,
		Email:                 input.Email,
		Phone:                 input.Phone,
		BankName:              input.BankName,
		BankAccount:           input.BankAccount,
		BankBranch:            input.BankBranch,
		DefaultCommissionRate: input.DefaultCommissionRate,
		Active:                true,
	}
	if err = s.affiliateRepo.Create(ctx, affiliate); err != nil {
		return nil, fmt.Errorf("create affiliate: %w", err)
	}

	return affiliate, nil
}

func (s *AffiliateService) Update(ctx context.Context, id int64, patch domain.AffiliatePatch) (*domain.Affiliate, error) {
	if patch.IsZero() {
		return nil, domain.Validation("no fields to update")
	}
	if patch.DefaultCommissionRate != nil &&
		(patch.DefaultCommissionRate.IsNegative() || patch.DefaultCommissionRate.GreaterThan(maxCommissionRate)) {
		return nil, domain.Validation("default commission rate must be between 0 and 100")
	}

	affiliate, err := s.affiliateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get affiliate: %w", err)
	}

	if patch.Document != nil && *patch.Document != affiliate.Document {
		other, err := s.affiliateRepo.GetActiveByDocument(ctx, *patch.Document)
		if err != nil && domain.KindOf(err) != domain.KindNotFound {
			return nil, fmt.Errorf("check document: %w", err)
		}
		if other != nil && other.ID != id {
			return nil, domain.Conflict("an active affiliate with this document already exists")
		}
	}

	patch.Apply(affiliate)
	if err = s.affiliateRepo.Update(ctx, affiliate); err != nil {
		return nil, fmt.Errorf("update affiliate: %w", err)
	}

	return affiliate, nil
}

// Deactivate soft-deletes the affiliate; existing events keep their link.
func (s *AffiliateService) Deactivate(ctx context.Context, id int64) error {
	affiliate, err := s.affiliateRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get affiliate: %w", err)
	}
	if !affiliate.Active {
		return nil
	}

	affiliate.Active = false
	if err = s.affiliateRepo.Update(ctx, affiliate); err != nil {
		return fmt.Errorf("deactivate affiliate: %w", err)
	}
	return nil
}

func (s *AffiliateService) GetByID(ctx context.Context, id int64) (*domain.Affiliate, error) {
	return s.affiliateRepo.GetByID(ctx, id)
}

func (s *AffiliateService) GetActiveByDocument(ctx context.Context, document string) (*domain.Affiliate, error) {
	return s.affiliateRepo.GetActiveByDocument(ctx, document)
}
