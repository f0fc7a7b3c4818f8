package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Affiliate is the organizer/promoter entity that owns events. Affiliates
// are never removed, only deactivated; an inactive affiliate cannot be
// attached to new events.
type Affiliate struct {
	ID                    int64           `json:"id"`
	Name                  string          `json:"name"`
	FullName              string          `json:"full_name"`
	Document              string          `json:"document"`
	Email                 *string         `json:"email,omitempty"`
	Phone                 *string         `json:"phone,omitempty"`
	BankName              *string         `json:"bank_name,omitempty"`
	BankAccount           *string         `json:"bank_account,omitempty"`
	BankBranch            *string         `json:"bank_branch,omitempty"`
	DefaultCommissionRate decimal.Decimal `json:"default_commission_rate"`
	Active                bool            `json:"active"`
	CreatedAt             time.Time       `json:"created_at"`
}

type CreateAffiliateInput struct {
	Name                  string
	FullName              string
	Document              string
	Email                 *string
	Phone                 *string
	BankName              *string
	BankAccount           *string
	BankBranch            *string
	DefaultCommissionRate decimal.Decimal
}

type AffiliatePatch struct {
	Name                  *string
	FullName              *string
	Document              *string
	Email                 *string
	Phone                 *string
	BankName              *string
	BankAccount           *string
	BankBranch            *string
	DefaultCommissionRate *decimal.Decimal
	Active                *bool
}

func (p AffiliatePatch) IsZero() bool {
	return p.Name == nil && p.FullName == nil && p.Document == nil && p.Email == nil &&
		p.Phone == nil && p.BankName == nil && p.BankAccount == nil && p.BankBranch == nil &&
		p.DefaultCommissionRate == nil && p.Active == nil
}

func (p AffiliatePatch) Apply(a *Affiliate) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.FullName != nil {
		a.FullName = *p.FullName
	}
	if p.Document != nil {
		a.Document = *p.Document
	}
	if p.Email != nil {
		a.Email = p.Email
	}
	if p.Phone != nil {
		a.Phone = p.Phone
	}
	if p.BankName != nil {
		a.BankName = p.BankName
	}
	if p.BankAccount != nil {
		a.BankAccount = p.BankAccount
	}
	if p.BankBranch != nil {
		a.BankBranch = p.BankBranch
	}
	if p.DefaultCommissionRate != nil {
		a.DefaultCommissionRate = *p.DefaultCommissionRate
	}
	if p.Active != nil {
		a.Active = *p.Active
	}
}
