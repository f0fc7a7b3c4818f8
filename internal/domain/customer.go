package domain

import "time"

// Customer is soft-deleted via the Active flag. Email and document are
// unique only among active customers, so a value may be reused once the
// prior record is deactivated.
type Customer struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Document  string    `json:"document"`
	Phone     *string   `json:"phone,omitempty"`
	BirthDate time.Time `json:"birth_date"`
	Address   *string   `json:"address,omitempty"`
	City      *string   `json:"city,omitempty"`
	State     *string   `json:"state,omitempty"`
	ZipCode   *string   `json:"zip_code,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCustomerInput struct {
	FullName  string
	Name      string
	Email     string
	Document  string
	Phone     *string
	BirthDate time.Time
	Address   *string
	City      *string
	State     *string
	ZipCode   *string
}

type CustomerPatch struct {
	FullName  *string
	Name      *string
	Email     *string
	Document  *string
	Phone     *string
	BirthDate *time.Time
	Address   *string
	City      *string
	State     *string
	ZipCode   *string
	Active    *bool
}

func (p CustomerPatch) IsZero() bool {
	return p.FullName == nil && p.Name == nil && p.Email == nil && p.Document == nil &&
		p.Phone == nil && p.BirthDate == nil && p.Address == nil && p.City == nil &&
		p.State == nil && p.ZipCode == nil && p.Active == nil
}

func (p CustomerPatch) Apply(c *Customer) {
	if p.FullName != nil {
		c.FullName = *p.FullName
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Document != nil {
		c.Document = *p.Document
	}
	if p.Phone != nil {
		c.Phone = p.Phone
	}
	if p.BirthDate != nil {
		c.BirthDate = *p.BirthDate
	}
	if p.Address != nil {
		c.Address = p.Address
	}
	if p.City != nil {
		c.City = p.City
	}
	if p.State != nil {
		c.State = p.State
	}
	if p.ZipCode != nil {
		c.ZipCode = p.ZipCode
	}
	if p.Active != nil {
		c.Active = *p.Active
	}
}
