package domain

type Venue struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	ZipCode   *string  `json:"zip_code,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Capacity  int      `json:"capacity"`
}

type CreateVenueInput struct {
	Name      string
	Address   string
	City      string
	State     string
	ZipCode   *string
	Latitude  *float64
	Longitude *float64
	Capacity  int
}

// VenuePatch is a merge patch: nil fields are left untouched.
type VenuePatch struct {
	Name      *string
	Address   *string
	City      *string
	State     *string
	ZipCode   *string
	Latitude  *float64
	Longitude *float64
	Capacity  *int
}

func (p VenuePatch) IsZero() bool {
	return p.Name == nil && p.Address == nil && p.City == nil && p.State == nil &&
		p.ZipCode == nil && p.Latitude == nil && p.Longitude == nil && p.Capacity == nil
}

func (p VenuePatch) Apply(v *Venue) {
	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.Address != nil {
		v.Address = *p.Address
	}
	if p.City != nil {
		v.City = *p.City
	}
	if p.State != nil {
		v.State = *p.State
	}
	if p.ZipCode != nil {
		v.ZipCode = p.ZipCode
	}
	if p.Latitude != nil {
		v.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		v.Longitude = p.Longitude
	}
	if p.Capacity != nil {
		v.Capacity = *p.Capacity
	}
}
