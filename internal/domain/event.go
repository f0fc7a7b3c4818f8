package domain

import "time"

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusDraft, EventStatusPublished, EventStatusCancelled, EventStatusCompleted:
		return true
	}
	return false
}

type Event struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	Status      EventStatus `json:"status"`
	BannerURL   *string     `json:"banner_url,omitempty"`
	MinimumAge  int         `json:"minimum_age"`
	VenueID     int64       `json:"venue_id"`
	AffiliateID int64       `json:"affiliate_id"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   *time.Time  `json:"updated_at,omitempty"`
}

// Deletable reports whether the event may be removed, tickets aside. Only
// drafts and cancelled events qualify.
func (e *Event) Deletable() bool {
	return e.Status == EventStatusDraft || e.Status == EventStatusCancelled
}

// Overlaps tests two closed intervals for intersection. Adjacent events
// sharing only a boundary instant are considered overlapping, matching the
// inclusive scheduling rule: a venue needs turnover time between events.
// The repository's FindOverlap query encodes this same predicate in SQL;
// keep the two in step.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// EventDetails is the read projection for event lookups, with the venue and
// affiliate summary fields denormalized in.
type EventDetails struct {
	Event     Event            `json:"event"`
	Venue     VenueSummary     `json:"venue"`
	Affiliate AffiliateSummary `json:"affiliate"`
}

type VenueSummary struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	City     string  `json:"city"`
	State    string  `json:"state"`
	ZipCode  *string `json:"zip_code,omitempty"`
	Capacity int     `json:"capacity"`
}

type AffiliateSummary struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Document string  `json:"document"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

type CreateEventInput struct {
	Name        string
	Description *string
	StartDate   time.Time
	EndDate     time.Time
	BannerURL   *string
	MinimumAge  int
	VenueID     int64
	AffiliateID int64
}

type EventPatch struct {
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      *EventStatus
	BannerURL   *string
	MinimumAge  *int
	VenueID     *int64
	AffiliateID *int64
}

func (p EventPatch) IsZero() bool {
	return p.Name == nil && p.Description == nil && p.StartDate == nil && p.EndDate == nil &&
		p.Status == nil && p.BannerURL == nil && p.MinimumAge == nil && p.VenueID == nil &&
		p.AffiliateID == nil
}

// TouchesSchedule reports whether applying the patch can move the event in
// time or space, i.e. whether the overlap check must be re-run.
func (p EventPatch) TouchesSchedule() bool {
	return p.StartDate != nil || p.EndDate != nil || p.VenueID != nil
}

func (p EventPatch) Apply(e *Event) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Description != nil {
		e.Description = p.Description
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = *p.EndDate
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.BannerURL != nil {
		e.BannerURL = p.BannerURL
	}
	if p.MinimumAge != nil {
		e.MinimumAge = *p.MinimumAge
	}
	if p.VenueID != nil {
		e.VenueID = *p.VenueID
	}
	if p.AffiliateID != nil {
		e.AffiliateID = *p.AffiliateID
	}
}
