package service

import (
	"context"
	"time"

	"github.com/JakeFAU/ufc-athletes/internal/athlete"
)

// Scraper is the subset of athlete.Client the service needs.
type Scraper interface {
	FindFighter(ctx context.Context, name string) (*athlete.Profile, error)
	Champions(ctx context.Context) (*athlete.Roster, error)
}

// ProfileStore persists scrape records.
type ProfileStore interface {
	SaveProfile(ctx context.Context, record ProfileRecord) error
}

// Publisher announces completed scrapes.
type Publisher interface {
	Publish(ctx context.Context, event ScrapeEvent) error
}

// Clock yields the current time.
type Clock interface {
	Now() time.Time
}

// IDGenerator yields unique record ids.
type IDGenerator interface {
	NewID() (string, error)
}

// ProfileRecord is one persisted scrape of an athlete page.
type ProfileRecord struct {
	ID          string
	Slug        string
	Name        string
	URL         string
	ScrapedAt   time.Time
	WeightClass athlete.WeightClass
	Gender      athlete.Gender
	Rank        string
	Record      athlete.Record
	Fighter     *athlete.Fighter
}

// ScrapeEvent is published once per persisted record.
type ScrapeEvent struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	WeightClass string    `json:"weight_class"`
	Rank        string    `json:"rank"`
	ScrapedAt   time.Time `json:"scraped_at"`
}

// Champion pairs a division with its titleholder. Fighter is nil when the
// division is vacant.
type Champion struct {
	Division athlete.Division `json:"division"`
	Fighter  *athlete.Fighter `json:"fighter,omitempty"`
}
