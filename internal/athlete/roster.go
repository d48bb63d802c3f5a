package athlete

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const (
	titleholdersSel = ".block-views-blockathletes-titleholders-block-1"
	athleteBlockSel = ".athlete-listing-detail-wrp"
	athleteNameSel  = ".field--name-title"
)

// ParseTitleholders returns the display names listed in the titleholders
// block of the roster page, in page order.
func ParseTitleholders(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	container := doc.Find(titleholdersSel).First()
	if container.Length() == 0 {
		return nil, notFound(titleholdersSel)
	}
	var names []string
	container.Find(athleteBlockSel).Each(func(_ int, s *goquery.Selection) {
		name := strings.TrimSpace(s.Find(athleteNameSel).First().Text())
		if name != "" {
			names = append(names, name)
		}
	})
	return names, nil
}

// Roster is the set of current titleholders. Their profiles are fetched on
// first use and shared by every division lookup.
type Roster struct {
	client *Client
	names  []string

	mu       sync.Mutex
	profiles []*Profile
}

func newRoster(client *Client, names []string) *Roster {
	return &Roster{client: client, names: names}
}

// Names returns the titleholder display names.
func (r *Roster) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Profiles fetches one profile per titleholder. Any failure aborts the whole
// call and nothing is cached.
func (r *Roster) Profiles(ctx context.Context) ([]*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.profiles == nil {
		profiles := make([]*Profile, 0, len(r.names))
		for _, name := range r.names {
			p, err := r.client.FindFighter(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("titleholder %q: %w", name, err)
			}
			profiles = append(profiles, p)
		}
		r.profiles = profiles
	}
	out := make([]*Profile, len(r.profiles))
	copy(out, r.profiles)
	return out, nil
}

// Champion returns the first titleholder whose weight class and, where the
// division requires it, gender match d. A vacant division yields (nil, nil).
func (r *Roster) Champion(ctx context.Context, d Division) (*Profile, error) {
	profiles, err := r.Profiles(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		class, err := p.WeightClass()
		if err != nil {
			r.client.logger.Warn("titleholder has no readable weight",
				zap.String("url", p.URL()),
				zap.Error(err),
			)
			continue
		}
		var gender Gender
		if d.Gender != "" {
			if gender, err = p.Gender(); err != nil {
				r.client.logger.Warn("titleholder has no readable division",
					zap.String("url", p.URL()),
					zap.Error(err),
				)
				continue
			}
		}
		if d.Matches(class, gender) {
			return p, nil
		}
	}
	return nil, nil
}

// WomensStrawweight returns the women's strawweight champion.
func (r *Roster) WomensStrawweight(ctx context.Context) (*Profile, error) {
	return r.Champion(ctx, WomensStrawweight)
}

// WomensFlyweight returns the women's flyweight champion.
func (r *Roster) WomensFlyweight(ctx context.Context) (*Profile, error) {
	return r.Champion(ctx, WomensFlyweight)
}

// WomensBantamweight returns the women's bantamweight champion.
func (r *Roster) WomensBantamweight(ctx context.Context) (*Profile, error) {
	return r.Champion(ctx, WomensBantamweight)
}

// WomensFeatherweight returns the women's featherweight champion.
func (r *Roster) WomensFeatherweight(ctx context.Context) (*Profile, error) {
	return r.Champion(ctx, WomensFeatherweight)
}

// Flyweight returns the men's flyweight champion.
func (r *Roster) Flyweight(ctx context.Context) (*Profile, error) {
	return r.Champion(ctx, MensFlyweight)
}

// Bantamweight returns the men's bantamweight champion.
func (r *Roster) Bantamweight(ctx context.Context) (*Profile, error) {
	return r.Champion(ctx, MensBantamweight)
}

// Featherweight returns the men's featherweight champion.
func (r *Roster) Featherweight(ctx context.Context) (*Profile, error) {
	return r.Champion(ctx, MensFeatherweight)
}

// Lightweight returns the lightweight champion.
func (r *Roster) Lightweight(ctx context.Context) (*Profile, error) {
	return r.Champion(ctx, MensLightweight)
}

// Welterweight returns the welterweight champion.
func (r *Roster) Welterweight(ctx context.Context) (*Profile, error) {
	return r.Champion(ctx, MensWelterweight)
}

// Middleweight returns the middleweight champion.
func (r *Roster) Middleweight(ctx context.Context) (*Profile, error) {
	return r.Champion(ctx, MensMiddleweight)
}

// LightHeavyweight returns the light heavyweight champion.
func (r *Roster) LightHeavyweight(ctx context.Context) (*Profile, error) {
	return r.Champion(ctx, MensLightHeavyweight)
}

// Heavyweight returns the heavyweight champion.
func (r *Roster) Heavyweight(ctx context.Context) (*Profile, error) {
	return r.Champion(ctx, MensHeavyweight)
}
