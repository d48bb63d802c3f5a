package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/JakeFAU/ufc-athletes/internal/athlete"
	"github.com/JakeFAU/ufc-athletes/internal/metrics"
)

// Service runs scrapes end to end.
type Service struct {
	scraper   Scraper
	store     ProfileStore
	publisher Publisher
	clock     Clock
	ids       IDGenerator
	logger    *zap.Logger
}

// Options carries the optional collaborators. A nil Store or Publisher skips
// that step.
type Options struct {
	Store     ProfileStore
	Publisher Publisher
	Clock     Clock
	IDs       IDGenerator
	Logger    *zap.Logger
}

// New builds a Service.
func New(scraper Scraper, opts Options) (*Service, error) {
	if scraper == nil {
		return nil, errors.New("scraper is required")
	}
	if opts.Clock == nil {
		return nil, errors.New("clock is required")
	}
	if opts.IDs == nil {
		return nil, errors.New("id generator is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		scraper:   scraper,
		store:     opts.Store,
		publisher: opts.Publisher,
		clock:     opts.Clock,
		ids:       opts.IDs,
		logger:    logger.Named("service"),
	}, nil
}

// ScrapeFighter fetches a single athlete, records the scrape and publishes it.
func (s *Service) ScrapeFighter(ctx context.Context, name string) (f *athlete.Fighter, err error) {
	defer func() { metrics.ObserveScrape("fighter", err) }()

	profile, err := s.scraper.FindFighter(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find fighter %q: %w", name, err)
	}
	f = profile.Fighter()
	if err := s.record(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// ScrapeChampions resolves the titleholder of every division. Each champion's
// profile is recorded like a single fighter scrape.
func (s *Service) ScrapeChampions(ctx context.Context) (champs []Champion, err error) {
	defer func() { metrics.ObserveScrape("champions", err) }()

	roster, err := s.scraper.Champions(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch roster: %w", err)
	}
	for _, d := range athlete.Divisions() {
		c, err := s.champion(ctx, roster, d)
		if err != nil {
			return nil, err
		}
		champs = append(champs, c)
	}
	return champs, nil
}

// ScrapeChampion resolves the titleholder of a single division.
func (s *Service) ScrapeChampion(ctx context.Context, d athlete.Division) (c Champion, err error) {
	defer func() { metrics.ObserveScrape("champion", err) }()

	roster, err := s.scraper.Champions(ctx)
	if err != nil {
		return Champion{}, fmt.Errorf("fetch roster: %w", err)
	}
	return s.champion(ctx, roster, d)
}

func (s *Service) champion(ctx context.Context, roster *athlete.Roster, d athlete.Division) (Champion, error) {
	profile, err := roster.Champion(ctx, d)
	if err != nil {
		return Champion{}, fmt.Errorf("champion %s: %w", d.Slug, err)
	}
	c := Champion{Division: d}
	if profile == nil {
		s.logger.Info("division vacant", zap.String("division", d.Slug))
		return c, nil
	}
	c.Fighter = profile.Fighter()
	if err := s.record(ctx, c.Fighter); err != nil {
		return Champion{}, err
	}
	return c, nil
}

func (s *Service) record(ctx context.Context, f *athlete.Fighter) error {
	if f.Incomplete() {
		s.logger.Warn("profile incomplete",
			zap.String("url", f.URL),
			zap.Any("field_errors", f.FieldErrors),
		)
	}
	id, err := s.ids.NewID()
	if err != nil {
		return fmt.Errorf("record id: %w", err)
	}
	rec := ProfileRecord{
		ID:          id,
		Slug:        f.Slug,
		Name:        f.Name,
		URL:         f.URL,
		ScrapedAt:   s.clock.Now(),
		WeightClass: f.WeightClass,
		Gender:      f.Gender,
		Rank:        f.Rank,
		Record:      f.Record,
		Fighter:     f,
	}
	if s.store != nil {
		if err := s.store.SaveProfile(ctx, rec); err != nil {
			return fmt.Errorf("save profile %s: %w", rec.Slug, err)
		}
	}
	if s.publisher != nil {
		event := ScrapeEvent{
			ID:          rec.ID,
			Slug:        rec.Slug,
			Name:        rec.Name,
			WeightClass: string(rec.WeightClass),
			Rank:        rec.Rank,
			ScrapedAt:   rec.ScrapedAt,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			return fmt.Errorf("publish scrape %s: %w", rec.ID, err)
		}
	}
	s.logger.Info("profile recorded",
		zap.String("id", rec.ID),
		zap.String("slug", rec.Slug),
		zap.String("weight_class", string(rec.WeightClass)),
	)
	return nil
}
