// Package app initializes and holds long-lived application services, acting
// as a dependency injection container for the CLI commands and the server.
package app

import (
	"context"
	"fmt"
	"net/http"

	gcsstorage "cloud.google.com/go/storage"
	"go.uber.org/zap"

	"github.com/JakeFAU/ufc-athletes/internal/api"
	"github.com/JakeFAU/ufc-athletes/internal/archive"
	"github.com/JakeFAU/ufc-athletes/internal/athlete"
	"github.com/JakeFAU/ufc-athletes/internal/clock/system"
	"github.com/JakeFAU/ufc-athletes/internal/config"
	collyfetcher "github.com/JakeFAU/ufc-athletes/internal/fetcher/colly"
	"github.com/JakeFAU/ufc-athletes/internal/hash/sha256"
	"github.com/JakeFAU/ufc-athletes/internal/id/uuid"
	"github.com/JakeFAU/ufc-athletes/internal/logging"
	"github.com/JakeFAU/ufc-athletes/internal/metrics"
	pubmemory "github.com/JakeFAU/ufc-athletes/internal/publisher/memory"
	"github.com/JakeFAU/ufc-athletes/internal/publisher/pubsub"
	"github.com/JakeFAU/ufc-athletes/internal/service"
	"github.com/JakeFAU/ufc-athletes/internal/storage/gcs"
	"github.com/JakeFAU/ufc-athletes/internal/storage/local"
	"github.com/JakeFAU/ufc-athletes/internal/storage/memory"
	"github.com/JakeFAU/ufc-athletes/internal/storage/postgres"
)

// App holds the shared, long-lived services. It is built once per process
// and closed when the command finishes.
type App struct {
	cfg     config.Config
	logger  *zap.Logger
	client  *athlete.Client
	store   service.ProfileStore
	blobs   archive.BlobStore
	service *service.Service
	server  *api.Server
	closers []func() error
}

// New wires every component from cfg. A nil logger builds one from
// cfg.Logging. Partially built resources are released on failure.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (_ *App, err error) {
	if logger == nil {
		logger, err = logging.New(cfg.Logging.Development, cfg.Logging.Level)
		if err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
	}
	metrics.Init()

	a := &App{cfg: cfg, logger: logger}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	logger.Info("initializing application services",
		zap.String("site", cfg.Site.BaseURL),
		zap.String("archive", cfg.Archive.Backend),
	)

	clock := system.New()
	var fetcher athlete.Fetcher = collyfetcher.New(collyfetcher.Config{
		UserAgent: cfg.HTTP.UserAgent,
		Timeout:   cfg.FetchTimeout(),
	}, logger.Named("fetcher"))

	blobs, err := a.buildBlobStore(ctx)
	if err != nil {
		return nil, err
	}
	if blobs != nil {
		a.blobs = blobs
		fetcher = archive.New(fetcher, blobs, sha256.New(), clock, archive.Config{
			Prefix:      cfg.Archive.Prefix,
			ContentType: cfg.Archive.ContentType,
		}, logger)
	}

	a.client = athlete.NewClient(fetcher, cfg.Site.BaseURL, logger)

	store, err := a.buildProfileStore(ctx)
	if err != nil {
		return nil, err
	}
	a.store = store

	publisher, err := a.buildPublisher(ctx)
	if err != nil {
		return nil, err
	}

	a.service, err = service.New(a.client, service.Options{
		Store:     store,
		Publisher: publisher,
		Clock:     clock,
		IDs:       uuid.New(),
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init service: %w", err)
	}
	a.server = api.NewServer(a.service, cfg, logger)

	logger.Info("application services initialized")
	return a, nil
}

func (a *App) buildBlobStore(ctx context.Context) (archive.BlobStore, error) {
	switch a.cfg.Archive.Backend {
	case "", config.ArchiveNone:
		return nil, nil
	case config.ArchiveMemory:
		return memory.NewBlobStore(), nil
	case config.ArchiveLocal:
		store, err := local.New(local.Config{BaseDir: a.cfg.Archive.Dir})
		if err != nil {
			return nil, fmt.Errorf("init local archive: %w", err)
		}
		return store, nil
	case config.ArchiveGCS:
		client, err := gcsstorage.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("create gcs client: %w", err)
		}
		store, err := gcs.New(client, gcs.Config{Bucket: a.cfg.Archive.GCSBucket})
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("init gcs archive: %w", err)
		}
		a.closers = append(a.closers, store.Close)
		return store, nil
	default:
		return nil, fmt.Errorf("unknown archive backend: %s", a.cfg.Archive.Backend)
	}
}

func (a *App) buildProfileStore(ctx context.Context) (service.ProfileStore, error) {
	if a.cfg.DB.DSN == "" {
		a.logger.Info("no db.dsn configured; keeping scrape records in memory")
		return memory.NewProfileStore(), nil
	}
	store, err := postgres.NewProfileStore(ctx, postgres.ProfileStoreConfig{
		DSN:      a.cfg.DB.DSN,
		Table:    a.cfg.DB.Table,
		MaxConns: a.cfg.DB.MaxConns,
	})
	if err != nil {
		return nil, fmt.Errorf("init postgres store: %w", err)
	}
	a.closers = append(a.closers, func() error {
		store.Close()
		return nil
	})
	if err := store.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return store, nil
}

func (a *App) buildPublisher(ctx context.Context) (service.Publisher, error) {
	if a.cfg.PubSub.TopicName == "" {
		return pubmemory.New(), nil
	}
	a.logger.Info("connecting to pubsub", zap.String("topic", a.cfg.PubSub.TopicName))
	pub, err := pubsub.Dial(ctx, a.cfg.PubSub.ProjectID, a.cfg.PubSub.TopicName)
	if err != nil {
		return nil, fmt.Errorf("init pubsub publisher: %w", err)
	}
	a.closers = append(a.closers, pub.Close)
	return pub, nil
}

// Config returns the configuration the app was built from.
func (a *App) Config() config.Config {
	return a.cfg
}

// Logger returns the shared zap logger.
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Client returns the athlete client, for callers that need raw profiles.
func (a *App) Client() *athlete.Client {
	return a.client
}

// Service returns the scrape service.
func (a *App) Service() *service.Service {
	return a.service
}

// ProfileStore returns the configured record store.
func (a *App) ProfileStore() service.ProfileStore {
	return a.store
}

// Blobs returns the archive blob store, or nil when archiving is off.
func (a *App) Blobs() archive.BlobStore {
	return a.blobs
}

// Handler returns the HTTP API.
func (a *App) Handler() http.Handler {
	return a.server.Handler()
}

// Close releases every resource in reverse construction order and flushes
// the logger.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("error closing resource", zap.Error(err))
		}
	}
	a.closers = nil
	// Sync fails on stderr/stdout on some platforms; nothing useful to do.
	_ = a.logger.Sync()
}
