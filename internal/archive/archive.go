// Package archive keeps raw copies of every page the scraper reads so that
// extraction can be replayed offline against the exact markup that was served.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/JakeFAU/ufc-athletes/internal/athlete"
	"github.com/JakeFAU/ufc-athletes/internal/metrics"
)

const digestLen = 16

// BlobStore persists snapshot bodies.
type BlobStore interface {
	PutObject(ctx context.Context, path string, contentType string, r io.Reader) (string, error)
}

// Hasher digests snapshot bodies.
type Hasher interface {
	Hash(data []byte) (string, error)
}

// Clock yields the snapshot date.
type Clock interface {
	Now() time.Time
}

// Config controls snapshot naming.
type Config struct {
	Prefix      string
	ContentType string
}

// Fetcher wraps another athlete.Fetcher and stores every 200 response.
// Snapshot failures are logged and never fail the fetch.
type Fetcher struct {
	next   athlete.Fetcher
	blobs  BlobStore
	hasher Hasher
	clock  Clock
	cfg    Config
	logger *zap.Logger
}

// New builds an archiving Fetcher.
func New(next athlete.Fetcher, blobs BlobStore, hasher Hasher, clock Clock, cfg Config, logger *zap.Logger) *Fetcher {
	if cfg.ContentType == "" {
		cfg.ContentType = "text/html; charset=utf-8"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		next:   next,
		blobs:  blobs,
		hasher: hasher,
		clock:  clock,
		cfg:    cfg,
		logger: logger.Named("archive"),
	}
}

// Fetch delegates to the wrapped fetcher and snapshots successful pages.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (athlete.Page, error) {
	page, err := f.next.Fetch(ctx, rawURL)
	if err != nil || page.StatusCode != http.StatusOK {
		return page, err
	}
	uri, err := f.store(ctx, rawURL, page.Body)
	metrics.ObserveArchiveWrite(err)
	if err != nil {
		f.logger.Warn("snapshot failed", zap.String("url", rawURL), zap.Error(err))
		return page, nil
	}
	f.logger.Debug("snapshot stored", zap.String("url", rawURL), zap.String("uri", uri))
	return page, nil
}

func (f *Fetcher) store(ctx context.Context, rawURL string, body []byte) (string, error) {
	digest, err := f.hasher.Hash(body)
	if err != nil {
		return "", fmt.Errorf("hash body: %w", err)
	}
	objectPath := ObjectPath(f.cfg.Prefix, f.clock.Now(), rawURL, digest)
	uri, err := f.blobs.PutObject(ctx, objectPath, f.cfg.ContentType, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("put %s: %w", objectPath, err)
	}
	return uri, nil
}

// ObjectPath names a snapshot <prefix>/<yyyy-mm-dd>/<slug>_<digest[:16]>.html,
// where slug is the last path segment of the page URL.
func ObjectPath(prefix string, at time.Time, rawURL, digest string) string {
	slug := "index"
	if u, err := url.Parse(rawURL); err == nil {
		if seg := path.Base(strings.TrimRight(u.Path, "/")); seg != "" && seg != "." && seg != "/" {
			slug = seg
		}
	}
	if len(digest) > digestLen {
		digest = digest[:digestLen]
	}
	name := fmt.Sprintf("%s_%s.html", slug, digest)
	return path.Join(prefix, at.UTC().Format(time.DateOnly), name)
}
