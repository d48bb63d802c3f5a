package athlete

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// DefaultBaseURL is the public UFC site.
const DefaultBaseURL = "https://www.ufc.com"

// Client fetches athlete and roster pages through a Fetcher.
type Client struct {
	fetcher Fetcher
	baseURL string
	logger  *zap.Logger
}

// NewClient wires a client. An empty baseURL selects DefaultBaseURL.
func NewClient(fetcher Fetcher, baseURL string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// ProfileURL is the athlete page for a display name.
func (c *Client) ProfileURL(name string) string {
	return c.baseURL + "/athlete/" + Slug(name)
}

// RosterURL is the athlete listing page.
func (c *Client) RosterURL() string {
	return c.baseURL + "/athletes"
}

// FindFighter fetches and parses the profile page for name.
func (c *Client) FindFighter(ctx context.Context, name string) (*Profile, error) {
	url := c.ProfileURL(name)
	page, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	profile, err := ParseProfile(bytes.NewReader(page.Body), url)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("profile fetched", zap.String("name", name), zap.String("url", url))
	return profile, nil
}

// Champions fetches the roster page and returns its titleholders.
func (c *Client) Champions(ctx context.Context) (*Roster, error) {
	url := c.RosterURL()
	page, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	names, err := ParseTitleholders(bytes.NewReader(page.Body))
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", url, err)
	}
	c.logger.Debug("roster fetched", zap.Int("titleholders", len(names)))
	return newRoster(c, names), nil
}

func (c *Client) get(ctx context.Context, url string) (Page, error) {
	page, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		if errors.Is(err, ErrFoundRedirect) {
			c.logger.Warn("redirect refused", zap.String("url", url))
			return Page{}, &ClientError{
				URL:        url,
				StatusCode: http.StatusFound,
				Reason:     http.StatusText(http.StatusFound),
				Err:        err,
			}
		}
		return Page{}, fmt.Errorf("fetch %s: %w", url, err)
	}
	if page.StatusCode != http.StatusOK {
		c.logger.Warn("unexpected status",
			zap.String("url", url),
			zap.Int("status", page.StatusCode),
		)
		return Page{}, &ClientError{
			URL:        url,
			StatusCode: page.StatusCode,
			Reason:     http.StatusText(page.StatusCode),
		}
	}
	return page, nil
}
