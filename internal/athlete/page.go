package athlete

import (
	"context"
	"net/http"
)

// Page is a fetched HTTP response.
type Page struct {
	URL        string
	FinalURL   string
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Fetcher performs a single blocking GET.
//
// Implementations return a Page for any completed response, including non-2xx
// statuses, and wrap ErrFoundRedirect when a 302 is seen while redirecting.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Page, error)
}
