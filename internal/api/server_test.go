package api

import (
	"bufio"
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JakeFAU/ufc-athletes/internal/athlete"
	"github.com/JakeFAU/ufc-athletes/internal/config"
	"github.com/JakeFAU/ufc-athletes/internal/service"
)

func TestServer_GetFighter_ReturnsSnapshot(t *testing.T) {
	t.Parallel()

	scraper := newFakeScraper()
	scraper.fighters["mateo rivas"] = &athlete.Fighter{Name: "Mateo Rivas", Slug: "mateo-rivas"}
	server := newTestServerWithScraper(scraper)

	req := httptest.NewRequest(http.MethodGet, "/v1/fighters/mateo%20rivas", nil)
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"name":"Mateo Rivas"`)
	require.Equal(t, []string{"mateo rivas"}, scraper.requested())
}

func TestServer_GetFighter_UpstreamNotFound(t *testing.T) {
	t.Parallel()

	scraper := newFakeScraper()
	scraper.err = &athlete.ClientError{URL: "https://www.ufc.com/athlete/nobody", StatusCode: http.StatusNotFound}
	server := newTestServerWithScraper(scraper)

	req := httptest.NewRequest(http.MethodGet, "/v1/fighters/nobody", nil)
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "nobody")
}

func TestServer_GetFighter_UpstreamFailureIsBadGateway(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "server error",
			err:    &athlete.ClientError{URL: "u", StatusCode: http.StatusServiceUnavailable},
			status: http.StatusBadGateway,
		},
		{
			name: "found redirect",
			err: &athlete.ClientError{
				URL:        "u",
				StatusCode: http.StatusFound,
				Err:        athlete.ErrFoundRedirect,
			},
			status: http.StatusBadGateway,
		},
		{
			name:   "deadline",
			err:    context.DeadlineExceeded,
			status: http.StatusGatewayTimeout,
		},
		{
			name:   "store failure",
			err:    errors.New("save profile: boom"),
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			scraper := newFakeScraper()
			scraper.err = tt.err
			server := newTestServerWithScraper(scraper)

			req := httptest.NewRequest(http.MethodGet, "/v1/fighters/someone", nil)
			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, req)

			require.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestServer_ListChampions(t *testing.T) {
	t.Parallel()

	scraper := newFakeScraper()
	scraper.champions = []service.Champion{
		{Division: athlete.WomensStrawweight, Fighter: &athlete.Fighter{Name: "Ana Lima"}},
		{Division: athlete.MensHeavyweight},
	}
	server := newTestServerWithScraper(scraper)

	req := httptest.NewRequest(http.MethodGet, "/v1/champions", nil)
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Ana Lima")
	require.Contains(t, rec.Body.String(), athlete.MensHeavyweight.Slug)
}

func TestServer_GetChampion_ByDivision(t *testing.T) {
	t.Parallel()

	scraper := newFakeScraper()
	server := newTestServerWithScraper(scraper)

	req := httptest.NewRequest(http.MethodGet, "/v1/champions/"+athlete.MensLightweight.Slug, nil)
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []athlete.Division{athlete.MensLightweight}, scraper.divisionsRequested())
}

func TestServer_GetChampion_UnknownDivision(t *testing.T) {
	t.Parallel()

	scraper := newFakeScraper()
	server := newTestServerWithScraper(scraper)

	req := httptest.NewRequest(http.MethodGet, "/v1/champions/catchweight", nil)
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Empty(t, scraper.divisionsRequested())
}

func TestServer_ListDivisionsAndFields(t *testing.T) {
	t.Parallel()

	server := newTestServer()

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/divisions", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), athlete.WomensFeatherweight.Slug)

	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/fields", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), athlete.FieldWinsByKO)
}

func TestServer_HealthAndMetrics(t *testing.T) {
	t.Parallel()

	server := newTestServer()
	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestServer_ReadyzWithoutScraper(t *testing.T) {
	t.Parallel()

	server := NewServer(nil, config.Config{}, zap.NewNop())
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestServer_APIKeyMiddleware(t *testing.T) {
	t.Parallel()

	cfg := config.Config{Auth: config.AuthConfig{Enabled: true, APIKey: "secret"}}
	server := NewServer(newFakeScraper(), cfg, zap.NewNop())

	tests := []struct {
		name   string
		path   string
		header string
		status int
	}{
		{name: "missing key", path: "/v1/divisions", status: http.StatusForbidden},
		{name: "header key", path: "/v1/divisions", header: "secret", status: http.StatusOK},
		{name: "query key", path: "/v1/divisions?api_key=secret", status: http.StatusOK},
		{name: "wrong key", path: "/v1/divisions", header: "nope", status: http.StatusForbidden},
		{name: "probes stay open", path: "/healthz", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("X-API-Key", tt.header)
			}
			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, req)
			require.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRequestIDMiddlewareSetsHeader(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	newTestServer().Handler().ServeHTTP(rec, req)

	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRecoverMiddleware(t *testing.T) {
	t.Parallel()

	h := recoverMiddleware(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestResponseWriterHijackBehavior(t *testing.T) {
	t.Parallel()

	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	if _, _, err := rw.Hijack(); err == nil || err.Error() != "hijacker not supported" {
		t.Fatalf("expected unsupported hijacker error, got %v", err)
	}

	h := &hijackableRecorder{ResponseRecorder: httptest.NewRecorder()}
	rw = &responseWriter{ResponseWriter: h}
	conn, buf, err := rw.Hijack()
	if err != nil {
		t.Fatalf("expected successful hijack, got %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("close hijacked conn: %v", err)
	}
	if err := h.CloseClient(); err != nil {
		t.Fatalf("close hijacked client: %v", err)
	}
	if buf == nil {
		t.Fatal("expected buf to be non-nil")
	}
}

// --- helpers/fakes ---

type fakeScraper struct {
	mu        sync.Mutex
	fighters  map[string]*athlete.Fighter
	champions []service.Champion
	err       error
	names     []string
	divisions []athlete.Division
}

func newFakeScraper() *fakeScraper {
	return &fakeScraper{fighters: make(map[string]*athlete.Fighter)}
}

func (f *fakeScraper) ScrapeFighter(_ context.Context, name string) (*athlete.Fighter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.names = append(f.names, name)
	if f.err != nil {
		return nil, f.err
	}
	if fighter, ok := f.fighters[name]; ok {
		return fighter, nil
	}
	return &athlete.Fighter{Name: name}, nil
}

func (f *fakeScraper) ScrapeChampions(context.Context) ([]service.Champion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.champions, nil
}

func (f *fakeScraper) ScrapeChampion(_ context.Context, d athlete.Division) (service.Champion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.divisions = append(f.divisions, d)
	if f.err != nil {
		return service.Champion{}, f.err
	}
	return service.Champion{Division: d}, nil
}

func (f *fakeScraper) requested() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.names...)
}

func (f *fakeScraper) divisionsRequested() []athlete.Division {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]athlete.Division(nil), f.divisions...)
}

type hijackableRecorder struct {
	*httptest.ResponseRecorder
	client net.Conn
}

func (h *hijackableRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	server, client := net.Pipe()
	h.client = client
	return server, bufio.NewReadWriter(bufio.NewReader(server), bufio.NewWriter(server)), nil
}

func (h *hijackableRecorder) CloseClient() error {
	if h.client == nil {
		return nil
	}
	return h.client.Close()
}

func newTestServer() *Server {
	return newTestServerWithScraper(newFakeScraper())
}

func newTestServerWithScraper(scraper Scraper) *Server {
	return NewServer(scraper, config.Config{}, zap.NewNop())
}
