package scraper

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/pfrederiksen/fbdb-scores/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *config.Config {
	cfg := config.Default()
	cfg.BaseURL = baseURL
	bypass := false
	cfg.CloudflareBypass = &bypass
	return cfg
}

func TestClient_Fetch(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		statusCode int
		wantError  bool
		wantStatus int
	}{
		{
			name:       "successful fetch",
			body:       `<html><body><table class="statistics"></table></body></html>`,
			statusCode: http.StatusOK,
		},
		{
			name:       "not found",
			statusCode: http.StatusNotFound,
			wantError:  true,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "forbidden by bot protection",
			body:       "Access denied",
			statusCode: http.StatusForbidden,
			wantError:  true,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "server error",
			statusCode: http.StatusInternalServerError,
			wantError:  true,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, GamesPath, r.URL.Path)
				assert.Equal(t, "NFL", r.URL.Query().Get("lg"))
				assert.Equal(t, "2024", r.URL.Query().Get("yr"))
				assert.Equal(t, config.DefaultUserAgent, r.Header.Get("User-Agent"))

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(testConfig(server.URL))
			body, err := client.Fetch(context.Background(), 2024)

			if tt.wantError {
				require.Error(t, err)
				var statusErr *StatusError
				require.True(t, errors.As(err, &statusErr), "error %v is not a StatusError", err)
				assert.Equal(t, tt.wantStatus, statusErr.StatusCode)
				assert.Empty(t, body)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.body, body)
		})
	}
}

func TestClient_FetchYearIsNotValidated(t *testing.T) {
	var gotYear string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotYear = r.URL.Query().Get("yr")
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	_, err := NewClient(testConfig(server.URL)).Fetch(context.Background(), -1)
	require.NoError(t, err)
	assert.Equal(t, "-1", gotYear)
}

func TestClient_FetchExtraHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "en-US", r.Header.Get("Accept-Language"))
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.Headers = map[string]string{"Accept-Language": "en-US"}

	_, err := NewClient(cfg).Fetch(context.Background(), 2024)
	require.NoError(t, err)
}

func TestClient_FetchTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(testConfig(url)).Fetch(context.Background(), 2024)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching page")
}

func TestClient_FetchCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(testConfig(server.URL)).Fetch(ctx, 2024)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewClient(t *testing.T) {
	client := NewClient(nil)
	require.NotNil(t, client)
	require.NotNil(t, client.http)

	assert.Equal(t, config.DefaultBaseURL, client.baseURL)
	assert.Equal(t, "https://www.footballdb.com/games/index.html?lg=NFL&yr=2024", client.SeasonURL(2024))
	assert.Equal(t, config.DefaultUserAgent, client.http.Header.Get("User-Agent"))
}

func TestClient_FetchWithBypassSendsNoExtraHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, config.DefaultUserAgent, r.Header.Get("User-Agent"))
		assert.Empty(t, r.Header.Get("Accept-Language"))
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.BaseURL = server.URL
	require.True(t, cfg.BypassEnabled())

	client := NewClient(cfg)
	transport, ok := client.http.GetClient().Transport.(*http.Transport)
	require.True(t, ok)
	require.NotNil(t, transport.TLSClientConfig)
	assert.Equal(t, uint16(tls.VersionTLS12), transport.TLSClientConfig.MinVersion)
	assert.NotEmpty(t, transport.TLSClientConfig.CipherSuites)

	_, err := client.Fetch(context.Background(), 2024)
	require.NoError(t, err)
}

func TestNewClient_BypassDisabledKeepsDefaultTLS(t *testing.T) {
	client := NewClient(testConfig("http://localhost"))
	if transport, ok := client.http.GetClient().Transport.(*http.Transport); ok && transport.TLSClientConfig != nil {
		assert.Empty(t, transport.TLSClientConfig.CipherSuites)
	}
}

func TestFileSource_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "season.html")
	require.NoError(t, os.WriteFile(path, []byte("<html>saved</html>"), 0600))

	body, err := FileSource{Path: path}.Fetch(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, "<html>saved</html>", body)

	_, err = FileSource{Path: filepath.Join(t.TempDir(), "missing.html")}.Fetch(context.Background(), 2024)
	assert.Error(t, err)
}
