package app

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/InQaaaaGit/gyg.git/internal/config"
	"github.com/InQaaaaGit/gyg.git/internal/dispatch"
	"github.com/InQaaaaGit/gyg.git/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testConfig использует контроллеры и белый список из корня репозитория
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.ServerAddress = ":0"
	cfg.ControllersPath = filepath.Join("..", "..", "controllers")
	cfg.WhitelistFile = filepath.Join("..", "..", "whitelist.json")
	return cfg
}

func writeWhitelist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "whitelist.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewApp(t *testing.T) {
	cfg := testConfig()

	app, err := NewApp(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, app.mux)
	assert.NotNil(t, app.handler)
	assert.True(t, app.Store().ControllerIsEnabled("example"))
	assert.Equal(t, "example", app.Router().DefaultController())

	server := app.GetServer()
	assert.Equal(t, cfg.ServerAddress, server.Addr)
	assert.NotNil(t, server.Handler)
}

func TestNewApp_FatalConfiguration(t *testing.T) {
	tests := []struct {
		name      string
		whitelist string
		defaultID string
		wantErr   error
	}{
		{
			name:      "shortcut cycle",
			whitelist: `{"controllers": {"example": {"enabled": true}, "file": {"enabled": true}}, "shortcuts": {"ping": {"enabled": true, "path": "pong"}, "pong": {"enabled": true, "path": "ping"}}}`,
			defaultID: "example",
			wantErr:   router.ErrShortcutCycle,
		},
		{
			name:      "default controller disabled",
			whitelist: `{"controllers": {"example": {"enabled": false}, "file": {"enabled": true}}}`,
			defaultID: "example",
			wantErr:   router.ErrDefaultControllerDisabled,
		},
		{
			name:      "controller without implementation",
			whitelist: `{"controllers": {"example": {"enabled": true}, "blog": {"enabled": true}}}`,
			defaultID: "example",
			wantErr:   dispatch.ErrControllerNotRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.WhitelistFile = writeWhitelist(t, tt.whitelist)
			cfg.DefaultController = tt.defaultID

			_, err := NewApp(cfg, zap.NewNop())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewApp_MissingWhitelist(t *testing.T) {
	cfg := testConfig()
	cfg.WhitelistFile = filepath.Join(t.TempDir(), "missing.json")

	_, err := NewApp(cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestApp_Routes(t *testing.T) {
	app, err := NewApp(testConfig(), zap.NewNop())
	require.NoError(t, err)

	tests := []struct {
		name         string
		method       string
		target       string
		wantStatus   int
		wantContains string
	}{
		{name: "home", method: http.MethodGet, target: "/", wantStatus: http.StatusOK, wantContains: "Home"},
		{name: "controller page", method: http.MethodGet, target: "/example/mars", wantStatus: http.StatusOK, wantContains: "Hello Mars!"},
		{name: "shortcut", method: http.MethodGet, target: "/mars", wantStatus: http.StatusOK, wantContains: "Hello Mars!"},
		{name: "controller file", method: http.MethodGet, target: "/file/example/style/style.css", wantStatus: http.StatusOK},
		{name: "page file", method: http.MethodGet, target: "/file/example/mars/img/mars.svg", wantStatus: http.StatusOK},
		{name: "page file through pages directory", method: http.MethodGet, target: "/file/example/pages/mars/img/mars.svg", wantStatus: http.StatusOK},
		{name: "unknown page", method: http.MethodGet, target: "/venus", wantStatus: http.StatusNotFound, wantContains: "404 Not Found"},
		{name: "traversal", method: http.MethodGet, target: "/file/example/../../whitelist.json", wantStatus: http.StatusNotFound},
		{name: "ping", method: http.MethodGet, target: PingPath, wantStatus: http.StatusOK, wantContains: "pong"},
		{name: "method not allowed", method: http.MethodPost, target: "/", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			w := httptest.NewRecorder()

			app.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
			if tt.wantContains != "" {
				assert.Contains(t, w.Body.String(), tt.wantContains)
			}
		})
	}
}

func TestApp_Gzip(t *testing.T) {
	app, err := NewApp(testConfig(), zap.NewNop())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/example/mars", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()

	app.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	gz, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	defer gz.Close()
	body, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Hello Mars!")
}

func TestApp_Metrics(t *testing.T) {
	app, err := NewApp(testConfig(), zap.NewNop())
	require.NoError(t, err)

	for _, target := range []string{"/", "/venus"} {
		app.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	w := httptest.NewRecorder()
	app.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, MetricsPath, nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `gyg_http_requests_total{controller="example",status="200"} 1`)
	assert.Contains(t, body, `gyg_http_requests_total{controller="example",status="404"} 1`)
	assert.Contains(t, body, "gyg_http_request_duration_seconds")
}

func TestApp_DisabledPageAssets(t *testing.T) {
	cfg := testConfig()
	cfg.WhitelistFile = writeWhitelist(t, `{
		"controllers": {
			"example": {"enabled": true, "pages": {"home": {"enabled": true}, "mars": {"enabled": false}}},
			"file": {"enabled": true}
		}
	}`)

	app, err := NewApp(cfg, zap.NewNop())
	require.NoError(t, err)

	for _, target := range []string{
		"/example/mars",
		"/file/example/mars/img/mars.svg",
		"/file/example/pages/mars/img/mars.svg",
		"/file/example/mars/mars.tpl.html",
		"/file/example/pages/mars/mars.tpl.html",
	} {
		t.Run(target, func(t *testing.T) {
			w := httptest.NewRecorder()
			app.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}

	w := httptest.NewRecorder()
	app.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/file/example/img/gyg.svg", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
