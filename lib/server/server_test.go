package server

import (
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ether/delta-go/lib/api/constants"
	"github.com/ether/delta-go/lib/api/stats"
	settings2 "github.com/ether/delta-go/lib/settings"
	"github.com/ether/delta-go/lib/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testSettings(t *testing.T, json string) *settings2.Settings {
	t.Helper()
	cfg, err := settings2.ReadConfig(json)
	require.NoError(t, err)
	return cfg
}

func TestNewApp_Health(t *testing.T) {
	app := NewApp(testSettings(t, `{"history": {"maxStack": 3}}`), zap.NewNop().Sugar())

	var health stats.HealthResponse
	status := testutils.DoJSON(t, app, "GET", "/health", nil, &health)

	require.Equal(t, 200, status)
	assert.Equal(t, stats.StatusPass, health.Status)
	assert.Contains(t, health.Checks, "documents")
}

func TestNewApp_BodyLimit(t *testing.T) {
	app := NewApp(testSettings(t, `{"api": {"bodyLimit": 64}}`), zap.NewNop().Sugar())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = app.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = app.Shutdown()
	})

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	var body = `{"content": [{"insert": "` + strings.Repeat("a", 100) + `"}]}`
	resp, err := client.Post("http://"+ln.Addr().String()+"/api/documents", constants.ContentTypeJSON, strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

	var small = `{"content": [{"insert": "ok"}]}`
	resp2, err := client.Post("http://"+ln.Addr().String()+"/api/documents", constants.ContentTypeJSON, strings.NewReader(small))
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusCreated, resp2.StatusCode)
}

func TestNewApp_MaxLength(t *testing.T) {
	app := NewApp(testSettings(t, `{"documents": {"maxLength": 2}}`), zap.NewNop().Sugar())

	status := testutils.DoJSON(t, app, "POST", "/api/documents", `{"content": [{"insert": "abc"}]}`, nil)

	assert.Equal(t, 422, status)
}

func TestNewApp_Metrics(t *testing.T) {
	app := NewApp(testSettings(t, `{"enableMetrics": true}`), zap.NewNop().Sugar())

	status := testutils.DoJSON(t, app, "POST", "/api/delta/compose", `{"delta": [{"insert": "a"}], "other": [{"delete": 1}]}`, nil)
	require.Equal(t, 200, status)

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
}

func TestNewApp_MetricsDisabled(t *testing.T) {
	app := NewApp(testSettings(t, ""), zap.NewNop().Sugar())

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
