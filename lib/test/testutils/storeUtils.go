package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ether/delta-go/lib"
	"github.com/ether/delta-go/lib/api/constants"
	"github.com/ether/delta-go/lib/document"
	"github.com/ether/delta-go/lib/history"
	"github.com/ether/delta-go/lib/settings"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type TestDataStore struct {
	App             *fiber.App
	Store           *lib.InitStore
	DocumentManager *document.Manager
}

type TestRunConfig struct {
	Name string
	Test func(t *testing.T, tsStore TestDataStore)
}

// TestHandler runs every registered test against a fresh store.
type TestHandler struct {
	t     *testing.T
	tests []TestRunConfig
	init  func(store *lib.InitStore)
	// MaxLength configures the document manager of every run.
	MaxLength int
}

func NewTestHandler(t *testing.T, init func(store *lib.InitStore)) *TestHandler {
	t.Helper()
	return &TestHandler{t: t, init: init}
}

func (test *TestHandler) AddTests(testConfs ...TestRunConfig) {
	test.tests = append(test.tests, testConfs...)
}

func (test *TestHandler) StartTestHandler() {
	for _, testRun := range test.tests {
		test.t.Run(testRun.Name, func(t *testing.T) {
			testRun.Test(t, test.newStore())
		})
	}
}

func (test *TestHandler) newStore() TestDataStore {
	var logger = zap.NewNop().Sugar()
	var manager = document.NewManager(document.Options{
		History:   history.Options{MaxStack: history.DefaultMaxStack, Delay: time.Second},
		MaxLength: test.MaxLength,
	}, logger)
	var app = fiber.New(fiber.Config{DisableStartupMessage: true})
	var store = &lib.InitStore{
		C:                 app,
		RetrievedSettings: &settings.Settings{},
		DocumentManager:   manager,
		Validator:         validator.New(validator.WithRequiredStructEnabled()),
		Logger:            logger,
	}
	if test.init != nil {
		test.init(store)
	}
	return TestDataStore{App: app, Store: store, DocumentManager: manager}
}

// DoJSON sends body as JSON and decodes the response into out when out is
// not nil. A string body is sent verbatim. It returns the status code.
func DoJSON(t *testing.T, app *fiber.App, method, target string, body any, out any) int {
	t.Helper()
	var reader io.Reader = http.NoBody
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			encoded, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(encoded)
		}
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", constants.ContentTypeJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}
