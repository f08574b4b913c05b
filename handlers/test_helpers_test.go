package handlers

import (
	"encoding/json"
	"io"
	"legal_case_app_go/config"
	"legal_case_app_go/db"
	"legal_case_app_go/middleware"
	"legal_case_app_go/models"
	"legal_case_app_go/services"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:     "test",
		EmailTestMode:   true,
		EmailFrom:       "test@example.com",
		EmailFromName:   "Test",
		WritesPerMinute: 10000,
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique shared-cache name isolates tests while letting errgroup goroutines share the DB
	dsn := db.LocalDSN("file:mem_" + uuid.NewString() + "?mode=memory&cache=shared")
	testDB, err := gorm.Open(sqlite.Open(dsn), db.Config("test"))
	require.NoError(t, err)
	require.NoError(t, testDB.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, testDB.AutoMigrate(models.All()...))

	sqlDB, err := testDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	// Set global DB
	db.DB = testDB
	return testDB
}

// freezeClock pins services.Now for the duration of the test
func freezeClock(t *testing.T, now time.Time) {
	t.Helper()
	prevNow, prevLoc := services.Now, services.Location
	services.Now = func() time.Time { return now }
	t.Cleanup(func() {
		services.Now = prevNow
		services.Location = prevLoc
	})
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	cfg := testConfig()

	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler
	e.Use(ConfigMiddleware(cfg))
	limiter := middleware.NewWriteRateLimiter(cfg.WritesPerMinute)
	t.Cleanup(limiter.Stop)
	RegisterRoutes(e, limiter, nil)
	return e
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", testConfig())

	return e, c, rec
}

// doRequest sends a JSON request through the full router and error handler
func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	decodeJSON(t, rec, &resp)
	return resp
}

func createClient(t *testing.T, database *gorm.DB, name string) *models.Client {
	t.Helper()
	client := &models.Client{Name: name}
	require.NoError(t, database.Create(client).Error)
	return client
}

func createCase(t *testing.T, database *gorm.DB, clientID uint, processNumber string) *models.Case {
	t.Helper()
	c := &models.Case{
		ProcessNumber: processNumber,
		Court:         "1ª Vara Cível",
		ClientID:      clientID,
		ActionType:    "Cobrança",
		Plaintiff:     "Autor",
		Defendant:     "Réu",
		Status:        models.CaseStatusOngoing,
	}
	require.NoError(t, database.Create(c).Error)
	return c
}

func createFee(t *testing.T, database *gorm.DB, caseID uint, amount, status string) *models.FinancialRecord {
	t.Helper()
	record := &models.FinancialRecord{
		CaseID:      caseID,
		Type:        models.FinancialTypeFee,
		Description: "Honorários",
		Amount:      decimal.RequireFromString(amount),
		Status:      status,
	}
	require.NoError(t, database.Create(record).Error)
	return record
}

func stringToPtr(s string) *string {
	return &s
}
