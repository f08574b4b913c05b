package handlers

import (
	"bytes"
	"legal_case_app_go/models"
	"legal_case_app_go/services"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCasesByStatusHandler(t *testing.T) {
	database := setupTestDB(t)
	e := newTestServer(t)

	client := createClient(t, database, "Ana Souza")
	createCase(t, database, client.ID, "0001")
	archived := createCase(t, database, client.ID, "0002")
	require.NoError(t, database.Model(archived).Update("status", models.CaseStatusArchived).Error)

	rec := doRequest(e, http.MethodGet, "/api/reports/cases-by-status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var counts []services.StatusCount
	decodeJSON(t, rec, &counts)
	require.Len(t, counts, len(models.CaseStatuses))

	byStatus := map[string]int64{}
	for _, sc := range counts {
		byStatus[sc.Status] = sc.Count
	}
	assert.Equal(t, int64(1), byStatus[models.CaseStatusOngoing])
	assert.Equal(t, int64(1), byStatus[models.CaseStatusArchived])
	assert.Equal(t, int64(0), byStatus[models.CaseStatusCompleted])
}

func TestExportHandlers(t *testing.T) {
	database := setupTestDB(t)
	e := newTestServer(t)
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	freezeClock(t, now)

	client := createClient(t, database, "Ana Souza")
	c := createCase(t, database, client.ID, "0001234-56.2024.8.26.0100")
	createDeadline(t, database, c.ID, "Contestação", now.Add(48*time.Hour))

	t.Run("Cases", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/reports/cases/export", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Disposition"), "attachment; filename=cases_20240510"))

		f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Cases")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "0001234-56.2024.8.26.0100", rows[1][0])
		assert.Equal(t, "Ana Souza", rows[1][2])
	})

	t.Run("Deadlines", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/reports/deadlines/export", "")
		require.Equal(t, http.StatusOK, rec.Code)

		f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Deadlines")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Contestação", rows[1][1])
	})
}
