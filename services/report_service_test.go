package services

import (
	"context"
	"legal_case_app_go/models"
	"legal_case_app_go/schema"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCountCasesByStatus(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()
	client := mustCreateClient(t, testDB, "Ana")

	mustCreateCase(t, testDB, client.ID, "P-1")
	mustCreateCase(t, testDB, client.ID, "P-2")
	c := mustCreateCase(t, testDB, client.ID, "P-3")
	_, err := UpdateCase(ctx, testDB, c.ID, schema.Patch{"Status": models.CaseStatusCompleted})
	require.NoError(t, err)

	counts, err := CountCasesByStatus(ctx, testDB)
	require.NoError(t, err)
	assert.Equal(t, []StatusCount{
		{Status: models.CaseStatusOngoing, Count: 2},
		{Status: models.CaseStatusCompleted, Count: 1},
		{Status: models.CaseStatusSuspended, Count: 0},
		{Status: models.CaseStatusArchived, Count: 0},
	}, counts)
}

func TestBuildCasesWorkbook(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()
	client := mustCreateClient(t, testDB, "Ana Souza")
	c := mustCreateCase(t, testDB, client.ID, "0001234-56.2024.8.26.0100")
	_, err := UpdateCase(ctx, testDB, c.ID, schema.Patch{"CaseValue": decimal.RequireFromString("15000.5")})
	require.NoError(t, err)

	buf, err := BuildCasesWorkbook(ctx, testDB)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetCases)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Process Number", rows[0][0])
	assert.Equal(t, "0001234-56.2024.8.26.0100", rows[1][0])
	assert.Equal(t, "Ana Souza", rows[1][2])
	assert.Equal(t, "ongoing", rows[1][6])
	assert.Equal(t, "15000.50", rows[1][7])
}

func TestBuildDeadlinesWorkbook(t *testing.T) {
	testDB := setupTestDB(t)
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	freezeClock(t, now, time.UTC)

	client := mustCreateClient(t, testDB, "Ana")
	c := mustCreateCase(t, testDB, client.ID, "P-1")
	mustCreateDeadline(t, testDB, c.ID, "Contestação", now.Add(48*time.Hour), false)
	mustCreateDeadline(t, testDB, c.ID, "Far away", now.Add(60*24*time.Hour), false)

	buf, err := BuildDeadlinesWorkbook(context.Background(), testDB)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetDeadlines)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Due Date", "Title", "Priority", "Process Number", "Description"}, rows[0])
	assert.Equal(t, "2024-05-12", rows[1][0])
	assert.Equal(t, "Contestação", rows[1][1])
	assert.Equal(t, "P-1", rows[1][3])
}
