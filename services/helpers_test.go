package services

import (
	"context"
	"legal_case_app_go/db"
	"legal_case_app_go/models"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an isolated shared-cache in-memory database so the
// concurrent queries of a single test all see the same data
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := db.LocalDSN("file:mem_" + uuid.New().String() + "?mode=memory&cache=shared")
	testDB, err := gorm.Open(sqlite.Open(dsn), db.Config("test"))
	require.NoError(t, err)

	require.NoError(t, testDB.AutoMigrate(models.All()...))

	t.Cleanup(func() {
		if sqlDB, err := testDB.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return testDB
}

// freezeClock pins Now and Location for the duration of a test
func freezeClock(t *testing.T, now time.Time, loc *time.Location) {
	t.Helper()
	prevNow, prevLoc := Now, Location
	Now = func() time.Time { return now }
	Location = loc
	t.Cleanup(func() {
		Now, Location = prevNow, prevLoc
	})
}

func mustCreateClient(t *testing.T, testDB *gorm.DB, name string) *models.Client {
	t.Helper()
	client, err := CreateClient(context.Background(), testDB, &models.Client{Name: name})
	require.NoError(t, err)
	return client
}

func mustCreateCase(t *testing.T, testDB *gorm.DB, clientID uint, processNumber string) *models.Case {
	t.Helper()
	c, err := CreateCase(context.Background(), testDB, &models.Case{
		ProcessNumber: processNumber,
		Court:         "tjsp",
		ClientID:      clientID,
		ActionType:    "Ação Cível",
		Plaintiff:     "Autor",
		Defendant:     "Réu",
		Status:        models.CaseStatusOngoing,
	})
	require.NoError(t, err)
	return c
}

func mustCreateDeadline(t *testing.T, testDB *gorm.DB, caseID uint, title string, due time.Time, completed bool) *models.Activity {
	t.Helper()
	due = due.UTC()
	a, err := CreateActivity(context.Background(), testDB, &models.Activity{
		CaseID:    caseID,
		Type:      models.ActivityTypeDeadline,
		Title:     title,
		DueDate:   &due,
		Completed: completed,
		Priority:  models.PriorityMedium,
	})
	require.NoError(t, err)
	return a
}

func mustCreateFee(t *testing.T, testDB *gorm.DB, caseID uint, amount, status string, due *time.Time) *models.FinancialRecord {
	t.Helper()
	f, err := CreateFinancialRecord(context.Background(), testDB, &models.FinancialRecord{
		CaseID:      caseID,
		Type:        models.FinancialTypeFee,
		Description: "Honorários " + amount,
		Amount:      decimal.RequireFromString(amount),
		Status:      status,
		DueDate:     due,
	})
	require.NoError(t, err)
	return f
}

func timePtr(t time.Time) *time.Time {
	return &t
}
