package handlers

import (
	"fmt"
	"legal_case_app_go/models"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodayHearings(t *testing.T) {
	database := setupTestDB(t)
	e := newTestServer(t)
	freezeClock(t, time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC))

	client := createClient(t, database, "Ana Souza")
	c := createCase(t, database, client.ID, "0001")

	rec := doRequest(e, http.MethodPost, "/api/hearings", fmt.Sprintf(
		`{"caseId":%d,"title":"Audiência de conciliação","date":"2024-05-10T15:00:00Z","type":"conciliation","location":"Fórum Central"}`, c.ID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var today models.Hearing
	decodeJSON(t, rec, &today)
	assert.False(t, today.Completed)

	rec = doRequest(e, http.MethodPost, "/api/hearings", fmt.Sprintf(
		`{"caseId":%d,"title":"Instrução","date":"2024-05-11T09:00:00Z","type":"instruction"}`, c.ID))
	require.Equal(t, http.StatusCreated, rec.Code)

	listToday := func() []models.Hearing {
		rec := doRequest(e, http.MethodGet, "/api/hearings/today", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var hearings []models.Hearing
		decodeJSON(t, rec, &hearings)
		return hearings
	}

	got := listToday()
	require.Len(t, got, 1)
	assert.Equal(t, today.ID, got[0].ID)

	rec = doRequest(e, http.MethodPut, "/api/hearings/"+strconv.Itoa(int(today.ID)), `{"completed":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Empty(t, listToday())

	t.Run("AllHearings", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/hearings", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var hearings []models.Hearing
		decodeJSON(t, rec, &hearings)
		require.Len(t, hearings, 2)
		assert.True(t, hearings[0].Date.Before(hearings[1].Date))
	})
}

func TestHearingValidationAndDelete(t *testing.T) {
	database := setupTestDB(t)
	e := newTestServer(t)

	client := createClient(t, database, "Ana Souza")
	c := createCase(t, database, client.ID, "0001")

	rec := doRequest(e, http.MethodPost, "/api/hearings", fmt.Sprintf(`{"caseId":%d,"title":"X","date":"tomorrow","type":"trial"}`, c.ID))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	reasons := map[string]string{}
	for _, fe := range resp.Errors {
		reasons[fe.Field] = fe.Reason
	}
	assert.Equal(t, "invalid type", reasons["date"])
	assert.Contains(t, reasons["type"], "must be one of")

	rec = doRequest(e, http.MethodPost, "/api/hearings", `{"caseId":999,"title":"X","date":"2024-05-10","type":"judgment"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	hearing := &models.Hearing{CaseID: c.ID, Title: "Julgamento", Date: time.Now().UTC(), Type: models.HearingTypeJudgment}
	require.NoError(t, database.Create(hearing).Error)

	rec = doRequest(e, http.MethodDelete, "/api/hearings/"+strconv.Itoa(int(hearing.ID)), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var msg MessageResponse
	decodeJSON(t, rec, &msg)
	assert.Equal(t, "Hearing deleted successfully", msg.Message)

	rec = doRequest(e, http.MethodGet, "/api/hearings/"+strconv.Itoa(int(hearing.ID)), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Hearing not found", decodeError(t, rec).Message)
}
