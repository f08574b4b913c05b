package services

import (
	"context"
	"errors"
	"legal_case_app_go/config"
	"legal_case_app_go/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendEmail_TestMode(t *testing.T) {
	cfg := &config.Config{
		EmailTestMode: true,
	}
	email := &Email{
		To:       []string{"test@example.com"},
		Subject:  "Test",
		HTMLBody: "Body",
	}

	err := SendEmail(cfg, email)
	assert.NoError(t, err)
}

func TestSendEmail_NoApiKey(t *testing.T) {
	cfg := &config.Config{
		EmailTestMode: false,
		ResendAPIKey:  "",
	}
	email := &Email{
		To:       []string{"test@example.com"},
		Subject:  "Test",
		HTMLBody: "Body",
	}

	err := SendEmail(cfg, email)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "RESEND_API_KEY not configured")
}

func TestSendEmail_NoBody(t *testing.T) {
	cfg := &config.Config{
		EmailTestMode: false,
		ResendAPIKey:  "key",
	}
	email := &Email{
		To:      []string{"test@example.com"},
		Subject: "Test",
	}

	err := SendEmail(cfg, email)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email must have either HTMLBody or TextBody")
}

func TestTruncate(t *testing.T) {
	s := "Hello World"
	assert.Equal(t, "Hello", truncate(s, 5))
	assert.Equal(t, "Hello World", truncate(s, 20))
}

func TestBuildCommunicationEmail(t *testing.T) {
	comm := &models.Communication{
		Type:    models.CommunicationTypeEmail,
		Subject: stringPtr("Audiência marcada"),
		Content: stringPtr("A audiência foi marcada.\n\nTraga <documentos>."),
		Case:    &models.Case{ProcessNumber: "0001234-56.2024.8.26.0100"},
		Client:  &models.Client{Name: "Ana Souza", Email: stringPtr("ana@example.com")},
	}

	email, err := BuildCommunicationEmail(comm)
	require.NoError(t, err)
	assert.Equal(t, []string{"ana@example.com"}, email.To)
	assert.Equal(t, "Audiência marcada", email.Subject)
	assert.Contains(t, email.TextBody, "Prezado(a) Ana Souza,")
	assert.Contains(t, email.TextBody, "Ref.: 0001234-56.2024.8.26.0100")
	assert.Contains(t, email.HTMLBody, "<p>A audiência foi marcada.</p>")
	assert.Contains(t, email.HTMLBody, "&lt;documentos&gt;")

	t.Run("Default subject", func(t *testing.T) {
		comm.Subject = nil
		email, err := BuildCommunicationEmail(comm)
		require.NoError(t, err)
		assert.Equal(t, "Processo 0001234-56.2024.8.26.0100", email.Subject)
	})

	t.Run("Client without email", func(t *testing.T) {
		comm.Client.Email = nil
		_, err := BuildCommunicationEmail(comm)
		assert.True(t, errors.Is(err, ErrNotDeliverable))
	})
}

func TestSendCommunicationEmail(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()
	cfg := &config.Config{EmailTestMode: true}

	client, err := CreateClient(ctx, testDB, &models.Client{Name: "Ana Souza", Email: stringPtr("ana@example.com")})
	require.NoError(t, err)
	c := mustCreateCase(t, testDB, client.ID, "P-1")

	emailComm, err := CreateCommunication(ctx, testDB, &models.Communication{CaseID: c.ID, ClientID: client.ID, Type: models.CommunicationTypeEmail, Content: stringPtr("Olá")})
	require.NoError(t, err)
	phoneComm, err := CreateCommunication(ctx, testDB, &models.Communication{CaseID: c.ID, ClientID: client.ID, Type: models.CommunicationTypePhone})
	require.NoError(t, err)

	sent, err := SendCommunicationEmail(ctx, testDB, cfg, emailComm.ID)
	require.NoError(t, err)
	require.NotNil(t, sent.Client)
	assert.Equal(t, "Ana Souza", sent.Client.Name)

	_, err = SendCommunicationEmail(ctx, testDB, cfg, phoneComm.ID)
	assert.ErrorIs(t, err, ErrNotDeliverable)

	_, err = SendCommunicationEmail(ctx, testDB, cfg, 9999)
	assert.True(t, IsNotFound(err))
}
