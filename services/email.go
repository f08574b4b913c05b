package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"legal_case_app_go/config"
	"legal_case_app_go/models"
	"strings"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotDeliverable is returned when a communication cannot be sent by email
var ErrNotDeliverable = errors.New("communication cannot be delivered by email")

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In test mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmail(email)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	zap.L().Info("Email sent via Resend", zap.String("id", sent.Id), zap.Strings("to", email.To))
	return nil
}

func logEmail(email *Email) {
	zap.L().Info("Email logged (test mode, not sent)",
		zap.Strings("to", email.To),
		zap.String("subject", email.Subject),
		zap.String("text", truncate(email.TextBody, 500)),
	)
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

var communicationHTML = template.Must(template.New("communication").Parse(`<html><body>
<p>{{.Greeting}}</p>
{{range .Paragraphs}}<p>{{.}}</p>
{{end}}<p style="color:#666">Ref.: {{.ProcessNumber}}</p>
</body></html>`))

// BuildCommunicationEmail renders a communication addressed to its client
func BuildCommunicationEmail(comm *models.Communication) (*Email, error) {
	if comm.Client == nil || !comm.Client.HasEmail() {
		return nil, fmt.Errorf("%w: client has no email address", ErrNotDeliverable)
	}

	processNumber := ""
	if comm.Case != nil {
		processNumber = comm.Case.ProcessNumber
	}

	subject := "Processo " + processNumber
	if comm.Subject != nil && *comm.Subject != "" {
		subject = *comm.Subject
	}
	content := ""
	if comm.Content != nil {
		content = strings.TrimSpace(*comm.Content)
	}

	greeting := "Prezado(a) " + comm.Client.Name + ","
	var paragraphs []string
	for _, p := range strings.Split(content, "\n") {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	var buf bytes.Buffer
	err := communicationHTML.Execute(&buf, map[string]interface{}{
		"Greeting":      greeting,
		"Paragraphs":    paragraphs,
		"ProcessNumber": processNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render communication email: %w", err)
	}

	text := greeting + "\n\n" + content
	if processNumber != "" {
		text += "\n\nRef.: " + processNumber
	}

	return &Email{
		To:       []string{*comm.Client.Email},
		Subject:  subject,
		HTMLBody: buf.String(),
		TextBody: text,
	}, nil
}

// SendCommunicationEmail delivers an email-type communication to its client
func SendCommunicationEmail(ctx context.Context, db *gorm.DB, cfg *config.Config, id uint) (*models.Communication, error) {
	comm, err := getCommunicationForDelivery(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if !comm.IsEmail() {
		return nil, fmt.Errorf("%w: type is %s", ErrNotDeliverable, comm.Type)
	}

	email, err := BuildCommunicationEmail(comm)
	if err != nil {
		return nil, err
	}
	if err := SendEmail(cfg, email); err != nil {
		return nil, err
	}
	return comm, nil
}
