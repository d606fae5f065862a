package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/danagreer/shopdeck/internal/domain"
	"github.com/danagreer/shopdeck/internal/telemetry"
	"github.com/google/uuid"
)

// Doer executes HTTP requests, allowing tests to inject a fake transport
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIProvider sends mail through a JSON-over-HTTP mail API with a bearer
// token (Mailtrap-style endpoint).
type APIProvider struct {
	apiURL   string
	apiToken string
	from     person
	http     Doer
	logger   *slog.Logger
}

type person struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type payload struct {
	From     person   `json:"from"`
	To       []person `json:"to"`
	Subject  string   `json:"subject"`
	Text     string   `json:"text,omitempty"`
	HTML     string   `json:"html,omitempty"`
	Category string   `json:"category,omitempty"`
}

// NewAPIProvider creates a mail API provider with dependency injection
func NewAPIProvider(apiURL, apiToken, fromEmail, fromName string, doer Doer, logger *slog.Logger) *APIProvider {
	return &APIProvider{
		apiURL:   apiURL,
		apiToken: apiToken,
		from:     person{Email: fromEmail, Name: fromName},
		http:     doer,
		logger:   logger,
	}
}

// Send posts the message to the mail API. Success is judged by response
// status alone; there is no structured error body contract.
func (p *APIProvider) Send(ctx context.Context, msg Message) error {
	ctx, span := telemetry.Start(ctx, "mail.send")
	defer span.End()

	if p.apiURL == "" || p.apiToken == "" {
		return &domain.MailError{Op: "send", Err: domain.ErrUnauthorized}
	}

	body, err := json.Marshal(payload{
		From:     p.from,
		To:       []person{{Email: msg.To, Name: msg.ToName}},
		Subject:  msg.Subject,
		Text:     msg.TextBody,
		HTML:     msg.HTMLBody,
		Category: string(msg.Category),
	})
	if err != nil {
		return &domain.MailError{Op: "send", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(body))
	if err != nil {
		return &domain.MailError{Op: "send", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+p.apiToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := p.http.Do(req)
	if err != nil {
		return &domain.MailError{Op: "send", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &domain.MailError{Op: "send", Status: resp.StatusCode}
	}

	p.logger.Info("email sent", "to", msg.To, "category", msg.Category)
	return nil
}
