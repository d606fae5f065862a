// Package payment wraps the payment provider's order API. The provider is
// consumed as a black box: the console only reads transaction records, it
// never mutates them.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/danagreer/shopdeck/internal/domain"
	"github.com/danagreer/shopdeck/internal/telemetry"
)

// Doer executes HTTP requests, allowing tests to inject a fake transport
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the payment provider's REST API
type Client struct {
	baseURL  string
	clientID string
	secret   string
	http     Doer
	logger   *slog.Logger

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

// NewClient creates a new payment API client with dependency injection
func NewClient(baseURL, clientID, secret string, doer Doer, logger *slog.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		clientID: clientID,
		secret:   secret,
		http:     doer,
		logger:   logger,
	}
}

// GetOrder fetches the provider's transaction record for an order ID
func (c *Client) GetOrder(ctx context.Context, id string) (Order, error) {
	ctx, span := telemetry.Start(ctx, "payment.get_order")
	defer span.End()

	c.logger.Debug("fetching provider order", "id", id)

	token, err := c.accessToken(ctx)
	if err != nil {
		return Order{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/checkout/orders/"+url.PathEscape(id), nil)
	if err != nil {
		return Order{}, &domain.PaymentError{Op: "get_order", OrderID: id, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return Order{}, &domain.PaymentError{Op: "get_order", OrderID: id, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return Order{}, &domain.PaymentError{Op: "get_order", OrderID: id, Err: domain.ErrNotFound}
	case resp.StatusCode == http.StatusUnauthorized:
		return Order{}, &domain.PaymentError{Op: "get_order", OrderID: id, Err: domain.ErrUnauthorized}
	case resp.StatusCode >= 400:
		return Order{}, &domain.PaymentError{Op: "get_order", OrderID: id, Status: resp.StatusCode}
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return Order{}, &domain.PaymentError{Op: "get_order", OrderID: id, Err: err}
	}

	c.logger.Debug("fetched provider order", "id", id, "status", order.Status)
	return order, nil
}

// accessToken returns a cached client-credentials token, refreshing when it
// is within a minute of expiry.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExp.Add(-time.Minute)) {
		return c.token, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", &domain.PaymentError{Op: "token", Err: err}
	}
	req.SetBasicAuth(c.clientID, c.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &domain.PaymentError{Op: "token", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", &domain.PaymentError{Op: "token", Err: domain.ErrUnauthorized}
	}
	if resp.StatusCode >= 400 {
		return "", &domain.PaymentError{Op: "token", Status: resp.StatusCode}
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", &domain.PaymentError{Op: "token", Err: err}
	}
	if tok.AccessToken == "" {
		return "", &domain.PaymentError{Op: "token", Err: fmt.Errorf("empty access token")}
	}

	c.token = tok.AccessToken
	c.tokenExp = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	c.logger.Debug("refreshed provider token", "expires_in", tok.ExpiresIn)

	return c.token, nil
}
