package payment

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danagreer/shopdeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, orderStatus int, orderBody string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "client-1" || pass != "secret-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-abc",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/v2/checkout/orders/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-abc" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(orderStatus)
		_, _ = w.Write([]byte(orderBody))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

const orderFixture = `{
	"id": "5O190127TN364715T",
	"status": "COMPLETED",
	"payer": {"name": {"given_name": "Ada", "surname": "Byrne"}, "email_address": "ada@example.com"},
	"purchase_units": [{
		"amount": {"currency_code": "USD", "value": "54.97"},
		"shipping": {"address": {"address_line_1": "1 Main St", "admin_area_2": "Portland", "postal_code": "97201", "country_code": "US"}},
		"payments": {"captures": [{"id": "3C679366HH908993F", "status": "COMPLETED", "amount": {"currency_code": "USD", "value": "54.97"}}]}
	}]
}`

func TestClient_GetOrder(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, orderFixture)
	client := NewClient(srv.URL, "client-1", "secret-1", srv.Client(), slog.Default())

	order, err := client.GetOrder(context.Background(), "5O190127TN364715T")

	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", order.Status)
	assert.Equal(t, "Ada Byrne", order.Payer.Name.FullName())
	require.Len(t, order.PurchaseUnits, 1)
	assert.Equal(t, "54.97", order.PurchaseUnits[0].Amount.Value)
	require.Len(t, order.PurchaseUnits[0].Payments.Captures, 1)
	assert.Equal(t, "COMPLETED", order.PurchaseUnits[0].Payments.Captures[0].Status)
}

func TestClient_GetOrder_NotFound(t *testing.T) {
	srv := newTestServer(t, http.StatusNotFound, `{}`)
	client := NewClient(srv.URL, "client-1", "secret-1", srv.Client(), slog.Default())

	_, err := client.GetOrder(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	var payErr *domain.PaymentError
	require.ErrorAs(t, err, &payErr)
	assert.Equal(t, "get_order", payErr.Op)
	assert.Equal(t, "missing", payErr.OrderID)
}

func TestClient_GetOrder_ServerError(t *testing.T) {
	srv := newTestServer(t, http.StatusBadGateway, ``)
	client := NewClient(srv.URL, "client-1", "secret-1", srv.Client(), slog.Default())

	_, err := client.GetOrder(context.Background(), "ord")

	var payErr *domain.PaymentError
	require.ErrorAs(t, err, &payErr)
	assert.Equal(t, http.StatusBadGateway, payErr.Status)
}

func TestClient_GetOrder_BadCredentials(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, orderFixture)
	client := NewClient(srv.URL, "client-1", "wrong", srv.Client(), slog.Default())

	_, err := client.GetOrder(context.Background(), "ord")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	var payErr *domain.PaymentError
	require.ErrorAs(t, err, &payErr)
	assert.Equal(t, "token", payErr.Op)
}

func TestClient_TokenCached(t *testing.T) {
	tokenCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "tok-abc", "expires_in": 3600})
	})
	mux.HandleFunc("/v2/checkout/orders/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(orderFixture))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, "client-1", "secret-1", srv.Client(), slog.Default())

	_, err := client.GetOrder(context.Background(), "a")
	require.NoError(t, err)
	_, err = client.GetOrder(context.Background(), "b")
	require.NoError(t, err)

	assert.Equal(t, 1, tokenCalls, "second call should reuse the cached token")
}

func TestPayerName_FullName(t *testing.T) {
	assert.Equal(t, "Ada Byrne", PayerName{Given: "Ada", Surname: "Byrne"}.FullName())
	assert.Equal(t, "Ada", PayerName{Given: "Ada"}.FullName())
	assert.Equal(t, "Byrne", PayerName{Surname: "Byrne"}.FullName())
}
