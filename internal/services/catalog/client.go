// Package catalog wraps the document store that holds the shop's internal
// projections: orders as the storefront recorded them, plus the editable
// storefront content (categories, collections, hero banner).
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/danagreer/shopdeck/internal/domain"
	"github.com/danagreer/shopdeck/internal/telemetry"
)

// Doer executes HTTP requests, allowing tests to inject a fake transport
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the document store's REST API
type Client struct {
	baseURL string
	apiKey  string
	http    Doer
	logger  *slog.Logger
}

// NewClient creates a new document store client with dependency injection
func NewClient(baseURL, apiKey string, doer Doer, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    doer,
		logger:  logger,
	}
}

// Order fetches the internal order projection by ID
func (c *Client) Order(ctx context.Context, id string) (domain.OrderProjection, error) {
	var order domain.OrderProjection
	err := c.get(ctx, "order", "/orders/"+url.PathEscape(id), id, &order)
	return order, err
}

// ListOrders fetches all order projections
func (c *Client) ListOrders(ctx context.Context) ([]domain.OrderProjection, error) {
	var orders []domain.OrderProjection
	err := c.get(ctx, "list_orders", "/orders", "", &orders)
	return orders, err
}

// ListCategories fetches the storefront categories
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := c.get(ctx, "list_categories", "/categories", "", &categories)
	return categories, err
}

// SaveCategory creates or updates a category
func (c *Client) SaveCategory(ctx context.Context, cat domain.Category) error {
	return c.put(ctx, "save_category", "/categories/"+url.PathEscape(cat.ID), cat.ID, cat)
}

// DeleteCategory removes a category
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, "delete_category", http.MethodDelete, "/categories/"+url.PathEscape(id), id, nil, nil)
}

// ListCollections fetches the storefront collections
func (c *Client) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	var collections []domain.Collection
	err := c.get(ctx, "list_collections", "/collections", "", &collections)
	return collections, err
}

// SaveCollection creates or updates a collection
func (c *Client) SaveCollection(ctx context.Context, col domain.Collection) error {
	return c.put(ctx, "save_collection", "/collections/"+url.PathEscape(col.ID), col.ID, col)
}

// Hero fetches the storefront hero banner
func (c *Client) Hero(ctx context.Context) (domain.HeroBanner, error) {
	var hero domain.HeroBanner
	err := c.get(ctx, "hero", "/content/hero", "", &hero)
	return hero, err
}

// SaveHero updates the storefront hero banner
func (c *Client) SaveHero(ctx context.Context, hero domain.HeroBanner) error {
	return c.put(ctx, "save_hero", "/content/hero", "", hero)
}

func (c *Client) get(ctx context.Context, op, path, doc string, out any) error {
	return c.do(ctx, op, http.MethodGet, path, doc, nil, out)
}

func (c *Client) put(ctx context.Context, op, path, doc string, body any) error {
	return c.do(ctx, op, http.MethodPut, path, doc, body, nil)
}

func (c *Client) do(ctx context.Context, op, method, path, doc string, body, out any) error {
	ctx, span := telemetry.Start(ctx, "catalog."+op)
	defer span.End()

	c.logger.Debug("catalog request", "op", op, "doc", doc)

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &domain.CatalogError{Op: op, Doc: doc, Err: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &domain.CatalogError{Op: op, Doc: doc, Err: err}
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.CatalogError{Op: op, Doc: doc, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &domain.CatalogError{Op: op, Doc: doc, Err: domain.ErrNotFound}
	case resp.StatusCode == http.StatusUnauthorized:
		return &domain.CatalogError{Op: op, Doc: doc, Err: domain.ErrUnauthorized}
	case resp.StatusCode >= 400:
		return &domain.CatalogError{Op: op, Doc: doc, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &domain.CatalogError{Op: op, Doc: doc, Err: err}
		}
	}

	return nil
}
