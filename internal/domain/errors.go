package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUserCanceled = errors.New("user canceled")
)

// PaymentError represents an error from the payment provider API
type PaymentError struct {
	Op      string // Operation: "token", "get_order", etc.
	OrderID string // Optional: provider order ID
	Status  int    // Optional: HTTP status returned by the provider
	Err     error  // Underlying error
}

func (e *PaymentError) Error() string {
	if e.OrderID != "" {
		return fmt.Sprintf("payment %s [%s]: %v", e.Op, e.OrderID, e.cause())
	}
	return fmt.Sprintf("payment %s: %v", e.Op, e.cause())
}

func (e *PaymentError) cause() any {
	if e.Err != nil {
		return e.Err
	}
	return fmt.Sprintf("status %d", e.Status)
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

// CatalogError represents an error from the document store API
type CatalogError struct {
	Op  string // Operation: "order", "list_orders", "save_category", etc.
	Doc string // Optional: document identifier
	Err error
}

func (e *CatalogError) Error() string {
	if e.Doc != "" {
		return fmt.Sprintf("catalog %s [%s]: %v", e.Op, e.Doc, e.Err)
	}
	return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// MailError represents an error from the mail API
type MailError struct {
	Op     string
	Status int // HTTP status from the mail API, 0 on transport errors
	Err    error
}

func (e *MailError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("mail %s: status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("mail %s: %v", e.Op, e.Err)
}

func (e *MailError) Unwrap() error {
	return e.Err
}
