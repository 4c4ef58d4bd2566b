package interfaces

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/lunchmoney-go/domain/models"
)

// ErrorType represents different types of client errors
type ErrorType string

const (
	// ErrorTypeConfiguration means the client could not be built, no request was made
	ErrorTypeConfiguration ErrorType = "configuration"

	// ErrorTypeValidation means a payload did not match its schema
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeTransport means the HTTP exchange failed or returned a non-2xx status
	ErrorTypeTransport ErrorType = "transport"

	// ErrorTypeAPI means a well-formed response reported an application error
	ErrorTypeAPI ErrorType = "api"
)

// ClientError represents an error from a client
type ClientError struct {
	Type    ErrorType
	Message string

	// Messages holds every server-provided message for API errors;
	// Message is their newline-joined form.
	Messages []string

	// StatusCode is the HTTP status for transport errors, 0 when no response arrived
	StatusCode int

	Err error
}

func (e *ClientError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// NewClientError creates a new client error
func NewClientError(errorType ErrorType, message string, err error) error {
	return &ClientError{
		Type:    errorType,
		Message: message,
		Err:     err,
	}
}

// NewAPIError creates an API error from the server's message(s)
func NewAPIError(messages ...string) error {
	return &ClientError{
		Type:     ErrorTypeAPI,
		Message:  strings.Join(messages, "\n"),
		Messages: messages,
	}
}

// NewTransportError creates a transport error for a failed exchange
func NewTransportError(statusCode int, message string, err error) error {
	if statusCode != 0 {
		message = fmt.Sprintf("%s (HTTP %d)", message, statusCode)
	}
	return &ClientError{
		Type:       ErrorTypeTransport,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
	}
}

// ErrorTypeOf returns the type of the first ClientError in err's chain
func ErrorTypeOf(err error) (ErrorType, bool) {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Type, true
	}
	return "", false
}

// IsConfigurationError reports whether err is a configuration failure
func IsConfigurationError(err error) bool {
	t, ok := ErrorTypeOf(err)
	return ok && t == ErrorTypeConfiguration
}

// IsValidationError reports whether err is a schema validation failure
func IsValidationError(err error) bool {
	t, ok := ErrorTypeOf(err)
	return ok && t == ErrorTypeValidation
}

// IsTransportError reports whether err is a transport failure
func IsTransportError(err error) bool {
	t, ok := ErrorTypeOf(err)
	return ok && t == ErrorTypeTransport
}

// IsAPIError reports whether err is an error reported by the API
func IsAPIError(err error) bool {
	t, ok := ErrorTypeOf(err)
	return ok && t == ErrorTypeAPI
}

// LunchMoneyClient defines the operations of the Lunch Money API.
// Every call issues exactly one blocking HTTP request.
type LunchMoneyClient interface {
	// Categories lists every category
	Categories(ctx context.Context) ([]models.Category, error)

	// CreateCategory creates a category and returns its id
	CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (int64, error)

	// Tags lists every tag
	Tags(ctx context.Context) ([]models.Tag, error)

	// Transactions lists the transactions matching filter
	Transactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)

	// Transaction gets a single transaction by id
	Transaction(ctx context.Context, id int64, debitAsNegative bool) (models.Transaction, error)

	// InsertTransactions inserts transactions and returns their ids in input order
	InsertTransactions(ctx context.Context, transactions []models.TransactionInput, opts models.InsertOptions) ([]int64, error)

	// InsertTransaction inserts one transaction, returning a one-element id list
	InsertTransaction(ctx context.Context, transaction models.TransactionInput, opts models.InsertOptions) ([]int64, error)

	// UpdateTransaction updates a transaction and returns the server's result
	UpdateTransaction(ctx context.Context, id int64, transaction models.TransactionInput, opts models.UpdateOptions) (map[string]any, error)

	// Close releases the client's idle connections
	Close() error
}
