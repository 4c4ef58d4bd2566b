package lunchmoney

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ZanzyTHEbar/lunchmoney-go/domain/models"
	"github.com/ZanzyTHEbar/lunchmoney-go/interfaces"
)

// ErrNoTransactions is returned when an insert is given nothing to insert
var ErrNoTransactions = errors.New("at least one transaction is required")

type insertTransactionsRequest struct {
	Transactions      []map[string]any `json:"transactions"`
	ApplyRules        bool             `json:"apply_rules"`
	SkipDuplicates    bool             `json:"skip_duplicates"`
	CheckForRecurring bool             `json:"check_for_recurring"`
	DebitAsNegative   bool             `json:"debit_as_negative"`
}

type updateTransactionRequest struct {
	Transaction     map[string]any     `json:"transaction"`
	Split           []models.SplitData `json:"split,omitempty"`
	DebitAsNegative bool               `json:"debit_as_negative"`
}

// Transactions lists the transactions matching filter
func (c *Client) Transactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	query, err := transactionQuery(filter)
	if err != nil {
		return nil, validationError("invalid transaction filter", err)
	}

	raw, err := c.makeRequest(ctx, http.MethodGet, "transactions", query, nil, "transactions")
	if err != nil {
		return nil, err
	}

	transactions, err := models.DecodeTransactions(raw)
	if err != nil {
		return nil, validationError("invalid transactions response", err)
	}

	c.logger.Debugf("Retrieved %d transaction(s)", len(transactions))
	return transactions, nil
}

// Transaction gets a single transaction by id
func (c *Client) Transaction(ctx context.Context, id int64, debitAsNegative bool) (models.Transaction, error) {
	path, err := transactionPath(id)
	if err != nil {
		return models.Transaction{}, err
	}
	query, err := styleQuery([]queryParam{{"debit_as_negative", debitAsNegative}})
	if err != nil {
		return models.Transaction{}, validationError("invalid query", err)
	}

	raw, err := c.makeRequest(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return models.Transaction{}, err
	}

	transaction, err := models.DecodeTransaction(raw)
	if err != nil {
		return models.Transaction{}, validationError("invalid transaction response", err)
	}
	return transaction, nil
}

// InsertTransactions inserts transactions and returns the new ids in input order.
// Full Transaction values are sent without their server-managed fields.
func (c *Client) InsertTransactions(ctx context.Context, transactions []models.TransactionInput, opts models.InsertOptions) ([]int64, error) {
	if len(transactions) == 0 {
		return nil, validationError("invalid insert", ErrNoTransactions)
	}

	payloads := make([]map[string]any, 0, len(transactions))
	for i, t := range transactions {
		if t == nil {
			return nil, validationError("invalid insert", fmt.Errorf("transaction %d: %w", i, models.ErrMissingPayload))
		}
		payload, err := t.InsertPayload()
		if err != nil {
			return nil, validationError("invalid insert", fmt.Errorf("transaction %d: %w", i, err))
		}
		payloads = append(payloads, payload)
	}

	body := insertTransactionsRequest{
		Transactions:      payloads,
		ApplyRules:        opts.ApplyRules,
		SkipDuplicates:    opts.SkipDuplicates,
		CheckForRecurring: opts.CheckForRecurring,
		DebitAsNegative:   opts.DebitAsNegative,
	}

	raw, err := c.makeRequest(ctx, http.MethodPost, "transactions", nil, body, "ids")
	if err != nil {
		return nil, err
	}

	var ids []int64
	if err := decodeInto(raw, &ids, "ids"); err != nil {
		return nil, err
	}

	c.logger.Debugf("Inserted %d transaction(s)", len(ids))
	return ids, nil
}

// InsertTransaction inserts a single transaction; it behaves exactly like
// InsertTransactions with a one-element list.
func (c *Client) InsertTransaction(ctx context.Context, transaction models.TransactionInput, opts models.InsertOptions) ([]int64, error) {
	return c.InsertTransactions(ctx, []models.TransactionInput{transaction}, opts)
}

// UpdateTransaction updates a transaction and returns the server's result,
// which holds an "updated" flag and, for splits, the "split" ids.
func (c *Client) UpdateTransaction(ctx context.Context, id int64, transaction models.TransactionInput, opts models.UpdateOptions) (map[string]any, error) {
	if transaction == nil {
		return nil, validationError("invalid update", models.ErrMissingPayload)
	}
	path, err := transactionPath(id)
	if err != nil {
		return nil, err
	}

	payload, err := transaction.UpdatePayload()
	if err != nil {
		return nil, validationError("invalid update", err)
	}
	for i, split := range opts.Split {
		if err := split.Validate(); err != nil {
			return nil, validationError("invalid update", fmt.Errorf("split %d: %w", i, err))
		}
	}

	body := updateTransactionRequest{
		Transaction:     payload,
		Split:           opts.Split,
		DebitAsNegative: opts.DebitAsNegative,
	}

	raw, err := c.makeRequest(ctx, http.MethodPut, path, nil, body, "")
	if err != nil {
		return nil, err
	}

	var result map[string]any
	if err := decodeInto(raw, &result, "update result"); err != nil {
		return nil, err
	}
	if _, ok := result["updated"]; !ok {
		return nil, validationError("invalid update result", fmt.Errorf("response is missing %q", "updated"))
	}
	return result, nil
}

func transactionPath(id int64) (string, error) {
	segment, err := pathParam("transaction_id", id)
	if err != nil {
		return "", interfaces.NewClientError(interfaces.ErrorTypeValidation, "invalid transaction id", err)
	}
	return "transactions/" + segment, nil
}
