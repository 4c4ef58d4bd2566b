package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

const (
	// PayeeMaxLength is the longest payee the API accepts
	PayeeMaxLength = 140

	// ExternalIDMaxLength is the longest external identifier the API accepts
	ExternalIDMaxLength = 75

	// NotesMaxLength is the longest note the API accepts
	NotesMaxLength = 350
)

// ServerManagedFields are assigned by the server and never sent back on insert or update
var ServerManagedFields = []string{"id", "plaid_account_id", "parent_id", "group_id", "is_group"}

// TransactionInput is anything that can be submitted as a transaction body.
// Transaction and TransactionData implement it.
type TransactionInput interface {
	// InsertPayload returns the body element for a transaction insert
	InsertPayload() (map[string]any, error)

	// UpdatePayload returns the "transaction" object for an update
	UpdatePayload() (map[string]any, error)
}

// Transaction is a ledger entry as returned by the API, with resolved tags.
// Pointer fields are nil when the server sent no value.
type Transaction struct {
	ID             *int64             `json:"id"`
	Date           string             `json:"date"`
	Amount         decimal.Decimal    `json:"amount"`
	Payee          *string            `json:"payee"`
	Currency       *string            `json:"currency"`
	Status         *TransactionStatus `json:"status"`
	CategoryID     *int64             `json:"category_id"`
	AssetID        *int64             `json:"asset_id"`
	ParentID       *int64             `json:"parent_id"`
	PlaidAccountID *int64             `json:"plaid_account_id"`
	IsGroup        *bool              `json:"is_group"`
	GroupID        *int64             `json:"group_id"`
	ExternalID     *string            `json:"external_id"`
	Tags           []Tag              `json:"tags"`
	Notes          *string            `json:"notes"`
}

// Validate checks if the transaction is valid
func (t Transaction) Validate() error {
	return newValidationError("transaction", validation.ValidateStruct(&t,
		validation.Field(&t.Date, validation.Required),
		validation.Field(&t.Payee, validation.RuneLength(0, PayeeMaxLength)),
		validation.Field(&t.Status, validation.By(validStatus)),
		validation.Field(&t.ExternalID, validation.RuneLength(0, ExternalIDMaxLength)),
		validation.Field(&t.Tags),
		validation.Field(&t.Notes, validation.RuneLength(0, NotesMaxLength)),
	))
}

// InsertPayload strips server-managed fields; fields with no value are sent as null
func (t Transaction) InsertPayload() (map[string]any, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return Encode(t, EncodeOptions{Exclude: ServerManagedFields})
}

// UpdatePayload strips server-managed fields and every field with no value
func (t Transaction) UpdatePayload() (map[string]any, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return Encode(t, EncodeOptions{Exclude: ServerManagedFields, ExcludeNone: true})
}

// DecodeTransaction parses and validates a single transaction.
// A missing status defaults to uncleared; an explicit null stays nil.
func DecodeTransaction(raw []byte) (Transaction, error) {
	return decodeOne("transaction", raw, func(t *Transaction) {
		t.Status = StatusPtr(TransactionStatusUncleared)
	})
}

// DecodeTransactions parses and validates a list of transactions
func DecodeTransactions(raw []byte) ([]Transaction, error) {
	return decodeList("transaction", raw, DecodeTransaction)
}

// TransactionData is the flat write model for creating or updating a
// transaction. References are plain identifiers and absent fields are not sent.
type TransactionData struct {
	Date        string             `json:"date,omitempty"`
	Amount      *decimal.Decimal   `json:"amount,omitempty"`
	Payee       *string            `json:"payee,omitempty"`
	Currency    *string            `json:"currency,omitempty"`
	Status      *TransactionStatus `json:"status,omitempty"`
	CategoryID  *int64             `json:"category_id,omitempty"`
	AssetID     *int64             `json:"asset_id,omitempty"`
	RecurringID *int64             `json:"recurring_id,omitempty"`
	ExternalID  *string            `json:"external_id,omitempty"`
	Tags        *string            `json:"tags,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
}

// NewTransactionData creates transaction data with its required fields set
func NewTransactionData(date string, amount decimal.Decimal) TransactionData {
	return TransactionData{
		Date:   date,
		Amount: &amount,
	}
}

// Validate checks the data for an insert: date and amount are required
func (d TransactionData) Validate() error {
	return newValidationError("transaction data", validation.ValidateStruct(&d, d.rules(true)...))
}

// ValidatePartial checks the data for an update, where every field is optional
func (d TransactionData) ValidatePartial() error {
	return newValidationError("transaction data", validation.ValidateStruct(&d, d.rules(false)...))
}

func (d *TransactionData) rules(requireCore bool) []*validation.FieldRules {
	date := validation.Field(&d.Date)
	amount := validation.Field(&d.Amount)
	if requireCore {
		date = validation.Field(&d.Date, validation.Required)
		amount = validation.Field(&d.Amount, validation.NotNil)
	}
	return []*validation.FieldRules{
		date,
		amount,
		validation.Field(&d.Payee, validation.RuneLength(0, PayeeMaxLength)),
		validation.Field(&d.Status, validation.By(validStatus)),
		validation.Field(&d.ExternalID, validation.RuneLength(0, ExternalIDMaxLength)),
		validation.Field(&d.Notes, validation.RuneLength(0, NotesMaxLength)),
	}
}

// InsertPayload returns the data as sent in an insert
func (d TransactionData) InsertPayload() (map[string]any, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return Encode(d, EncodeOptions{})
}

// UpdatePayload returns the data as sent in an update
func (d TransactionData) UpdatePayload() (map[string]any, error) {
	if err := d.ValidatePartial(); err != nil {
		return nil, err
	}
	return Encode(d, EncodeOptions{})
}
