package models

// TransactionStatus defines the status of a transaction
type TransactionStatus string

const (
	// TransactionStatusCleared represents a reviewed transaction
	TransactionStatusCleared TransactionStatus = "cleared"

	// TransactionStatusUncleared represents a transaction awaiting review
	TransactionStatusUncleared TransactionStatus = "uncleared"

	// TransactionStatusRecurring represents a transaction matched to a recurring item
	TransactionStatusRecurring TransactionStatus = "recurring"

	// TransactionStatusRecurringSuggested represents a suggested recurring match
	TransactionStatusRecurringSuggested TransactionStatus = "recurring_suggested"
)

// TransactionStatuses lists every known status
var TransactionStatuses = []TransactionStatus{
	TransactionStatusCleared,
	TransactionStatusUncleared,
	TransactionStatusRecurring,
	TransactionStatusRecurringSuggested,
}

// ParseTransactionStatus maps a literal to its status. Matching is case-sensitive.
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	for _, status := range TransactionStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", ErrInvalidStatus
}

// IsValid reports whether s is one of the known statuses
func (s TransactionStatus) IsValid() bool {
	_, err := ParseTransactionStatus(string(s))
	return err == nil
}

func (s TransactionStatus) String() string {
	return string(s)
}

// StatusPtr returns a pointer to a status
func StatusPtr(s TransactionStatus) *TransactionStatus {
	return &s
}

// validStatus is an ozzo-validation rule for *TransactionStatus fields.
// A nil pointer is "no value" and passes; the empty literal does not.
func validStatus(value interface{}) error {
	s, ok := value.(*TransactionStatus)
	if !ok || s == nil {
		return nil
	}
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}
