package models

// TransactionFilter narrows a transaction listing. Nil fields are left out
// of the request entirely.
type TransactionFilter struct {
	TagID           *int64
	RecurringID     *int64
	PlaidAccountID  *int64
	CategoryID      *int64
	AssetID         *int64
	StartDate       *string
	EndDate         *string
	DebitAsNegative *bool
	Offset          *int
	Limit           *int
}

// InsertOptions are the flags sent along with inserted transactions
type InsertOptions struct {
	ApplyRules        bool
	SkipDuplicates    bool
	CheckForRecurring bool
	DebitAsNegative   bool
}

// UpdateOptions are the extras sent along with a transaction update
type UpdateOptions struct {
	// Split is sent only when non-empty
	Split           []SplitData
	DebitAsNegative bool
}

// Int64Ptr returns a pointer to an int64
func Int64Ptr(i int64) *int64 {
	return &i
}

// IntPtr returns a pointer to an int
func IntPtr(i int) *int {
	return &i
}

// StringPtr returns a pointer to a string
func StringPtr(s string) *string {
	return &s
}

// BoolPtr returns a pointer to a bool
func BoolPtr(b bool) *bool {
	return &b
}
