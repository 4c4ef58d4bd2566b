package lunchmoney

import (
	"fmt"
	"net/url"

	"github.com/oapi-codegen/runtime"

	"github.com/ZanzyTHEbar/lunchmoney-go/domain/models"
)

// queryParam is one optional query parameter; Value is nil when unset
type queryParam struct {
	Name  string
	Value any
}

// transactionQuery builds the listing query. Unset filters are dropped
// before styling so they never reach the server, not even as empty values.
func transactionQuery(filter models.TransactionFilter) (url.Values, error) {
	params := []queryParam{
		{"tag_id", deref(filter.TagID)},
		{"recurring_id", deref(filter.RecurringID)},
		{"plaid_account_id", deref(filter.PlaidAccountID)},
		{"category_id", deref(filter.CategoryID)},
		{"asset_id", deref(filter.AssetID)},
		{"start_date", deref(filter.StartDate)},
		{"end_date", deref(filter.EndDate)},
		{"debit_as_negative", deref(filter.DebitAsNegative)},
		{"offset", deref(filter.Offset)},
		{"limit", deref(filter.Limit)},
	}

	set := params[:0]
	for _, p := range params {
		if p.Value != nil {
			set = append(set, p)
		}
	}
	return styleQuery(set)
}

// styleQuery encodes parameters with form style, as generated OpenAPI clients do
func styleQuery(params []queryParam) (url.Values, error) {
	values := url.Values{}
	for _, p := range params {
		fragment, err := runtime.StyleParamWithLocation("form", true, p.Name, runtime.ParamLocationQuery, p.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to style query parameter %s: %w", p.Name, err)
		}
		parsed, err := url.ParseQuery(fragment)
		if err != nil {
			return nil, fmt.Errorf("failed to parse query parameter %s: %w", p.Name, err)
		}
		for k, vs := range parsed {
			for _, v := range vs {
				values.Add(k, v)
			}
		}
	}
	return values, nil
}

// pathParam styles a path segment with simple style
func pathParam(name string, value any) (string, error) {
	segment, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
	if err != nil {
		return "", fmt.Errorf("failed to style path parameter %s: %w", name, err)
	}
	return segment, nil
}

// deref returns *p, or an untyped nil when p is nil
func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
