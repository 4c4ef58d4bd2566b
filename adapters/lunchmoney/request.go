package lunchmoney

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ZanzyTHEbar/lunchmoney-go/interfaces"
	"github.com/ZanzyTHEbar/lunchmoney-go/internal"
)

// maxErrorBody bounds how much of a failed response body ends up in an error message
const maxErrorBody = 512

// makeRequest sends one authenticated request and returns the payload under
// key, or the whole body when key is empty.
func (c *Client) makeRequest(ctx context.Context, method, path string, query url.Values, body any, key string) (json.RawMessage, error) {
	if c.closed.Load() {
		return nil, interfaces.NewTransportError(0, "client is closed", nil)
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, interfaces.NewClientError(interfaces.ErrorTypeValidation, "failed to encode request body", err)
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.baseURL.ResolveReference(&url.URL{Path: path})
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return nil, interfaces.NewTransportError(0, "failed to create request", err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, edit := range c.editors {
		if err := edit(ctx, req); err != nil {
			return nil, interfaces.NewTransportError(0, "request editor failed", err)
		}
	}

	requestID := internal.GenerateRequestID()
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnf("Request %s %s failed (request_id=%s): %v", method, path, requestID, err)
		return nil, interfaces.NewTransportError(0, fmt.Sprintf("%s %s failed", method, path), err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, interfaces.NewTransportError(resp.StatusCode, "failed to read response body", err)
	}
	c.logger.request(requestID, method, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warnf("Request %s %s returned status %d (request_id=%s)", method, path, resp.StatusCode, requestID)
		return nil, interfaces.NewTransportError(resp.StatusCode,
			fmt.Sprintf("API request failed: %s %s: %s", method, path, truncate(payload, maxErrorBody)), nil)
	}

	data, err := extractPayload(payload, key)
	if err != nil && interfaces.IsAPIError(err) {
		c.logger.Warnf("Request %s %s reported an error (request_id=%s): %v", method, path, requestID, err)
	}
	return data, err
}

// extractPayload checks a 2xx body for an embedded "error" and unwraps key.
func extractPayload(body []byte, key string) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return nil, interfaces.NewClientError(interfaces.ErrorTypeValidation, "response body is not valid JSON", nil)
	}

	if len(trimmed) == 0 || trimmed[0] != '{' {
		if key != "" {
			return nil, interfaces.NewClientError(interfaces.ErrorTypeValidation,
				fmt.Sprintf("expected a JSON object holding %q", key), nil)
		}
		return json.RawMessage(trimmed), nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, interfaces.NewClientError(interfaces.ErrorTypeValidation, "malformed response body", err)
	}

	if raw, ok := envelope["error"]; ok {
		return nil, interfaces.NewAPIError(errorMessages(raw)...)
	}

	if key == "" {
		return json.RawMessage(trimmed), nil
	}
	raw, ok := envelope[key]
	if !ok {
		return nil, interfaces.NewClientError(interfaces.ErrorTypeValidation,
			fmt.Sprintf("response is missing %q", key), nil)
	}
	return raw, nil
}

// errorMessages reads the "error" value, a string or a list of strings.
func errorMessages(raw json.RawMessage) []string {
	if string(raw) == "null" {
		return []string{"unknown error"}
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}
	}

	var many []any
	if err := json.Unmarshal(raw, &many); err == nil {
		messages := make([]string, 0, len(many))
		for _, m := range many {
			if s, ok := m.(string); ok {
				messages = append(messages, s)
				continue
			}
			messages = append(messages, fmt.Sprint(m))
		}
		return messages
	}

	return []string{strings.TrimSpace(string(raw))}
}

// truncate shortens body to at most limit bytes without splitting a rune
func truncate(body []byte, limit int) string {
	s := strings.TrimSpace(string(body))
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// decodeInto unmarshals a payload into v, reporting failures as validation errors.
func decodeInto(raw json.RawMessage, v any, what string) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return interfaces.NewClientError(interfaces.ErrorTypeValidation, fmt.Sprintf("invalid %s in response", what), err)
	}
	return nil
}

func validationError(message string, err error) error {
	return interfaces.NewClientError(interfaces.ErrorTypeValidation, message, err)
}
