package lunchmoney

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ZanzyTHEbar/lunchmoney-go/interfaces"
	"github.com/ZanzyTHEbar/lunchmoney-go/internal"
)

const (
	// ComponentName for logging
	ComponentName internal.Component = internal.ComponentLunchMoney
)

// HTTPClient interface for dependency injection and testing
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestEditorFn can modify an outgoing request after the client has set its headers
type RequestEditorFn func(ctx context.Context, req *http.Request) error

// LoggerAdapter adapts the internal.Logger to provide simpler logging methods
type LoggerAdapter struct {
	logger *internal.Logger
}

// NewLoggerAdapter creates a new logger adapter
func NewLoggerAdapter(logger *internal.Logger) *LoggerAdapter {
	if logger == nil {
		logger = internal.GetLogger()
	}
	return &LoggerAdapter{
		logger: logger,
	}
}

// Debugf logs a formatted debug message
func (l *LoggerAdapter) Debugf(format string, args ...interface{}) {
	l.logger.Debug(ComponentName, format, args...)
}

// Warnf logs a formatted warning message
func (l *LoggerAdapter) Warnf(format string, args ...interface{}) {
	l.logger.Warn(ComponentName, format, args...)
}

// request logs one finished exchange as a structured event
func (l *LoggerAdapter) request(requestID, method, path string, status int, elapsed time.Duration) {
	l.logger.Event(internal.LogLevelDebug, ComponentName).
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("elapsed", elapsed).
		Msg("API request completed")
}

// Config holds the configuration for the Lunch Money client
type Config struct {
	// APIKey takes precedence over the environment
	APIKey string

	// Env resolves LUNCHMONEY_API_KEY when APIKey is empty; defaults to the process environment
	Env internal.Env

	BaseURL        string
	Timeout        time.Duration
	UserAgent      string
	Logger         *internal.Logger
	HTTPClient     HTTPClient
	RequestEditors []RequestEditorFn
}

// Client implements interfaces.LunchMoneyClient.
// It holds no mutable state besides its closed flag, so concurrent calls are
// as safe as the underlying HTTPClient.
type Client struct {
	baseURL    *url.URL
	authHeader string
	userAgent  string
	httpClient HTTPClient
	editors    []RequestEditorFn
	logger     *LoggerAdapter

	closed    atomic.Bool
	closeOnce sync.Once
}

var _ interfaces.LunchMoneyClient = (*Client)(nil)

// NewClient creates a new Lunch Money client. It fails with a configuration
// error, before any request, when no API key can be resolved.
func NewClient(config Config) (*Client, error) {
	env := config.Env
	if env == nil {
		env = internal.OSEnv()
	}
	apiKey, err := internal.ResolveAPIKey(config.APIKey, env)
	if err != nil {
		return nil, interfaces.NewClientError(interfaces.ErrorTypeConfiguration, err.Error(), nil)
	}

	baseURL, err := parseBaseURL(config.BaseURL)
	if err != nil {
		return nil, interfaces.NewClientError(interfaces.ErrorTypeConfiguration, "invalid base URL", err)
	}

	// Use provided HTTP client or create a default one
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = internal.UserAgent()
	}

	logger := NewLoggerAdapter(config.Logger)
	logger.Debugf("Client created for %s", baseURL)

	return &Client{
		baseURL:    baseURL,
		authHeader: "Bearer " + apiKey,
		userAgent:  userAgent,
		httpClient: httpClient,
		editors:    config.RequestEditors,
		logger:     logger,
	}, nil
}

// parseBaseURL makes sure relative endpoint paths resolve beneath the base path
func parseBaseURL(raw string) (*url.URL, error) {
	if raw == "" {
		raw = internal.DefaultBaseURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}

// Close releases idle connections held by the HTTP client. It is safe to call
// more than once; requests made after Close fail with a transport error.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		if closer, ok := c.httpClient.(interface{ CloseIdleConnections() }); ok {
			closer.CloseIdleConnections()
		}
		c.logger.Debugf("Client closed")
	})
	return nil
}

// BaseURL returns the API root requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}
