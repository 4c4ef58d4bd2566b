package factory

import (
	"github.com/ZanzyTHEbar/lunchmoney-go/adapters/lunchmoney"
	"github.com/ZanzyTHEbar/lunchmoney-go/interfaces"
	"github.com/ZanzyTHEbar/lunchmoney-go/internal"
)

// NewLunchMoneyClient creates a Lunch Money client from loaded configuration.
// A nil logger falls back to the global one, at debug level when cfg.Debug is set.
func NewLunchMoneyClient(cfg *internal.Config, logger *internal.Logger) (interfaces.LunchMoneyClient, error) {
	if cfg == nil {
		cfg = &internal.Config{}
	}
	if logger == nil {
		logger = internal.GetLogger()
		if cfg.Debug {
			logger.SetLevel(internal.LogLevelDebug)
		}
	}

	client, err := lunchmoney.NewClient(lunchmoney.Config{
		APIKey:  cfg.APIKey,
		Env:     cfg.Env,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

// NewLunchMoneyClientFromEnv loads configuration (and any dotenv files) and builds a client
func NewLunchMoneyClientFromEnv(dotenvFiles ...string) (interfaces.LunchMoneyClient, error) {
	cfg, err := internal.LoadConfig(dotenvFiles...)
	if err != nil {
		return nil, interfaces.NewClientError(interfaces.ErrorTypeConfiguration, "failed to load configuration", err)
	}
	return NewLunchMoneyClient(cfg, nil)
}
