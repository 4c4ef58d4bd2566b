package internal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveAPIKey(t *testing.T) {
	tests := []struct {
		name      string
		explicit  string
		env       Env
		want      string
		expectErr bool
	}{
		{"Explicit Wins", "explicit-key", MapEnv(map[string]string{APIKeyEnvVar: "env-key"}), "explicit-key", false},
		{"Falls Back To Env", "", MapEnv(map[string]string{APIKeyEnvVar: "env-key"}), "env-key", false},
		{"Env Missing", "", MapEnv(map[string]string{}), "", true},
		{"Env Empty", "", MapEnv(map[string]string{APIKeyEnvVar: ""}), "", true},
		{"Env Blank", "", MapEnv(map[string]string{APIKeyEnvVar: "   "}), "", true},
		{"Nil Env", "", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveAPIKey(tt.explicit, tt.env)
			if tt.expectErr {
				if !errors.Is(err, ErrMissingAPIKey) {
					t.Errorf("Expected ErrMissingAPIKey, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error but got: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveAPIKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrMissingAPIKeyMessage(t *testing.T) {
	want := "The environment variable LUNCHMONEY_API_KEY must be provided."
	if ErrMissingAPIKey.Error() != want {
		t.Errorf("Expected %q, got %q", want, ErrMissingAPIKey.Error())
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("Expected base URL %s, got %s", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.APIKey != "" {
		t.Errorf("Expected no API key, got %q", cfg.APIKey)
	}
	if _, err := ResolveAPIKey(cfg.APIKey, cfg.Env); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Expected key resolution to fail, got %v", err)
	}
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "env-key")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("Expected API key from environment, got %q", cfg.APIKey)
	}
	key, err := ResolveAPIKey("", cfg.Env)
	if err != nil || key != "env-key" {
		t.Errorf("ResolveAPIKey() = %q, %v", key, err)
	}
}

func TestLoadConfig_DotEnv(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "")
	os.Unsetenv(APIKeyEnvVar)

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(APIKeyEnvVar+"=dotenv-key\n"), 0600); err != nil {
		t.Fatalf("Failed to write dotenv file: %v", err)
	}

	cfg, err := LoadConfig(filepath.Join(dir, "missing.env"), path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.APIKey != "dotenv-key" {
		t.Errorf("Expected API key from dotenv file, got %q", cfg.APIKey)
	}
}
