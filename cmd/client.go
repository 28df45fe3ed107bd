package cmd

import (
	"net/http"
	"net/url"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fritzprix/fred-mcp/internal/config"
	"github.com/fritzprix/fred-mcp/internal/fred"
)

// resolveAPIKey returns the key from --api-key, falling back to FRED_API_KEY.
func resolveAPIKey() string {
	if apiKeyFlag != "" {
		return apiKeyFlag
	}
	return os.Getenv("FRED_API_KEY")
}

// newLogger builds a stderr zap logger. Debug level with --verbose.
func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// loadConfig reads fred-mcp.json from the working directory.
func loadConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.Load(cwd)
}

// newFredClient builds the API client from config, flags, and environment.
func newFredClient() (*fred.Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, nil, err
	}

	httpClient := &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}

	opts := []fred.Option{}
	if verbose {
		opts = append(opts, fred.WithLogger(newLogger()))
	}

	client, err := fred.NewClient(httpClient, base, resolveAPIKey(), opts...)
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}
