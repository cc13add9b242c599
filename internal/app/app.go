package app

import (
	"log/slog"
	"os"

	"github.com/holiman/uint256"

	"isincodec/internal/crypto"
)

// App carries the validated config and the logger built from it.
type App struct {
	Config
	Log *slog.Logger
}

// New fills defaults into cfg and builds the logger.
func New(cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Format == "" {
		cfg.Format = FormatDec
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Err == nil {
		cfg.Err = os.Stderr
	}
	return &App{
		Config: cfg,
		Log:    newLogger(cfg.Err, cfg.Verbose),
	}, nil
}

// FormatValue renders v in the configured format.
func (a *App) FormatValue(v *uint256.Int) string {
	switch a.Format {
	case FormatHex:
		return v.Hex()
	case FormatWord:
		return crypto.WordHex(v)
	default:
		return v.Dec()
	}
}
