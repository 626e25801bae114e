// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package logging builds the zap logger used by eitherctl.
package logging

import (
	"os"
	"time"

	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// EnvironmentVar selects the production encoder when set to "production".
const EnvironmentVar = "GO_ENVIRONMENT"

func insideContainer() bool {
	return os.Getenv(EnvironmentVar) == "production"
}

// New returns a logger writing to stderr at the given level.
// Development builds use a colored console encoder; production builds use JSON.
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errs.New("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	if insideContainer() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	logger, err := cfg.Build()
	if err != nil {
		return nil, errs.New("could not create logger: %w", err)
	}
	return logger, nil
}
