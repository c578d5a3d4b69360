/*
Copyright 2026 The GPU Cost Explorer Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package logging provides structured logging setup for the engine.
//
// Loggers are logr.Logger instances backed by zap. Verbosity follows the
// convention that V(0) is always-on operational output, V(DEBUG) is detail
// useful when diagnosing a single estimation, and V(TRACE) is per-candidate
// noise (one line per rejected offering and similar).
package logging

import (
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels used with logger.V().
const (
	DEBUG = 1
	TRACE = 2
)

// NewLogger creates a production logger writing JSON to stderr.
// The verbosity argument is the maximum enabled V level.
func NewLogger(verbosity int) logr.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		// zapr maps logr V levels onto negative zap levels.
		zap.NewAtomicLevelAt(zapcore.Level(-verbosity)),
	)
	return zapr.NewLogger(zap.New(core))
}

// NewTestLogger creates a development logger for use in tests. Output goes to
// stderr with console encoding so failures are readable under `go test -v`.
func NewTestLogger() logr.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-TRACE))
	zl, err := cfg.Build()
	if err != nil {
		// Build only fails on invalid config.
		panic(err)
	}
	return zapr.NewLogger(zl)
}

// NewNopLogger returns a logger that discards everything. Useful as a default
// when callers do not care about engine diagnostics.
func NewNopLogger() logr.Logger {
	return logr.Discard()
}
