// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip building the record entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. It is initialized with the package
// variables, before any init function runs.
var loggerPtr = func() *atomic.Pointer[slog.Logger] {
	p := new(atomic.Pointer[slog.Logger])
	p.Store(newNopLogger())
	return p
}()

// SetLogger configures the logger used by hwy.
// By default hwy produces no log output. Pass nil to restore that.
//
// Log levels used by hwy:
//   - [slog.LevelDebug]: the backend the package was built for, logged when a
//     logger is attached
//   - [slog.LevelWarn]: the CPU lacks the instruction set of that backend
//   - [slog.LevelError]: a contract violation, logged just before the panic
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	l.Debug("hwy: backend",
		slog.String("backend", CurrentName()),
		slog.Int("width", CurrentWidth()))
	if !HardwareSupported() {
		l.Warn("hwy: CPU lacks the instruction set this binary was built for",
			slog.String("backend", CurrentName()))
	}
}

// Logger returns the current logger used by hwy.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
