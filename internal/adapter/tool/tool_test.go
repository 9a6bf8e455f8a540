package tool

import "log/slog"

func newTestLogger() *slog.Logger { return slog.Default() }
