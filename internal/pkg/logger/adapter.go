package logger

import "token_entities/internal/app/port"

// slogAdapter routes port.Logger calls to the package-level functions,
// so services log through whatever backend InitSlog/InitZap installed.
type slogAdapter struct{}

// NewSlogAdapter returns a port.Logger backed by the global logger.
func NewSlogAdapter() port.Logger {
	return slogAdapter{}
}

func (slogAdapter) Info(msg string, args ...any) { Info(msg, args...) }
func (slogAdapter) Debug(msg string, args ...any) { Debug(msg, args...) }
func (slogAdapter) Warn(msg string, args ...any) { Warn(msg, args...) }
func (slogAdapter) Error(msg string, args ...any) { Error(msg, args...) }
