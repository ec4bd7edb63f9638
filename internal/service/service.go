// Package service holds the use cases behind the HTTP and CLI surfaces:
// content reads and writes, the contributor form flow and the form relay.
package service

import (
	"errors"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/bwdtc/bridgewater-dems/internal/logger"
)

var (
	ErrUnknownSection  = errors.New("unknown content section")
	ErrInvalidContent  = errors.New("invalid content document")
	ErrArchiveDisabled = errors.New("submission archive is not configured")
	ErrNotFound        = errors.New("not found")
)

var tracer = otel.Tracer("github.com/bwdtc/bridgewater-dems/internal/service")

func orGlobal(log *zap.Logger) *zap.Logger {
	if log == nil {
		return logger.Get()
	}
	return log
}
