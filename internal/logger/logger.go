// Package logger builds the zap logger shared by the server and the consumer.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON production logger when prod is true and a colored
// development logger otherwise.
func New(prod bool) (*zap.Logger, error) {
	if prod {
		return zap.NewProductionConfig().Build()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg.Build()
}
