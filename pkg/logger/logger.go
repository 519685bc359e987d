package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `yaml:"level" envconfig:"LOG_LEVEL"`
	Sink     string        `yaml:"sink" envconfig:"LOG_SINK"`
}

// NewLogger builds a json zap logger writing to stdout, or to Sink when it is set.
func NewLogger(cfg Log, name string) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		openSink(cfg.Sink, os.Stderr),
		zap.NewAtomicLevelAt(cfg.LogLevel),
	)
	return zap.New(core, zap.AddCaller()).Named(name)
}

// openSink falls back to stdout when the sink cannot be opened and says so on errOut.
func openSink(sink string, errOut io.Writer) zapcore.WriteSyncer {
	if sink == "" {
		return zapcore.Lock(os.Stdout)
	}
	ws, _, err := zap.Open(sink)
	if err != nil {
		fmt.Fprintf(errOut, "logger: open sink %q: %v; logging to stdout\n", sink, err)
		return zapcore.Lock(os.Stdout)
	}
	return ws
}
