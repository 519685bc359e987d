package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestOpenSink(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		sink       func(t *testing.T) string
		wantStderr string
	}{
		{
			name: "stdout by default",
			sink: func(t *testing.T) string { return "" },
		},
		{
			name: "file sink",
			sink: func(t *testing.T) string { return filepath.Join(t.TempDir(), "library.log") },
		},
		{
			name:       "unknown scheme falls back loudly",
			sink:       func(t *testing.T) string { return "nosuchscheme://log" },
			wantStderr: `logger: open sink "nosuchscheme://log"`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var stderr bytes.Buffer
			ws := openSink(tt.sink(t), &stderr)
			require.NotNil(t, ws)
			if tt.wantStderr == "" {
				require.Empty(t, stderr.String())
				return
			}
			require.Contains(t, stderr.String(), tt.wantStderr)
		})
	}
}

func TestNewLogger_WritesToFileSink(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "library.log")
	log := NewLogger(Log{LogLevel: zapcore.InfoLevel, Sink: path}, "test")
	log.Info("book created")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"book created"`)
	require.Contains(t, string(data), `"logger":"test"`)
}
