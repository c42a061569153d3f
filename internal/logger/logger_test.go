package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	t.Run(
		"1. development",
		func(t *testing.T) {
			l, errCr := NewLogger(false, "debug")
			require.NoError(t, errCr)
			require.True(t, l.Core().Enabled(zapcore.DebugLevel))
		},
	)

	t.Run(
		"2. production",
		func(t *testing.T) {
			l, errCr := NewLogger(true, "warn")
			require.NoError(t, errCr)
			require.False(t, l.Core().Enabled(zapcore.InfoLevel))
			require.True(t, l.Core().Enabled(zapcore.WarnLevel))
		},
	)

	t.Run(
		"3. unknown level",
		func(t *testing.T) {
			l, errCr := NewLogger(false, "loud")
			require.Error(t, errCr)
			require.Nil(t, l)
		},
	)
}
