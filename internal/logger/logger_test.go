package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFromContext(t *testing.T) {
	t.Run("returns the attached logger", func(t *testing.T) {
		l := zap.NewNop().Sugar()
		ctx := WithContext(context.Background(), l)
		require.Same(t, l, FromContext(ctx))
	})

	t.Run("falls back to the global logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
		require.Same(t, zap.S(), FromContext(context.Background()))
	})
}

func TestNew(t *testing.T) {
	t.Run("dev logs debug", func(t *testing.T) {
		t.Setenv(EnvKey, "dev")
		l := New().Desugar()
		require.True(t, l.Core().Enabled(zap.DebugLevel))
	})

	t.Run("production starts at info", func(t *testing.T) {
		t.Setenv(EnvKey, "prod")
		l := New().Desugar()
		require.False(t, l.Core().Enabled(zap.DebugLevel))
		require.True(t, l.Core().Enabled(zap.InfoLevel))
	})
}
