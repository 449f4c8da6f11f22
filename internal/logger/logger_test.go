package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize_ValidLevels(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		t.Run(lvl, func(t *testing.T) {
			err := Initialize(lvl)
			assert.NoError(t, err, "expected no error for level %s", lvl)
			assert.IsType(t, &zap.SugaredLogger{}, Log)
			assert.NotPanics(t, func() {
				Log.Infow("test log", "level", lvl)
			})
		})
	}
}

func TestInitialize_InvalidLevel(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	err := Initialize("not-a-level")
	assert.Error(t, err)
}

func TestFromContext(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	t.Run("falls back to global logger", func(t *testing.T) {
		assert.Same(t, Log, FromContext(context.Background()))
	})

	t.Run("returns request scoped logger", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-1")
		l := FromContext(ctx)
		assert.NotNil(t, l)
		assert.NotSame(t, Log, l)
	})
}

func TestWith_KeepsRequestFields(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	core, logs := observer.New(zap.InfoLevel)
	Log = zap.New(core).Sugar()

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = With(ctx, "user_id", "u-1")
	FromContext(ctx).Info("hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "u-1", fields["user_id"])
}
