package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGet(t *testing.T) {
	logger1 := Get()
	require.NotNil(t, logger1)

	logger2 := Get()
	assert.Same(t, logger1, logger2)
}

func TestNew(t *testing.T) {
	l := New(zapcore.WarnLevel, true)
	require.NotNil(t, l)
	assert.False(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Desugar().Core().Enabled(zapcore.ErrorLevel))
}

func TestFromCtx(t *testing.T) {
	assert.Same(t, Get(), FromCtx(context.Background()))

	ctx := WithCtx(context.Background(), Get())
	assert.Same(t, Get(), FromCtx(ctx))

	customLogger := Get().With("custom", "value")
	ctxWithCustomLogger := WithCtx(ctx, customLogger)
	assert.Same(t, customLogger, FromCtx(ctxWithCustomLogger))

	assert.NotSame(t, customLogger, FromCtx(ctxWithCustomLogger, "path", "a.mkv"))
}

func TestWithSameLogger(t *testing.T) {
	ctx := context.Background()
	logger := Get()

	newCtx := WithCtx(ctx, logger)

	assert.Same(t, newCtx, WithCtx(newCtx, logger))
}
