package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asyncx"
	"github.com/dmitrymomot/asyncx/core/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("caller", slog.String("function", "f"), slog.Int("line", 2))
	require.Equal(t, "caller", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "function", g[0].Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestID(t *testing.T) {
	t.Parallel()
	attr := logger.ID("task_id", "abc")
	require.Equal(t, "task_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.Any())

	assert.True(t, logger.ID("task_id", nil).Equal(slog.Attr{}))
}

func TestPrimitiveAndRunningAndPriority(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "semaphore", logger.Primitive("semaphore").Value.String())
	assert.Equal(t, int64(3), logger.Running(3).Value.Int64())
	assert.Equal(t, int64(50), logger.Priority(50).Value.Int64())
}

func TestCallerFrom(t *testing.T) {
	t.Parallel()
	assert.True(t, logger.CallerFrom(nil).Equal(slog.Attr{}))

	ci := &asyncx.CallerInfo{Function: "pkg.Fn", File: "pkg/file.go", Line: 42}
	attr := logger.CallerFrom(ci)
	require.Equal(t, "caller", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 3)
	assert.Equal(t, "pkg.Fn", g[0].Value.Any())
}

func TestOutcome(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "timeout", logger.Outcome("timeout").Value.String())
}
