package funcall

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	fn := WithLogging(logger)("greet", constFunc("hi"))
	res, err := fn(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "hi", res)
	assert.Contains(t, buf.String(), "function start")
	assert.Contains(t, buf.String(), "function end")
	assert.Contains(t, buf.String(), "greet")

	buf.Reset()
	failing := WithLogging(logger)("greet", func(context.Context, map[string]any) (any, error) {
		return nil, errors.New("nope")
	})
	_, err = failing(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "function error")
	assert.Contains(t, buf.String(), "nope")
}

func TestWithLogging_NilLoggerDefaults(t *testing.T) {
	fn := WithLogging(nil)("f", constFunc(nil))
	_, err := fn(context.Background(), nil)
	require.NoError(t, err)
}

func TestWithRecovery(t *testing.T) {
	fn := WithRecovery()("f", func(context.Context, map[string]any) (any, error) {
		panic("middleware caught me")
	})
	res, err := fn(context.Background(), nil)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "panic: middleware caught me")
}

func TestWithRecovery_PassThrough(t *testing.T) {
	fn := WithRecovery()("f", constFunc("fine"))
	res, err := fn(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "fine", res)
}

func TestWithTimeout(t *testing.T) {
	fn := WithTimeout(10*time.Millisecond)("f", func(ctx context.Context, _ map[string]any) (any, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
			return "too late", nil
		}
	})
	_, err := fn(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWithTimeout_ZeroDisabled(t *testing.T) {
	fn := WithTimeout(0)("f", func(ctx context.Context, _ map[string]any) (any, error) {
		_, hasDeadline := ctx.Deadline()
		return hasDeadline, nil
	})
	res, err := fn(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, false, res)
}

func TestMiddlewareChainOrder(t *testing.T) {
	var order []string
	tag := func(label string) Middleware {
		return func(_ string, next Func) Func {
			return func(ctx context.Context, params map[string]any) (any, error) {
				order = append(order, label)
				return next(ctx, params)
			}
		}
	}

	reg := NewRegistry()
	reg.Use(tag("outer"), tag("inner"))
	require.NoError(t, reg.Register("f", constFunc(nil), testutilDefinition("f")))

	fn, ok := reg.Lookup("f")
	require.True(t, ok)
	_, err := fn(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, order)
}
