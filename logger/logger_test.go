package logger

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, h.Enabled(context.Background(), level), "level %v should be disabled", level)
	}
	assert.NoError(t, h.Handle(context.Background(), slog.Record{}))
	assert.IsType(t, nopHandler{}, h.WithAttrs([]slog.Attr{slog.String("k", "v")}))
	assert.IsType(t, nopHandler{}, h.WithGroup("group"))
}

func TestGet_DefaultSilent(t *testing.T) {
	l := Get()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestSet(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Get().Debug("fallback tier", "tier", 2)
	assert.Contains(t, buf.String(), "fallback tier")
	assert.Contains(t, buf.String(), "tier=2")

	Set(nil)
	require.NotNil(t, Get())
	assert.False(t, Get().Enabled(context.Background(), slog.LevelDebug))
}

func TestSet_Concurrent(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				Set(slog.Default())
			} else {
				Get().Debug("concurrent", "i", i)
			}
		}(i)
	}
	wg.Wait()
	assert.NotNil(t, Get())
}
