package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "myapp", false)

	logger.Debug("hidden detail")
	logger.Info("hidden info")
	require.Empty(t, buf.String())

	logger.Warn("visible warning", "command", "echo")
	require.Contains(t, buf.String(), "visible warning")
	require.Contains(t, buf.String(), "command=echo")
	require.Contains(t, buf.String(), "myapp")
}

func TestNewDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "", true)

	logger.Debug("dispatching", "args", 2)
	require.Contains(t, buf.String(), "dispatching")
}

func TestInitSetsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Init(&buf, "", true)

	slog.Debug("from default")
	require.Contains(t, buf.String(), "from default")
}
