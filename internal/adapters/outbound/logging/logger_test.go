package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/logging"
)

func TestNew_Levels(t *testing.T) {
	quiet, err := logging.New(logging.Options{})
	require.NoError(t, err)
	assert.False(t, quiet.Core().Enabled(zapcore.DebugLevel), "debug disabled by default")
	assert.True(t, quiet.Core().Enabled(zapcore.WarnLevel), "warnings enabled")

	verbose, err := logging.New(logging.Options{Verbose: true})
	require.NoError(t, err)
	assert.True(t, verbose.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tripinvoice.log")
	log, err := logging.New(logging.Options{Verbose: true, Path: path})
	require.NoError(t, err)

	log.Debug("row added")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "row added")
	assert.Contains(t, string(data), "tripinvoice")
}
