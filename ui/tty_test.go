package ui_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/samsonr/cli/ui"
	"github.com/stretchr/testify/require"
)

func TestIsTerminalWriter(t *testing.T) {
	require.False(t, ui.IsTerminalWriter(&bytes.Buffer{}))

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()
	require.False(t, ui.IsTerminalWriter(w))

	f, err := os.Create(t.TempDir() + "/deploy.log")
	require.NoError(t, err)
	defer f.Close()
	require.False(t, ui.IsTerminalWriter(f))
}
