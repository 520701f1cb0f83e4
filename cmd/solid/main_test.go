package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// newDemoRegistry
// -----------------------------------------------------------------------------

// TestNewDemoRegistry verifies every principle is registered exactly once.
func TestNewDemoRegistry(t *testing.T) {
	t.Parallel()

	reg := newDemoRegistry()
	assert.Equal(t, []string{"dip", "isp", "lsp", "ocp", "srp"}, reg.Keys())
}

//
// -----------------------------------------------------------------------------
// run: listing and selection
// -----------------------------------------------------------------------------

// TestRun_List verifies -list prints the demo names and exits 0.
func TestRun_List(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCaptured(t, "-list")
	require.Equal(t, 0, code)
	assert.Empty(t, stderr)

	for _, name := range []string{"srp", "ocp", "lsp", "isp", "dip"} {
		assert.Contains(t, stdout, name)
	}
}

// TestRun_SingleDemo verifies running one demo by name prints only that demo.
func TestRun_SingleDemo(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCaptured(t, "ocp")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	assert.Contains(t, stdout, "== OCP:")
	assert.NotContains(t, stdout, "== SRP:")
}

// TestRun_MultipleDemos verifies demos run in the order given, separated by
// a blank line.
func TestRun_MultipleDemos(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCaptured(t, "lsp", "isp")
	require.Equal(t, 0, code)

	lspIdx := strings.Index(stdout, "== LSP:")
	ispIdx := strings.Index(stdout, "== ISP:")
	require.GreaterOrEqual(t, lspIdx, 0)
	require.Greater(t, ispIdx, lspIdx)
}

// TestRun_DefaultRunsAll verifies no arguments runs every demo.
func TestRun_DefaultRunsAll(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCaptured(t)
	require.Equal(t, 0, code, "stderr: %s", stderr)

	for _, banner := range []string{"== SRP:", "== OCP:", "== LSP:", "== ISP:", "== DIP:"} {
		assert.Contains(t, stdout, banner)
	}
}

//
// -----------------------------------------------------------------------------
// run: failure modes
// -----------------------------------------------------------------------------

// TestRun_UnknownDemo verifies an unknown name surfaces the registry error
// and the available keys, with exit code 2.
func TestRun_UnknownDemo(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCaptured(t, "grasp")
	require.Equal(t, 2, code)

	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `"grasp"`)
	assert.Contains(t, stderr, "available: dip, isp, lsp, ocp, srp")
}

// TestRun_BadFlag verifies flag parse errors exit 2.
func TestRun_BadFlag(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCaptured(t, "-nope")
	require.Equal(t, 2, code)
	assert.Contains(t, stderr, "flag provided but not defined")
}
