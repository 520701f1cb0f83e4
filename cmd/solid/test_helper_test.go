// test_helper_test.go
package main

import (
	"bytes"
	"testing"
)

//
// -----------------------------------------------------------------------------
// Small helpers
// -----------------------------------------------------------------------------

// runCaptured runs run() with fresh buffers and returns the exit code plus
// captured stdout/stderr.
func runCaptured(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}
