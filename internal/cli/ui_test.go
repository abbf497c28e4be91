package cli

import (
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and
// returns everything it printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

func TestPrintKeyValue(t *testing.T) {
	out := captureStdout(t, func() {
		printKeyValue("depth", "6")
	})
	if !strings.Contains(out, "depth") {
		t.Errorf("output %q should contain the key", out)
	}
	if !strings.Contains(out, "6") {
		t.Errorf("output %q should contain the value", out)
	}
}

func TestPrintWarning(t *testing.T) {
	out := captureStdout(t, func() {
		printWarning("skipped %d entries", 2)
	})
	if !strings.Contains(out, iconWarning) {
		t.Errorf("output %q should carry the warning icon", out)
	}
	if !strings.Contains(out, "skipped 2 entries") {
		t.Errorf("output %q should contain the formatted message", out)
	}
}

func TestPrintColorCountsSkipsZeroes(t *testing.T) {
	out := captureStdout(t, func() {
		printColorCounts(map[string]int{"grey": 3, "red": 1})
	})
	if !strings.Contains(out, "3 grey") || !strings.Contains(out, "1 red") {
		t.Errorf("output %q should list non-zero colors", out)
	}
	if strings.Contains(out, "green") || strings.Contains(out, "yellow") {
		t.Errorf("output %q should skip colors with no edges", out)
	}

	out = captureStdout(t, func() {
		printColorCounts(map[string]int{})
	})
	if out != "" {
		t.Errorf("output %q should be empty when there are no edges", out)
	}
}
