package testfixtures

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// Initialize test environment
func init() {
	// Ascii profile keeps golden files free of color codes across terminals.
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 80
	TestTermHeight = 30
)

// Flag for updating golden files (shared across all tests)
var UpdateGolden = flag.Bool("update", false, "update golden files")

// CompareGolden compares actual output with golden file.
// Use -update flag to regenerate golden files.
func CompareGolden(t *testing.T, goldenPath, actual string) {
	t.Helper()

	if *UpdateGolden {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0755); err != nil {
			t.Fatalf("failed to create testdata directory: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(actual), 0644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", goldenPath, err)
		}
		t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("golden file %s does not exist. Run with -update to create it.", goldenPath)
		}
		t.Fatalf("failed to read golden file %s: %v", goldenPath, err)
	}

	if actual != string(expected) {
		t.Errorf("output does not match golden file %s\n\nExpected:\n%s\n\nActual:\n%s",
			goldenPath, string(expected), actual)
	}
}

// GoldenPath builds a path to a golden file in the testdata directory.
func GoldenPath(filename string) string {
	return filepath.Join("testdata", filename)
}

// RenderLines draws into a fresh w x h buffer and returns its rows with
// styling stripped.
func RenderLines(w, h int, draw func(scr uv.Screen, area uv.Rectangle)) []string {
	canvas := uv.NewScreenBuffer(w, h)
	draw(canvas, canvas.Bounds())
	plain := strings.ReplaceAll(ansi.Strip(canvas.Render()), "\r", "")
	return strings.Split(plain, "\n")
}

// RowContaining returns the index of the first row containing substr, or -1.
func RowContaining(rows []string, substr string) int {
	for i, row := range rows {
		if strings.Contains(row, substr) {
			return i
		}
	}
	return -1
}
