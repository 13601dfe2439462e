package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultReportPath is where Analyze writes its report unless told otherwise.
const DefaultReportPath = "problem-files.txt"

// WriteReport writes one problem per line. An empty report is still written.
func WriteReport(path string, problems []Problem) error {
	var b strings.Builder
	for _, p := range problems {
		b.WriteString(p.String())
		b.WriteString("\n")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
