package output

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"fansite/internal/model"
)

// Result file names inside the output directory
const (
	HostsFile     = "hosts.txt"
	ResourcesFile = "resources.txt"
	HoursFile     = "hours.txt"
	BlockedFile   = "blocked.txt"
)

// WriteAll renders the four result files of report into dir, creating it
// when missing. Existing files are truncated.
func WriteAll(dir string, report *model.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	files := []struct {
		name  string
		lines []string
	}{
		{HostsFile, rankedLines(report.Hosts)},
		{ResourcesFile, rankedLines(report.Resources)},
		{HoursFile, rankedLines(report.Hours)},
		{BlockedFile, report.Blocked},
	}

	for _, f := range files {
		if err := writeLines(filepath.Join(dir, f.name), f.lines); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.name, err)
		}
	}
	return nil
}

// rankedLines renders entries as key,metric rows
func rankedLines(entries []model.RankedEntry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Key+","+strconv.FormatInt(e.Metric, 10))
	}
	return lines
}

func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}
