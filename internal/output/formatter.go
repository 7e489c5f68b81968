package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/sajidZ-904/LDSCO-Task/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *domain.ProjectionReport) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// WriteFormatted runs a formatter and writes output to a timestamped file
// with the given extension, returning the file name.
func WriteFormatted(f Formatter, report *domain.ProjectionReport, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("projection_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter, resolving aliases.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"table":       "console",
	"csv-summary": "csv",
	"json-pretty": "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}
