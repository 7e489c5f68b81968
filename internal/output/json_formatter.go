package output

import (
	"github.com/goccy/go-json"

	"github.com/sajidZ-904/LDSCO-Task/internal/domain"
)

// JSONFormatter serializes the projection report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
