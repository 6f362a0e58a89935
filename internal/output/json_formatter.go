package output

import (
	"encoding/json"

	"github.com/finplan/finproject/internal/domain"
)

// JSONFormatter serializes the full projection result, provenance included,
// as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
