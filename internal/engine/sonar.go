package engine

import (
	"github.com/sells-group/advisor-cli/pkg/perplexity"
)

// SonarID identifies the Perplexity-backed engine.
const SonarID = "sonar"

// NewSonarEngine builds the Perplexity-backed engine. Availability tracks
// whether an API key is configured.
func NewSonarEngine(client perplexity.Client, configured bool) Engine {
	return &completionEngine{
		id:        SonarID,
		name:      "Perplexity Sonar Analysis",
		available: func() bool { return configured },
		complete:  client.Complete,
	}
}
