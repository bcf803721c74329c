package engine

import (
	"context"

	"github.com/sells-group/advisor-cli/pkg/anthropic"
)

// ClaudeID identifies the Anthropic-backed engine.
const ClaudeID = "claude"

const claudeMaxTokens = 4096

// NewClaudeEngine builds the Anthropic-backed engine. The engine is
// unavailable until an API key is configured; model selects which Claude
// model handles completions.
func NewClaudeEngine(client anthropic.Client, model string, configured bool) Engine {
	return &completionEngine{
		id:        ClaudeID,
		name:      "Claude AI Analysis",
		available: func() bool { return configured },
		complete: func(ctx context.Context, system, prompt string) (string, error) {
			resp, err := client.CreateMessage(ctx, anthropic.MessageRequest{
				Model:     model,
				MaxTokens: claudeMaxTokens,
				System:    system,
				Messages: []anthropic.Message{
					{Role: "user", Content: prompt},
				},
			})
			if err != nil {
				return "", err
			}
			resp.Usage.LogCost(resp.Model, ClaudeID)
			return resp.Text, nil
		},
	}
}
