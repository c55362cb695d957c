package llm

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/mkarev/whichmore/internal/model"
)

// Stats is the run summary handed to the digester. The digest is
// documentation for maintainers only; facts and questions are already
// written before it is generated, so it can never affect them.
type Stats struct {
	Facts      int
	Questions  int
	Categories map[string]int
}

// Digester generates a short markdown digest of a build run
type Digester struct {
	client *openai.Client
	model  string
}

// NewDigester creates a digester. Only the OpenAI chat API (and compatible
// endpoints via base_url) is supported.
func NewDigester(cfg model.LLMConfig) (*Digester, error) {
	if cfg.Provider != "openai" {
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	m := cfg.Model
	if m == "" {
		m = openai.GPT4oMini
	}

	return &Digester{
		client: openai.NewClientWithConfig(clientConfig),
		model:  m,
	}, nil
}

// Summarize produces the digest markdown
func (d *Digester) Summarize(ctx context.Context, stats Stats) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := d.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: d.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You summarize dataset build runs for maintainers. Be brief and factual; do not invent numbers.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(stats),
			},
		},
		MaxTokens:   500,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// BuildPrompt renders the digest prompt from run statistics
func BuildPrompt(stats Stats) string {
	categories := make([]string, 0, len(stats.Categories))
	for c := range stats.Categories {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var b strings.Builder
	fmt.Fprintf(&b, "A trivia dataset build just completed with %d facts and %d generated questions.\n", stats.Facts, stats.Questions)
	b.WriteString("Questions per category:\n")
	for _, c := range categories {
		fmt.Fprintf(&b, "- %s: %d\n", c, stats.Categories[c])
	}
	b.WriteString("\nWrite a short markdown digest (under 150 words) describing the shape of this dataset: overall size, which categories dominate, and which are thin.")
	return b.String()
}
