package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pzshine/membit-prediction-market-insight/internal/config"
	"github.com/pzshine/membit-prediction-market-insight/internal/membit"
)

// Summarizer produces a short synthesis of the clusters and posts fetched for
// one query.
type Summarizer interface {
	// Enabled reports whether summarization is configured. Resolved once at
	// construction; a disabled summarizer never reaches the network.
	Enabled() bool
	Summarize(ctx context.Context, query string, clusters []membit.Cluster, posts []membit.Post) (string, error)
}

// New returns a Gemini-backed Summarizer, or a no-op variant when the config
// does not enable summaries.
func New(cfg *config.Config) Summarizer {
	if !cfg.SummaryEnabled() {
		return disabled{}
	}
	return &geminiProvider{
		apiKey:  cfg.GoogleAPIKey,
		model:   normalizeModel(cfg.GeminiModel),
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

const summaryPrompt = `You are a social analyst AI. Using the real-time discussion data from Membit below,
summarize and interpret public sentiment and key insights around: %q.
---
%s
---`

// buildContext renders cluster summaries and post snippets as the prompt's
// discussion-data block.
func buildContext(clusters []membit.Cluster, posts []membit.Post) string {
	var lines []string
	for _, cl := range clusters {
		switch {
		case cl.Summary != "":
			lines = append(lines, "- "+cl.Summary)
		case cl.Label != "":
			lines = append(lines, "- "+cl.Label)
		}
	}
	if len(lines) == 0 {
		lines = append(lines, "(no cluster summaries available)")
	}

	var postLines []string
	for _, p := range posts {
		if p.Body() == "" {
			continue
		}
		postLines = append(postLines, fmt.Sprintf("- [%s] %s", p.PlatformName(), p.Snippet(200)))
	}
	if len(postLines) > 0 {
		lines = append(lines, "", "Related posts:")
		lines = append(lines, postLines...)
	}

	return strings.Join(lines, "\n")
}

// normalizeModel expands a bare model name into the "models/..." resource
// path the generateContent endpoint expects.
func normalizeModel(model string) string {
	if model == "" {
		return config.DefaultGeminiModel
	}
	if !strings.HasPrefix(model, "models/") {
		return "models/" + model
	}
	return model
}

// disabled is the Summarizer used when GOOGLE_API_KEY is absent.
type disabled struct{}

func (disabled) Enabled() bool { return false }

func (disabled) Summarize(context.Context, string, []membit.Cluster, []membit.Post) (string, error) {
	return "", nil
}

// --- Gemini provider ---

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type geminiProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *geminiProvider) Enabled() bool { return true }

func (g *geminiProvider) Summarize(ctx context.Context, query string, clusters []membit.Cluster, posts []membit.Post) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, query, buildContext(clusters, posts))
	text, err := g.call(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (g *geminiProvider) call(ctx context.Context, prompt string) (string, error) {
	body, _ := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})

	url := fmt.Sprintf("%s/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("gemini API %d: %s", resp.StatusCode, string(b))
	}

	var gr geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", err
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty gemini response")
	}

	var sb strings.Builder
	for _, part := range gr.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
