// Package render formats clusters, posts, and session chrome for the
// terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/pzshine/membit-prediction-market-insight/internal/membit"
)

// snippetLen caps how much of a post body is shown per line.
const snippetLen = 200

// Banner is the greeting printed when a session starts.
func Banner() string {
	return bannerStyle.Render("Ask me anything and I will fetch fresh Membit clusters (type 'exit' to quit).")
}

// Prompt is the input marker shown before each question.
func Prompt() string {
	return promptStyle.Render("Question> ")
}

// Section renders a "=== title ===" header line.
func Section(title string) string {
	return sectionStyle.Render("=== " + title + " ===")
}

// Warn renders a one-line failure notice.
func Warn(text string) string {
	return warnStyle.Render(text)
}

// Goodbye is the farewell printed when the session ends.
func Goodbye() string {
	return goodbyeStyle.Render("Goodbye!")
}

// Clusters renders a numbered cluster list, or a placeholder when empty.
func Clusters(clusters []membit.Cluster) string {
	if len(clusters) == 0 {
		return "No related clusters found."
	}

	var lines []string
	for i, cl := range clusters {
		label := cl.Label
		if label == "" {
			label = "Untitled cluster"
		}
		summary := cl.Summary
		if summary == "" {
			summary = "No summary provided."
		}
		category := cl.Category
		if category == "" {
			category = "Uncategorized"
		}

		lines = append(lines, fmt.Sprintf("%d. %s %s", i+1, labelStyle.Render(label), categoryStyle.Render("["+category+"]")))
		lines = append(lines, "   ↳ "+summary)
		lines = append(lines, "   "+statStyle.Render(fmt.Sprintf("(engagement=%.2f, relevance=%.3f)", cl.EngagementScore, cl.SearchScore)))
	}
	return strings.Join(lines, "\n")
}

// Posts renders a numbered post list with links, or a placeholder when empty.
func Posts(posts []membit.Post) string {
	if len(posts) == 0 {
		return "No related posts (tweets) were found."
	}

	var lines []string
	for i, p := range posts {
		lines = append(lines, fmt.Sprintf("%d. %s %s", i+1, platformStyle.Render("["+p.PlatformName()+"]"), p.Snippet(snippetLen)))

		link := p.ResolvedURL()
		if link == "" {
			link = "Link unavailable."
		}
		lines = append(lines, "   ↳ "+linkStyle.Render(link))
	}
	return strings.Join(lines, "\n")
}
