package membit

import "strings"

// Cluster is a grouped discussion topic returned by cluster search.
type Cluster struct {
	Label           string  `json:"label"`
	Category        string  `json:"category"`
	Summary         string  `json:"summary"`
	EngagementScore float64 `json:"engagement_score"`
	SearchScore     float64 `json:"search_score"`
}

// Post is a single raw post returned by post search. The API is loose about
// which field carries the platform, body, and link, so the accessors below
// resolve the fallbacks.
type Post struct {
	Platform  string `json:"platform"`
	Source    string `json:"source"`
	Text      string `json:"text"`
	Content   string `json:"content"`
	URL       string `json:"url"`
	Link      string `json:"link"`
	PostURL   string `json:"post_url"`
	Permalink string `json:"permalink"`
}

// PlatformName returns the originating platform, defaulting to "unknown".
func (p Post) PlatformName() string {
	if p.Platform != "" {
		return p.Platform
	}
	if p.Source != "" {
		return p.Source
	}
	return "unknown"
}

// Body returns the post text, whichever field the API populated.
func (p Post) Body() string {
	if p.Text != "" {
		return strings.TrimSpace(p.Text)
	}
	return strings.TrimSpace(p.Content)
}

// Snippet returns the post body collapsed to single spaces and truncated to
// at most n runes, with an ellipsis when cut.
func (p Post) Snippet(n int) string {
	body := strings.Join(strings.Fields(p.Body()), " ")
	runes := []rune(body)
	if len(runes) <= n {
		return body
	}
	return string(runes[:n]) + "…"
}

// ResolvedURL returns the first usable link field, or "" when the API could
// not resolve a direct link for the post.
func (p Post) ResolvedURL() string {
	for _, u := range []string{p.URL, p.Link, p.PostURL, p.Permalink} {
		if u != "" {
			return u
		}
	}
	return ""
}
