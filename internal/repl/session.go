// Package repl runs the interactive question loop: read a line, fetch
// clusters and posts for it, print the sections, and optionally append a
// Gemini synthesis.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pzshine/membit-prediction-market-insight/internal/ai"
	"github.com/pzshine/membit-prediction-market-insight/internal/config"
	"github.com/pzshine/membit-prediction-market-insight/internal/membit"
	"github.com/pzshine/membit-prediction-market-insight/internal/render"
)

const (
	searchTimeout  = 15 * time.Second
	summaryTimeout = 30 * time.Second
)

// Searcher is the slice of the Membit client the session depends on.
type Searcher interface {
	ClusterSearch(ctx context.Context, query string, limit int) ([]membit.Cluster, error)
	PostSearch(ctx context.Context, query string, limit int) ([]membit.Post, error)
}

// Session drives one interactive question loop over the given reader and
// writer. Each submitted question triggers a cluster search, a post search,
// and, when configured, a summary; the two searches are independent, so a
// cluster failure never suppresses the post lookup.
type Session struct {
	searcher     Searcher
	summarizer   ai.Summarizer
	clusterLimit int
	postLimit    int
	in           io.Reader
	out          io.Writer
}

// New builds a session from the loaded configuration and backends.
func New(cfg *config.Config, searcher Searcher, summarizer ai.Summarizer, in io.Reader, out io.Writer) *Session {
	return &Session{
		searcher:     searcher,
		summarizer:   summarizer,
		clusterLimit: cfg.GetClusterLimit(),
		postLimit:    cfg.GetPostLimit(),
		in:           in,
		out:          out,
	}
}

// Run prompts until the user types an exit keyword or input ends. Both are
// graceful: Run returns nil and the process exits 0.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, render.Banner())

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprintf(s.out, "\n%s", render.Prompt())
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			// End of input leaves the prompt line open.
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, render.Goodbye())
			return nil
		}

		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		switch strings.ToLower(query) {
		case "exit", "quit":
			fmt.Fprintln(s.out, render.Goodbye())
			return nil
		}

		s.handleQuery(ctx, query)
	}
}

// handleQuery runs the fetch-and-display cycle for one question. Failures
// replace their section with a one-line notice; they never end the session.
func (s *Session) handleQuery(ctx context.Context, query string) {
	clusters, err := s.fetchClusters(ctx, query)
	if err != nil {
		fmt.Fprintf(s.out, "\n%s\n", render.Warn(fmt.Sprintf("Something went wrong: %v", err)))
	} else {
		fmt.Fprintf(s.out, "\n%s\n", render.Section("Related clusters"))
		fmt.Fprintln(s.out, render.Clusters(clusters))
	}

	posts, err := s.fetchPosts(ctx, query)
	if err != nil {
		fmt.Fprintf(s.out, "\n%s\n", render.Warn(fmt.Sprintf("(Unable to fetch individual posts: %v)", err)))
	} else {
		fmt.Fprintf(s.out, "\n%s\n", render.Section("Related posts (with links)"))
		fmt.Fprintln(s.out, render.Posts(posts))
	}

	if !s.summarizer.Enabled() {
		return
	}
	summary, err := s.summarize(ctx, query, clusters, posts)
	if err != nil {
		fmt.Fprintf(s.out, "\n%s\n", render.Warn(fmt.Sprintf("(Gemini summarization failed: %v)", err)))
		return
	}
	if summary != "" {
		fmt.Fprintf(s.out, "\n%s\n", render.Section("Gemini summary"))
		fmt.Fprintln(s.out, summary)
	}
}

func (s *Session) fetchClusters(ctx context.Context, query string) ([]membit.Cluster, error) {
	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()
	return s.searcher.ClusterSearch(ctx, query, s.clusterLimit)
}

func (s *Session) fetchPosts(ctx context.Context, query string) ([]membit.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()
	return s.searcher.PostSearch(ctx, query, s.postLimit)
}

func (s *Session) summarize(ctx context.Context, query string, clusters []membit.Cluster, posts []membit.Post) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, summaryTimeout)
	defer cancel()
	return s.summarizer.Summarize(ctx, query, clusters, posts)
}
