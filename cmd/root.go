package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pzshine/membit-prediction-market-insight/internal/ai"
	"github.com/pzshine/membit-prediction-market-insight/internal/config"
	"github.com/pzshine/membit-prediction-market-insight/internal/membit"
	"github.com/pzshine/membit-prediction-market-insight/internal/repl"
)

var rootCmd = &cobra.Command{
	Use:   "membit-insight",
	Short: "Interactive Membit discussion explorer",
	Long: "membit-insight answers your questions with live Membit discussion clusters,\n" +
		"related posts, and an optional Gemini synthesis.",
	SilenceUsage: true,
	RunE:         runSession,
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	client := membit.NewClient(cfg.MembitAPIKey)
	summarizer := ai.New(cfg)

	session := repl.New(cfg, client, summarizer, cmd.InOrStdin(), cmd.OutOrStdout())
	return session.Run(cmd.Context())
}

func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
