package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"nashra/internal/assistant"
	"nashra/internal/catalog"
	"nashra/internal/config"
	"nashra/pkg/llm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "summarizer",
		Short:         "Generate AI summaries and briefings from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(articleCmd())
	rootCmd.AddCommand(briefCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, assistant.Message(err))
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newClient() (*assistant.Client, config.Config) {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	cfg := config.Load()
	limiter := llm.NewLimiter(cfg.LLMRPM, cfg.LLMBurst)
	return assistant.NewClient(cfg.Credentials(), assistant.ProviderFactory(cfg.LLM, limiter), cfg.PublicationName), cfg
}

func articleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "article [id]",
		Short: "Summarize a catalog article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Default()
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			article, ok := cat.Get(args[0])
			if !ok {
				return fmt.Errorf("article %s not found", args[0])
			}

			client, cfg := newClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.LLMTimeout)
			defer cancel()

			text, err := client.Summarize(ctx, article.Title, article.Content)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func briefCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brief [topic]",
		Short: "Generate an analytical briefing on a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg := newClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.LLMTimeout)
			defer cancel()

			b, err := client.Brief(ctx, args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(b)
		},
	}
}
