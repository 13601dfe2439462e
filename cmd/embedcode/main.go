package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"embedcode/internal/config"
	"embedcode/internal/logging"
	"embedcode/internal/pipeline"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags config.Flags

	rootCmd := &cobra.Command{
		Use:           "embedcode",
		Short:         "Embed code fragments into documentation and keep them up to date",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.ConfigPath, "config", "", "Path to a YAML configuration file")
	pf.StringVar(&flags.CodeRoot, "code-root", "", "Directory containing the source code")
	pf.StringVar(&flags.DocsRoot, "docs-root", "", "Directory containing the documentation")
	pf.StringVar(&flags.CodeIncludes, "code-includes", "", "Comma-separated glob patterns selecting code files")
	pf.StringVar(&flags.DocIncludes, "doc-includes", "", "Comma-separated glob patterns selecting documentation files")
	pf.StringVar(&flags.DocExcludes, "doc-excludes", "", "Comma-separated glob patterns excluding documentation files")
	pf.StringVar(&flags.FragmentsDir, "fragments-dir", "", "Directory for extracted fragments (default \".fragments\")")
	pf.StringVar(&flags.Separator, "separator", "", "Line inserted between partitions of a fragment (default \"...\")")
	pf.StringVar(&flags.LogLevel, "log-level", "", "Log level: trace, debug, info, warn or error")

	rootCmd.AddCommand(newEmbedCmd(&flags))
	rootCmd.AddCommand(newCheckCmd(&flags))
	rootCmd.AddCommand(newAnalyzeCmd(&flags))
	return rootCmd
}

// initRunner resolves and validates the configuration, then builds a runner.
func initRunner(flags *config.Flags) (*pipeline.Runner, error) {
	cfg, err := config.Resolve(*flags)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	root, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, wrapValidationError(err)
	}
	return pipeline.NewRunner(cfg, root.Component(logging.ComponentPipeline)), nil
}

func newEmbedCmd(flags *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "embed",
		Short: "Embed code fragments into the documentation, then verify it is up to date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := initRunner(flags)
			if err != nil {
				return err
			}

			updated, err := runner.Embed(cmd.Context())
			if err != nil {
				return wrapExecuteError(err)
			}
			for _, file := range updated {
				fmt.Fprintf(cmd.OutOrStdout(), "📝 Updated %s\n", file)
			}

			if _, err := runner.Check(cmd.Context()); err != nil {
				return wrapExecuteError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Embedding complete. %d file(s) updated.\n", len(updated))
			return nil
		},
	}
}

func newCheckCmd(flags *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the documentation is up to date with the code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := initRunner(flags)
			if err != nil {
				return err
			}

			stale, err := runner.Check(cmd.Context())
			for _, file := range stale {
				fmt.Fprintf(cmd.OutOrStdout(), "❌ Out of date: %s\n", file)
			}
			if err != nil {
				return wrapExecuteError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✅ Documentation is up to date.")
			return nil
		},
	}
}

func newAnalyzeCmd(flags *config.Flags) *cobra.Command {
	var reportPath string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report every documentation file that cannot be embedded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := initRunner(flags)
			if err != nil {
				return err
			}

			problems, err := runner.Analyze(cmd.Context(), reportPath)
			if err != nil {
				return wrapExecuteError(err)
			}
			if len(problems) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "✅ No problems found. Report written to %s\n", reportPath)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "⚠️ %d problem(s) found. See %s\n", len(problems), reportPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&reportPath, "report", pipeline.DefaultReportPath, "Where to write the problem report")
	return cmd
}
