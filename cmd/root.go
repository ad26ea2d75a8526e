package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/samzong/gitcz/internal/config"
	"github.com/samzong/gitcz/internal/git"
	"github.com/samzong/gitcz/internal/logging"
	"github.com/samzong/gitcz/internal/prompt"
	"github.com/samzong/gitcz/internal/ui"
	"github.com/samzong/gitcz/internal/workflow"
)

var (
	cfgFile   string
	noVerify  bool
	dryRun    bool
	addAll    bool
	autoYes   bool
	verbose   bool
	quiet     bool
	configErr error
	rootCmd   = &cobra.Command{
		Use:   "gitcz",
		Short: "gitcz - Conventional Commits assistant",
		Long: `gitcz is a CLI tool that walks you through writing a Conventional Commits ` +
			`message (type, scope, subject, body, breaking change) and creates the commit.`,
		Version:       fmt.Sprintf("%s (built at %s)", Version, BuildTime),
		Args:          cobra.NoArgs,
		RunE:          runCommit,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	newPrompter = func(cfg *config.Config) workflow.Prompter {
		return prompt.NewEngine(cfg.Accessible)
	}
	newGitClient = func(logger zerolog.Logger) workflow.GitClient {
		return git.NewClient(git.Options{Logger: logger})
	}
)

// RootCmd exposes the root command for documentation generation.
func RootCmd() *cobra.Command {
	return rootCmd
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	outcome := workflow.Classify(err)
	report(errWriter(), outcome, err)
	return outcome.ExitCode()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Configuration file path (default is $XDG_CONFIG_HOME/gitcz/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Show debug logs, including git commands")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log warnings and errors")
	rootCmd.Flags().BoolVar(&noVerify, "no-verify", false, "Skip pre-commit and commit-msg hooks")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the message only, do not commit")
	rootCmd.Flags().BoolVarP(&addAll, "all", "a", false,
		"Automatically add all changes to the staging area before committing")
	rootCmd.Flags().BoolVarP(&autoYes, "yes", "y", false, "Skip the final confirmation")

	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	configErr = config.InitConfig(cfgFile)
}

func runCommit(cmd *cobra.Command, _ []string) error {
	if configErr != nil {
		return fmt.Errorf("configuration error: %w", configErr)
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := logging.New(errWriter(), verbose, quiet)
	logger.Debug().Strs("types", cfg.Types).Str("config", config.ConfigFilePath()).Msg("configuration loaded")

	opts := workflow.CommitOptions{
		AddAll:           addAll,
		NoVerify:         noVerify,
		Signoff:          cfg.Signoff,
		DryRun:           dryRun,
		AutoYes:          autoYes,
		Types:            cfg.Types,
		MaxSubjectLength: cfg.MaxSubjectLength,
		ErrWriter:        errWriter(),
		OutWriter:        outWriter(),
		Logger:           logger,
	}

	flow := workflow.NewCommitFlow(newGitClient(logger), newPrompter(cfg), opts)
	result, err := flow.Run(cmd.Context())
	if err != nil {
		return err
	}

	if result.Committed {
		fmt.Fprintln(errWriter(), ui.RenderSuccess(workflow.OutcomeSuccess.Headline()))
	}
	return nil
}

// report prints the single user-facing message for an outcome.
func report(w io.Writer, outcome workflow.Outcome, err error) {
	switch outcome {
	case workflow.OutcomeSuccess:
		return
	case workflow.OutcomeUserAbort, workflow.OutcomeUnsupported, workflow.OutcomeNotRepository:
		fmt.Fprintln(w, outcome.Headline())
	case workflow.OutcomeInterrupted:
		fmt.Fprintln(w, "\n"+outcome.Headline())
	case workflow.OutcomeProcessFailure:
		fmt.Fprintf(w, "Error: %s: %v\n", outcome.Headline(), err)
	default:
		fmt.Fprintln(w, "Error:", err)
	}
}
