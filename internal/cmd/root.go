package cmd

import (
	"github.com/spf13/cobra"

	"github.com/promptlib/cli/internal/config"
	"github.com/promptlib/cli/internal/output"
	"github.com/promptlib/cli/internal/templates"
	"github.com/promptlib/cli/internal/version"
)

// Resolved configuration (loaded during PersistentPreRunE)
var resolvedConfig *config.ResolvedConfig

// NewRootCmd creates the root command for the promptlib CLI.
//
// Flag parsing is disabled: the first argument selects the action and the
// second is its operand, so the command line is classified by
// ParseInvocation rather than by cobra.
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "promptlib [option] [keyword]",
		Short:              "Prompt template search tool",
		Long:               `promptlib lists, searches and shows prompt templates stored as Markdown files grouped by category directory.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
		RunE: runRoot,
	}
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	// Log to the command's stderr while the config is read so config
	// warnings land in the same place as everything else.
	output.SetupLogging(output.LogConfig{Writer: cmd.ErrOrStderr()})

	resolved, err := config.ResolveAll()
	if err != nil {
		return err
	}
	resolvedConfig = resolved

	output.SetupLogging(output.LogConfig{
		Verbose:    resolved.Log.Verbose,
		Timestamps: resolved.Log.Timestamps,
		Writer:     cmd.ErrOrStderr(),
	})

	output.Debug("initializing CLI",
		"version", version.Get().Version,
		"config", resolved.ConfigPath.Value,
		"templates", resolved.TemplatesDir.Value,
		"source", resolved.TemplatesDir.Source,
	)

	return nil
}

// GetResolvedConfig returns the resolved configuration.
func GetResolvedConfig() *config.ResolvedConfig {
	return resolvedConfig
}

// GetTemplatesDir returns the resolved template root directory.
func GetTemplatesDir() string {
	if resolvedConfig != nil {
		return resolvedConfig.TemplatesDir.Value
	}
	return templates.DefaultRoot
}

func runRoot(cmd *cobra.Command, args []string) error {
	inv, err := ParseInvocation(args)
	if err != nil {
		reportError("invalid arguments", err)
		return nil
	}

	output.Debug("dispatching", "action", inv.Action, "operand", inv.Operand)

	out := cmd.OutOrStdout()
	switch inv.Action {
	case ActionList:
		return runList(out, GetTemplatesDir())
	case ActionSearch:
		return runSearch(out, GetTemplatesDir(), inv.Operand)
	case ActionView:
		return runView(out, inv.Operand)
	default:
		return writeUsage(out)
	}
}
