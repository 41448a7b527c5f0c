package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var verbose bool

// Execute runs the root command.
func Execute(version string) error {
	return newRootCommand(version).Execute()
}

func newRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fiskit",
		Short: "fiskit - fuzzy inference systems from YAML models",
		Long: `fiskit builds and evaluates Mamdani fuzzy inference systems declared
as YAML model documents: variables with explicit or auto-synthesized
membership terms, tunable operators, and textual if/then rules.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newEvalCommand())
	rootCmd.AddCommand(newShowCommand())

	return rootCmd
}
