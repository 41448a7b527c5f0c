package commands

import (
	"fmt"

	"github.com/katalvlaran/fiskit/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <model>",
		Short: "Validate a YAML model document",
		Long: `Validate parses a model document, checks its structure, and compiles it
into a full system - including rule compilation against the declared
vocabulary - without evaluating anything.`,
		Example: `  # Check a model end to end
  fiskit validate tipper.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := config.Load(args[0])
			if err != nil {
				return err
			}
			f, err := model.Build()
			if err != nil {
				return err
			}

			log.Debug().
				Str("model", model.Name).
				Strs("inputs", f.InputNames()).
				Strs("outputs", f.OutputNames()).
				Msg("model compiled")

			fmt.Printf("%s: ok (%d inputs, %d outputs, %d rules)\n",
				model.Name, len(f.InputNames()), len(f.OutputNames()), len(model.Rules))

			return nil
		},
	}
}
