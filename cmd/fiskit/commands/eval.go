package commands

import (
	"fmt"

	"github.com/katalvlaran/fiskit/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newEvalCommand() *cobra.Command {
	var inputs []float64

	cmd := &cobra.Command{
		Use:   "eval <model>",
		Short: "Evaluate a model for one set of input values",
		Long: `Eval loads a model document, binds the --input values to the input
variables positionally - value i goes to the variable declared i-th -
runs one inference pass, and prints every output variable's crisp value.`,
		Example: `  # Tip for a middling service rating
  fiskit eval tipper.yaml --input 5

  # Two inputs, bound in declaration order
  fiskit eval sprinkler.yaml -i 31.5 -i 0.2`,
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
				Floats64("values", inputs).
				Msg("evaluating")

			if _, err = f.Inference(inputs); err != nil {
				return err
			}

			for _, out := range f.Engine().Outputs() {
				fmt.Printf("%s = %g\n", out.Name, out.Value())
			}

			return nil
		},
	}

	cmd.Flags().Float64SliceVarP(&inputs, "input", "i", nil, "input value, repeat once per input variable")

	return cmd
}
