package commands

import (
	"fmt"

	"github.com/katalvlaran/fiskit/config"
	"github.com/katalvlaran/fiskit/engine"
	"github.com/katalvlaran/fiskit/plot"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newShowCommand() *cobra.Command {
	var (
		samples int
		width   int
		height  int
		plain   bool
	)

	cmd := &cobra.Command{
		Use:   "show <model> [variable]",
		Short: "Plot a model's membership terms in the terminal",
		Long: `Show samples every membership term across its variable's universe and
draws one colored chart per variable. Naming a variable restricts the
output to that chart.`,
		Example: `  # All variables of the model
  fiskit show tipper.yaml

  # One variable, plain characters for piping
  fiskit show tipper.yaml service --plain`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := config.Load(args[0])
			if err != nil {
				return err
			}
			f, err := model.Build()
			if err != nil {
				return err
			}

			r := plot.NewRenderer()
			if width > 0 {
				r.Width = width
			}
			if height > 0 {
				r.Height = height
			}
			if plain {
				r.Profile = termenv.Ascii
			}

			variables := make([]*engine.Variable, 0, len(f.InputNames())+len(f.OutputNames()))
			for _, v := range f.Engine().Inputs() {
				variables = append(variables, &v.Variable)
			}
			for _, v := range f.Engine().Outputs() {
				variables = append(variables, &v.Variable)
			}

			shown := 0
			for _, v := range variables {
				if len(args) == 2 && v.Name != args[1] {
					continue
				}
				fmt.Print(r.Render(v.Name, plot.SampleVariable(v, samples)))
				shown++
			}
			if shown == 0 && len(args) == 2 {
				return fmt.Errorf("variable %q is not declared by model %q", args[1], model.Name)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&samples, "samples", 0, "sample count per curve (0 uses the default grid)")
	cmd.Flags().IntVar(&width, "width", 0, "chart width in columns")
	cmd.Flags().IntVar(&height, "height", 0, "chart height in rows")
	cmd.Flags().BoolVar(&plain, "plain", false, "render plain characters without color")

	return cmd
}
