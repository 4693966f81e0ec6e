package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/troubleduxj/flowlayout/pkg/graph"
	"github.com/troubleduxj/flowlayout/pkg/pipeline"
)

// recommendCommand creates the recommend command for algorithm selection.
func (c *CLI) recommendCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "recommend [diagram.json]",
		Short: "Suggest a layout algorithm for a workflow diagram",
		Long: `Suggest a layout algorithm for a workflow diagram.

The recommend command inspects the diagram structure (cycles, branching,
connected components, edge density) and prints the algorithm that 'layout -a
auto' would pick, along with the reason.

With --interactive an algorithm picker opens with the recommendation
pre-selected, so a different algorithm can be chosen by eye.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRecommend(args[0], interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick the algorithm from a list")

	return cmd
}

// runRecommend loads the diagram and prints the selector's recommendation.
func (c *CLI) runRecommend(input string, interactive bool) error {
	d, err := graph.ReadDiagramFile(input)
	if err != nil {
		return fmt.Errorf("load diagram %s: %w", input, err)
	}

	runner := pipeline.NewRunner(nil, nil, c.Logger)
	defer runner.Close()

	rec, err := runner.Recommend(d)
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	if interactive {
		chosen, ok, err := runAlgorithmPicker(rec)
		if err != nil {
			return fmt.Errorf("algorithm picker: %w", err)
		}
		if !ok {
			printInfo("No algorithm selected")
			return nil
		}
		printSuccess("Selected %s", chosen)
		printNewline()
		printNextStep("Layout", fmt.Sprintf("flowlayout layout -a %s %s", chosen, input))
		return nil
	}

	printKeyValue("algorithm", rec.Algorithm.String())
	printKeyValue("reason", rec.Reason)
	printNewline()
	printNextStep("Layout", fmt.Sprintf("flowlayout layout -a %s %s", rec.Algorithm, input))

	return nil
}
