package main

import (
	"fmt"

	"github.com/aretw0/medcalc/internal/presentation/graph"
	"github.com/aretw0/medcalc/internal/presentation/tui"
	"github.com/aretw0/medcalc/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the catalog for consistency",
	Long:  `Builds the catalog, reports skipped metadata entries and checks that every calculator resolves to an implementation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, rt, _, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		defs, err := rt.Service.Definitions(cmd.Context())
		if err != nil {
			return fmt.Errorf("catalog failed to build: %w", err)
		}

		report := validator.ValidateCatalog(defs, rt.Skipped(), rt.Library)
		out := cmd.OutOrStdout()
		for _, w := range report.Warnings() {
			fmt.Fprintf(out, "warning: %s\n", w)
		}
		if err := report.Err(); err != nil {
			fmt.Fprintf(out, "%s %d calculators\n", tui.Verdict(false), report.Definitions)
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintf(out, "%s %d calculators\n", tui.Verdict(true), report.Definitions)
		return nil
	},
}

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the catalog wiring visualization",
	Long:  `Outputs a Mermaid diagram (graph LR) linking each calculator to its implementation and post-processor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, rt, _, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		defs, err := rt.Service.Definitions(cmd.Context())
		if err != nil {
			return err
		}

		report := validator.ValidateCatalog(defs, nil, rt.Library)
		overlay := &graph.GraphOverlay{PostProcessed: rt.PostProcessed(defs)}
		for _, u := range report.Unresolved {
			overlay.Unresolved = append(overlay.Unresolved, u.Slug)
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(defs, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd, graphCmd)
}
