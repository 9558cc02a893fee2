package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/medcalc/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every calculator in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, rt, _, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		summaries, err := rt.Service.List(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(out, map[string]any{"calculators": summaries})
		}
		return tui.Print(out, tui.SummaryTable(summaries))
	},
}

var showCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Describe one calculator and its input fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, rt, _, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		detail, err := rt.Service.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(out, detail)
		}
		return tui.Print(out, tui.DetailMarkdown(detail))
	},
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd, showCmd)
	listCmd.Flags().Bool("json", false, "Print JSON instead of a table")
	showCmd.Flags().Bool("json", false, "Print JSON instead of markdown")
}
