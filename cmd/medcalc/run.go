package main

import (
	"github.com/aretw0/medcalc/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <slug>",
	Short: "Run a calculator and print the result as JSON",
	Long: `Runs one calculator. Inputs are given as a JSON object, as repeated
Label=value assignments, or both:

  medcalc run body-mass-index-bmi -i "Weight=70 kg" -i "Height=175 cm"
  medcalc run qtc-bazett-calculator --inputs '{"Heart Rate or Pulse": 60, "QT interval": 400}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawJSON, _ := cmd.Flags().GetString("inputs")
		assignments, _ := cmd.Flags().GetStringArray("input")

		payload, err := cli.ParseInputs(rawJSON, assignments)
		if err != nil {
			return err
		}

		_, rt, _, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		resp, err := rt.Service.Run(cmd.Context(), args[0], payload)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), resp)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("inputs", "", "Inputs as a JSON object")
	runCmd.Flags().StringArrayP("input", "i", nil, "Input as Label=value (repeatable); \"70 kg\" becomes [70, \"kg\"]")
}
