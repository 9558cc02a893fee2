package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/medcalc"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of medcalc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "medcalc version %s\n", strings.TrimSpace(medcalc.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
