// Package cmd provides the CLI commands for tariffctl.
package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tariffctl",
	Short: "Manage rate-service tariff tables",
	Long: `tariffctl converts, validates and uploads tariff price lists for the
shipping rate service.

Price lists usually start life as a spreadsheet with one row per weight
bracket and one column per destination province. tariffctl converts that
matrix (exported as CSV) into the tariff record format the service consumes,
checks it against the same invariants the service enforces, and pushes it to
a running instance.

Examples:
  tariffctl convert listino.csv -o tariffs.json
  tariffctl validate tariffs.json
  tariffctl push tariffs.json --url http://localhost:8080`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("tariffctl version 1.0.0")
	},
}
