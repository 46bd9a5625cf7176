// =============================================================================
// Compute Sales - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command takes
// the two input documents as positional arguments and runs the computation.
//
// COBRA CLI STRUCTURE:
//   rootCmd (compute-sales <catalog> <sales>)
//   └── versionCmd (compute-sales version)
//
// EXIT STATUS:
//   0 : The summary was printed and the results file written
//   1 : Wrong number of arguments, bad configuration, or an input document
//       could not be loaded. No results file is written in that case.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to an optional YAML configuration file.
var cfgFile string

// outputFile overrides output_file from the configuration.
var outputFile string

// metricsFile overrides metrics_file from the configuration.
var metricsFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "compute-sales <catalog> <sales>",
	Short: "Compute total sales revenue from a product catalog and a sales list",
	Long: `compute-sales joins a list of sales records against a product catalog,
sums the revenue of every valid sale, and reports the total together with a
warning for each record it had to skip.

The catalog is a list of {"title", "price"} entries and the sales document a
list of {"Product", "Quantity"} records. Both are read as JSON arrays unless
the file ends in .csv or .xlsx.

The summary is printed and also written to SalesResults.txt in the working
directory, replacing any previous results.

Example Usage:
  compute-sales catalog.json sales.json
  compute-sales --output reports/sales_{date}.txt catalog.json sales.json
  compute-sales --config compute-sales.yaml -v catalog.csv sales.xlsx`,

	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		// Arguments are valid at this point; further failures are not usage
		// mistakes.
		cmd.SilenceUsage = true
		return runCompute(cmd.OutOrStdout(), args[0], args[1])
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// --config flag: Optional YAML configuration. Defaults apply without one.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to a YAML configuration file",
	)

	// --verbose flag: Forces debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging on stderr",
	)

	rootCmd.Flags().StringVarP(
		&outputFile,
		"output",
		"o",
		"",
		"Results file name; supports {run_id}, {timestamp} and {date} (default SalesResults.txt)",
	)

	rootCmd.Flags().StringVar(
		&metricsFile,
		"metrics-file",
		"",
		"Write Prometheus metrics in textfile format to this path",
	)
}
