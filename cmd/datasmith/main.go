// Package main provides the entry point for the datasmith messy-data generator.
package main

import (
	"fmt"
	"os"

	"github.com/datasmith/datasmith/version"
	"github.com/spf13/cobra"
)

// Main entry point for the datasmith tool
func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "datasmith",
		Short: "datasmith generates large, intentionally-messy e-commerce datasets",
		Long: `datasmith synthesizes tabular e-commerce data for exercising ETL pipelines.
Rows stay internally consistent along business rules (a failed payment never
yields a delivered order) while realistic data-quality defects are injected at
controlled per-field rates. Output is streamed to CSV in bounded-memory batches.`,
	}

	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of datasmith",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("datasmith v" + version.GetVersion())
		},
	})

	// Add subcommands
	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newUploadCommand())

	// Execute the command
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
