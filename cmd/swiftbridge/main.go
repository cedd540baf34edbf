package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:           "swiftbridge",
	Short:         "C# to Swift declaration transpiler",
	Long:          "swiftbridge translates C# class and struct declarations into Swift source, one file per type, plus a SwiftPM manifest.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Version = Version
	rootCmd.AddCommand(translateCmd)
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
