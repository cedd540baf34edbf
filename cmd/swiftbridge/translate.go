package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/viant/swiftbridge/translator"
)

var translateOptions = struct {
	config      string
	module      string
	output      string
	concurrency int
	verbose     bool
}{}

var translateCmd = &cobra.Command{
	Use:   "translate [location]",
	Short: "Translate a C# project into Swift declarations",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		location := "."
		if len(args) > 0 {
			location = args[0]
		}
		config, err := loadConfig()
		if err != nil {
			return err
		}
		var log io.Writer = io.Discard
		if config.Verbose {
			log = cmd.OutOrStdout()
		}
		service := translator.New(config, translator.WithLogger(log))
		result, err := service.Translate(cmd.Context(), location)
		if err != nil {
			return err
		}
		report(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	translateCmd.Flags().StringVarP(&translateOptions.config, "config", "c", "", "YAML config file")
	translateCmd.Flags().StringVarP(&translateOptions.module, "module", "m", "", "translation unit name")
	translateCmd.Flags().StringVarP(&translateOptions.output, "output", "o", "", "output location")
	translateCmd.Flags().IntVar(&translateOptions.concurrency, "concurrency", 0, "parallel emission width")
	translateCmd.Flags().BoolVarP(&translateOptions.verbose, "verbose", "v", false, "log collected declarations")
}

func loadConfig() (*translator.Config, error) {
	config := &translator.Config{}
	if translateOptions.config != "" {
		loaded, err := translator.LoadConfig(translateOptions.config)
		if err != nil {
			return nil, err
		}
		config = loaded
	} else if _, err := os.Stat("swiftbridge.yaml"); err == nil {
		loaded, err := translator.LoadConfig("swiftbridge.yaml")
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	if translateOptions.module != "" {
		config.Module = translateOptions.module
	}
	if translateOptions.output != "" {
		config.Output = translateOptions.output
	}
	if translateOptions.concurrency > 0 {
		config.Concurrency = translateOptions.concurrency
	}
	if translateOptions.verbose {
		config.Verbose = true
	}
	return config, nil
}

// report prints the run outcome: emitted files, skipped declaration kinds
// and the diagnostic summary sorted by descending count. Diagnostics are
// advisory only and never change the exit status.
func report(out io.Writer, result *translator.Result) {
	fmt.Fprintf(out, "%s: %d file(s) written\n", result.Module, len(result.Files))
	kinds := make([]string, 0, len(result.Skipped))
	for kind := range result.Skipped {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(out, "skipped %d %s declaration(s)\n", result.Skipped[kind], kind)
	}
	if len(result.Diagnostics) == 0 {
		return
	}
	color.New(color.FgYellow).Fprintln(out, "translation shortfalls, review output manually:")
	for _, entry := range result.Diagnostics {
		color.New(color.FgYellow).Fprintf(out, "%5dx %s\n", entry.Count, entry.Message)
	}
}
