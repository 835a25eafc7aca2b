package cmd

import (
	"context"
	"fmt"
	"os"

	"themeconv/internal/config"
	"themeconv/internal/domain"
)

// ConvertOneCmd converts a single theme directory
type ConvertOneCmd struct {
	Dir    string `arg:"" help:"Theme directory containing a colors.toml, colors.yaml or colors.json" type:"path"`
	Output string `help:"Output root directory (default from settings)" short:"o" type:"path"`
}

// Run executes the single-theme conversion. Parse failures exit non-zero.
func (c *ConvertOneCmd) Run(cli *CLI) error {
	output := cli.Container.Settings.OutputDir
	if c.Output != "" {
		output = config.ExpandPath(c.Output)
	}

	result, err := cli.Container.ConverterService.ConvertOne(context.Background(), c.Dir, output)
	if err != nil {
		return err
	}

	printResults(os.Stdout, []domain.ConversionResult{result})
	fmt.Printf("\nRun %s/install.sh to apply it.\n", result.Target)
	return nil
}
