package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"
)

// HistoryCmd shows previous conversion runs
type HistoryCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit  int    `help:"Number of runs to show (0 = all)" default:"10" short:"n"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	if cli.Container.HistoryService == nil {
		return errors.New("history is disabled (set history: true in settings.yaml)")
	}

	runs, err := cli.Container.HistoryService.Recent(context.Background(), h.Limit)
	if err != nil {
		return err
	}

	if h.Format == "json" {
		data, err := json.MarshalIndent(runs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tTHEMES\tOK\tFAILED\tSOURCE\tFAILURES")
	for _, run := range runs {
		var failed []string
		for _, t := range run.Themes {
			if t.Error != "" {
				failed = append(failed, t.ThemeName)
			}
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%s\n",
			run.StartedAt.Local().Format(time.DateTime),
			run.Attempted,
			run.Succeeded,
			run.Failed,
			run.SourceDir,
			strings.Join(failed, ","),
		)
	}
	w.Flush()
	return nil
}
