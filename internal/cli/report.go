package cli

import (
	"context"
	"fmt"

	"github.com/mkazarin/skinaid/internal/report"
)

// Report renders the most recent analysis into a text report file.
func (a *App) Report(ctx context.Context) error {
	rec, err := a.profile.Record(ctx, a.userName)
	if err != nil {
		return err
	}
	last := rec.LastAnalysis()
	if last == nil {
		fmt.Fprintln(a.out, "No analysis yet. Run 'analyze' first.")
		return nil
	}

	path, err := report.Save(a.config.ReportsDir, a.userName, last)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Report written to %s\n", path)
	return nil
}
