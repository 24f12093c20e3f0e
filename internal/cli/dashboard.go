package cli

import (
	"context"
	"fmt"
)

// Dashboard prints the aggregate summary: points, streak and the latest
// analysis.
func (a *App) Dashboard(ctx context.Context) error {
	d, err := a.profile.Dashboard(ctx, a.userName)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Total Points: %d\n", d.Points)
	fmt.Fprintf(a.out, "Routine Streak: %d day(s)\n", d.Streak)
	fmt.Fprintf(a.out, "Analyses: %d\n", d.AnalysisCount)
	if d.AnalysisCount > 0 {
		fmt.Fprintf(a.out, "Last Score: %d (on %s)\n", d.LastScore, d.LastDate)
	} else {
		fmt.Fprintln(a.out, "No analysis yet. Run 'analyze' to get started.")
	}
	if !d.Onboarded {
		fmt.Fprintln(a.out, "Profile incomplete. Run 'onboard' first.")
	}
	return nil
}
