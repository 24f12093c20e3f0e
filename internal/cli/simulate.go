package cli

import (
	"context"
	"fmt"

	"github.com/mkazarin/skinaid/internal/analysis"
)

// Simulate estimates how habit changes would move the score without running
// a full analysis or touching the record.
func (a *App) Simulate(ctx context.Context) error {
	current, err := a.readLifestyleFactors("Your current habits:")
	if err != nil {
		return err
	}
	target, err := a.readLifestyleFactors("The habits you want to try:")
	if err != nil {
		return err
	}

	res := analysis.Simulate(current, target)

	fmt.Fprintf(a.out, "\nEstimated score today: %d\n", res.CurrentScore)
	fmt.Fprintf(a.out, "Estimated score with new habits: %d (%+d)\n", res.OptimizedScore, res.Delta)
	if len(res.Actions) > 0 {
		fmt.Fprintln(a.out, "Suggested actions:")
		for _, action := range res.Actions {
			fmt.Fprintf(a.out, "- %s\n", action)
		}
	}
	return nil
}
