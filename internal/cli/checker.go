package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mkazarin/skinaid/internal/gamify"
)

// Checker walks through the fixed 15-task holistic checklist and finalizes
// today's score. Each task is worth 5 points; only score improvements over
// the day's previous finalization are awarded.
func (a *App) Checker(ctx context.Context) error {
	fmt.Fprintln(a.out, "Daily Holistic Checklist")

	checked := make(map[string]bool, len(gamify.CheckerTasks))
	completed := 0
	for _, task := range gamify.CheckerTasks {
		done, err := GetYesNo(a.reader, task.Label, os.Stdout)
		if err != nil {
			return err
		}
		checked[task.Key] = done
		if done {
			completed++
		}
	}

	res, err := a.profile.FinalizeChecker(ctx, a.userName, checked)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nDaily progress: %d/%d tasks, score %d.\n", completed, len(gamify.CheckerTasks), res.Score)
	switch {
	case res.PointsAwarded > 0:
		fmt.Fprintf(a.out, "Finalized and awarded +%d points for today's checker!\n", res.PointsAwarded)
	case res.Delta < 0:
		fmt.Fprintln(a.out, "Checker progress saved. No new points awarded.")
	default:
		fmt.Fprintln(a.out, "Checker finalized. No new points earned since the last check.")
	}

	fmt.Fprintln(a.out, "Advice:", gamify.CheckerAdvice(completed))
	return nil
}
