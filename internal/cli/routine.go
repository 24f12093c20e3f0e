package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mkazarin/skinaid/internal/common"
)

// Routine walks through today's routine steps and finalizes the day.
// A full completion is worth +5 points, once per day.
func (a *App) Routine(ctx context.Context) error {
	rec, err := a.profile.Record(ctx, a.userName)
	if err != nil {
		return err
	}
	last := rec.LastAnalysis()
	if last == nil {
		fmt.Fprintln(a.out, "No analysis yet. Run 'analyze' to get your personalized routine.")
		return nil
	}

	fmt.Fprintln(a.out, "Check off today's routine steps.")

	fmt.Fprintln(a.out, "\nMorning:")
	morningDone := make([]bool, len(last.RoutineMorning))
	for i, step := range last.RoutineMorning {
		done, err := GetYesNo(a.reader, step, os.Stdout)
		if err != nil {
			return err
		}
		morningDone[i] = done
	}

	fmt.Fprintln(a.out, "\nEvening:")
	eveningDone := make([]bool, len(last.RoutineEvening))
	for i, step := range last.RoutineEvening {
		done, err := GetYesNo(a.reader, step, os.Stdout)
		if err != nil {
			return err
		}
		eveningDone[i] = done
	}

	res, err := a.profile.FinalizeRoutine(ctx, a.userName, morningDone, eveningDone)
	if err != nil {
		if errors.Is(err, common.ErrorNoAnalysis) {
			fmt.Fprintln(a.out, "No analysis yet. Run 'analyze' first.")
			return nil
		}
		return err
	}

	switch {
	case res.AlreadyFinalized:
		fmt.Fprintln(a.out, "You have already finalized your routine for today.")
	case res.IsComplete:
		fmt.Fprintf(a.out, "Good job! +%d points awarded!\n", res.PointsAwarded)
	default:
		fmt.Fprintln(a.out, "Routine saved. Complete every step to earn points!")
	}
	return nil
}
