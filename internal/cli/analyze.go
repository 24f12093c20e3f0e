package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mkazarin/skinaid/internal/models"
)

// Analyze collects the lifestyle inputs and an optional selfie path, runs
// one analysis and prints the result summary. An unreadable or missing image
// falls back to neutral image features instead of failing.
func (a *App) Analyze(ctx context.Context) error {
	imagePath, err := getSimpleText(a.reader, "Path to a selfie (JPEG/PNG, leave empty to skip)", os.Stdout)
	if err != nil {
		return err
	}

	var selfie io.Reader
	if imagePath != "" {
		f, err := os.Open(imagePath)
		if err != nil {
			fmt.Fprintln(a.out, "Could not open the image, continuing without it.")
		} else {
			defer f.Close()
			selfie = f
		}
	}

	lf, err := a.readLifestyleFactors("How were your habits recently?")
	if err != nil {
		return err
	}

	res, err := a.profile.Analyze(ctx, a.userName, selfie, lf)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nCurrent Skin Score: %d / 100\n", res.CurrentScore)
	fmt.Fprintf(a.out, "Projections: 7d %d | 30d %d | 90d %d\n", res.Projection7, res.Projection30, res.Projection90)
	fmt.Fprintf(a.out, "Hydration: %d%%  Acne Risk: %d%%  Pigmentation Risk: %d%%  Pores: %s\n",
		res.HydrationScore, res.AcneRiskPct, res.PigmentationRiskPct, res.PoreVisibility)
	fmt.Fprintf(a.out, "\n%s\n", res.Explanation)

	fmt.Fprintln(a.out, "\nMorning routine:")
	for _, step := range res.RoutineMorning {
		fmt.Fprintf(a.out, "- %s\n", step)
	}
	fmt.Fprintln(a.out, "Evening routine:")
	for _, step := range res.RoutineEvening {
		fmt.Fprintf(a.out, "- %s\n", step)
	}
	fmt.Fprintln(a.out, "\n+10 points for completing an analysis!")
	return nil
}

func (a *App) readLifestyleFactors(heading string) (models.LifestyleFactors, error) {
	fmt.Fprintln(a.out, heading)

	sleep, err := GetFloat(a.reader, "Average sleep hours", os.Stdout, 4, 12)
	if err != nil {
		return models.LifestyleFactors{}, err
	}
	water, err := GetFloat(a.reader, "Water intake (liters/day)", os.Stdout, 0.5, 4)
	if err != nil {
		return models.LifestyleFactors{}, err
	}
	stress, err := GetInt(a.reader, "Stress level", os.Stdout, 1, 10)
	if err != nil {
		return models.LifestyleFactors{}, err
	}
	diet, err := GetInt(a.reader, "Diet quality", os.Stdout, 1, 5)
	if err != nil {
		return models.LifestyleFactors{}, err
	}

	return models.LifestyleFactors{
		SleepHours:        sleep,
		WaterIntakeLiters: water,
		StressLevel:       stress,
		DietQuality:       diet,
	}, nil
}
