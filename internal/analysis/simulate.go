package analysis

import "github.com/mkazarin/skinaid/internal/models"

// SimulationResult is the output of the lifestyle delta simulator: a
// deterministic estimate of how habit changes would move the score.
type SimulationResult struct {
	CurrentScore   int
	OptimizedScore int
	Delta          int
	Actions        []string
}

// Simulate estimates the score under the current habits against an
// optimized target. The two estimates use different reference habits and
// clamp ranges, so the optimized score reads as an attainable ceiling.
// Fractional estimates are truncated, not rounded, before clamping.
func Simulate(current, target models.LifestyleFactors) SimulationResult {
	const scoreBase = 70

	curDelta := (6-current.SleepHours)*2 +
		(2.5-current.WaterIntakeLiters)*3 +
		(float64(current.StressLevel)-5)*1.5 +
		(3-float64(current.DietQuality))*2
	currentScore := clamp(int(scoreBase-curDelta), 50, 90)

	optDelta := (8-target.SleepHours)*2 +
		(3.5-target.WaterIntakeLiters)*3 +
		(float64(target.StressLevel)-5)*1.5 +
		(4-float64(target.DietQuality))*2
	optimizedScore := clamp(int(scoreBase-optDelta), 70, 99)

	var actions []string
	if target.SleepHours > current.SleepHours {
		actions = append(actions, "Increase sleep to boost skin repair.")
	}
	if target.WaterIntakeLiters > current.WaterIntakeLiters {
		actions = append(actions, "Increase water intake for better plumpness.")
	}
	if target.StressLevel < current.StressLevel {
		actions = append(actions, "Reduce stress with a daily 10-minute mindfulness practice.")
	}
	if target.DietQuality > current.DietQuality {
		actions = append(actions, "Focus on whole foods and anti-inflammatory ingredients.")
	}

	return SimulationResult{
		CurrentScore:   currentScore,
		OptimizedScore: optimizedScore,
		Delta:          optimizedScore - currentScore,
		Actions:        actions,
	}
}
