// Package gamify implements the point ledger and the per-day completion
// state machine. All awarding paths are additive; finalized points are never
// clawed back.
package gamify

import (
	"time"

	"github.com/mkazarin/skinaid/internal/models"
)

const (
	// AnalysisPoints are granted for every completed analysis, including
	// repeats on the same day.
	AnalysisPoints = 10
	// RoutineCompletionPoints are granted at most once per date, when the
	// routine finalizes with every step checked.
	RoutineCompletionPoints = 5
	// CheckerTaskPoints is the per-task value of the daily checklist score.
	CheckerTaskPoints = 5

	maxStreakLookback = 100
)

// DateKey formats t as the canonical per-day key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// AwardAnalysis credits the flat per-analysis award.
func AwardAnalysis(rec *models.UserRecord) int {
	rec.Points += AnalysisPoints
	return AnalysisPoints
}

// RoutineResult reports what a routine finalization did.
type RoutineResult struct {
	AlreadyFinalized bool
	IsComplete       bool
	PointsAwarded    int
}

// FinalizeRoutine locks in the routine step state for one date. A date that
// was finalized complete stays finalized; an incomplete finalization records
// zero points and may be finalized again later the same day. Completion
// requires at least one routine step to exist and every step to be checked.
func FinalizeRoutine(rec *models.UserRecord, date string, morningSteps, eveningSteps int) RoutineResult {
	day := rec.Day(date)
	if day.IsComplete || day.PointsAwarded > 0 {
		return RoutineResult{AlreadyFinalized: true, IsComplete: day.IsComplete, PointsAwarded: day.PointsAwarded}
	}

	totalSteps := morningSteps + eveningSteps
	completed := countChecked(day.Morning) + countChecked(day.Evening)
	complete := totalSteps > 0 && completed == totalSteps

	day.IsComplete = complete
	if complete {
		day.PointsAwarded = RoutineCompletionPoints
		rec.Points += RoutineCompletionPoints
	}
	return RoutineResult{IsComplete: complete, PointsAwarded: day.PointsAwarded}
}

// CheckerResult reports what a checker finalization did.
type CheckerResult struct {
	Score         int
	Delta         int
	PointsAwarded int
}

// FinalizeChecker scores the daily checklist and awards the positive delta
// against the date's recorded high-water mark. A lower score than previously
// finalized keeps the new task state but neither deducts points nor lowers
// the mark; an unchanged score is a no-op.
func FinalizeChecker(rec *models.UserRecord, date string) CheckerResult {
	day := rec.Day(date)

	score := CheckerTaskPoints * countChecked(day.Checker)
	delta := score - day.CheckerPointsAwarded

	res := CheckerResult{Score: score, Delta: delta}
	if delta > 0 {
		rec.Points += delta
		day.CheckerPointsAwarded = score
		res.PointsAwarded = delta
	}
	return res
}

// Streak counts consecutive complete dates ending yesterday. Today is never
// counted, even when already finalized complete, and the walk stops after
// 100 days.
func Streak(rec *models.UserRecord, now time.Time) int {
	streak := 0
	for i := 1; i < maxStreakLookback; i++ {
		key := DateKey(now.AddDate(0, 0, -i))
		day, ok := rec.DailyCompletion[key]
		if !ok || day == nil || !day.IsComplete {
			break
		}
		streak++
	}
	return streak
}

func countChecked(m map[string]bool) int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}
