package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/mkazarin/skinaid/internal/models"
)

// Profile carries the self-reported inputs the engines need.
type Profile struct {
	SkinType string
	Concerns []string
}

func (p Profile) hasConcern(concern string) bool {
	for _, c := range p.Concerns {
		if c == concern {
			return true
		}
	}
	return false
}

func (p Profile) isOilyLeaning() bool {
	return p.SkinType == models.SkinTypeOily || p.SkinType == models.SkinTypeCombination
}

func round(v float64) int {
	return int(math.Round(v))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Evaluate computes the bounded skin metrics for one analysis and freezes
// them, together with the routine and recommendations, into an
// AnalysisResult. Identical inputs always yield an identical result except
// for the caller-provided timestamp.
//
// Rounding is to the nearest integer and clamping is applied after
// rounding; both happen exactly once, at creation time.
func Evaluate(feat models.ImageFeatures, lf models.LifestyleFactors, profile Profile, now time.Time) models.AnalysisResult {
	// Lifestyle factors normalized to the unit scale.
	sleepScore := (lf.SleepHours - 5) / 5
	waterScore := lf.WaterIntakeLiters / 4
	stressScore := float64(10-lf.StressLevel) / 10
	dietScore := float64(lf.DietQuality) / 5

	baseImageScore := feat.Brightness*0.4 + (1-feat.Contrast)*0.2
	lifestyleImpact := sleepScore*0.25 + waterScore*0.25 + stressScore*0.35 + dietScore*0.15

	currentScore := clamp(round((baseImageScore*0.4+lifestyleImpact*0.6)*100/feat.Redness), 50, 95)

	hydration := clamp(round((waterScore*0.6+feat.Brightness*0.4)*100), 50, 99)

	oilyBonus := 0.0
	if profile.isOilyLeaning() {
		oilyBonus = 10
	}
	acneRisk := clamp(round((50-float64(currentScore)/2)+oilyBonus+(1-stressScore)*15+(1-dietScore)*10), 10, 90)

	pigmentationRisk := clamp(round(20+(1-baseImageScore)*15+(1-waterScore)*10), 5, 70)

	futureDelta := round((lifestyleImpact - 0.5) * 20)
	proj7 := min(100, currentScore+max(0, futureDelta/3))
	proj30 := min(100, currentScore+max(0, futureDelta))
	proj90 := min(100, currentScore+max(0, futureDelta*2))

	poreVisibility := "Low"
	if profile.isOilyLeaning() || acneRisk > 50 {
		poreVisibility = "High"
	}

	sleepImpact := round((1 - sleepScore) * 100)
	stressImpact := round((1 - stressScore) * 100)

	explanation := fmt.Sprintf(
		"Your score is %d. The image analysis detected a fair quality skin base at %d%% average brightness. "+
			"The most significant factor impacting your score is your stress level, contributing %d%% to the negative impact. "+
			"Improvements in sleep and stress management are projected to increase your score over the next 90 days.",
		currentScore, round(feat.Brightness*100), stressImpact)

	morning, evening, recs := Recommend(profile, acneRisk)

	return models.AnalysisResult{
		Timestamp:           now,
		ImageFeatures:       feat,
		LifestyleFactors:    lf,
		DetectedSkinType:    profile.SkinType,
		CurrentScore:        currentScore,
		Projection7:         proj7,
		Projection30:        proj30,
		Projection90:        proj90,
		Explanation:         explanation,
		HydrationScore:      hydration,
		AcneRiskPct:         acneRisk,
		PigmentationRiskPct: pigmentationRisk,
		PoreVisibility:      poreVisibility,
		SleepImpactPct:      sleepImpact,
		StressImpactPct:     stressImpact,
		Recommendations:     recs,
		RoutineMorning:      morning,
		RoutineEvening:      evening,
	}
}
