package models

import "time"

// LifestyleFactors are the self-reported daily habit inputs to an analysis.
// Expected ranges: SleepHours 4..12, WaterIntakeLiters 0.5..4.0,
// StressLevel 1..10, DietQuality 1..5.
type LifestyleFactors struct {
	SleepHours        float64 `json:"sleep_hours"`
	WaterIntakeLiters float64 `json:"water_intake"`
	StressLevel       int     `json:"stress_level"`
	DietQuality       int     `json:"diet_quality"`
}

// ImageFeatures are the three scalars extracted from a selfie.
// Brightness is normalized to [0,1].
type ImageFeatures struct {
	Brightness float64 `json:"avg_brightness"`
	Contrast   float64 `json:"contrast"`
	Redness    float64 `json:"redness_factor"`
}

type Recommendations struct {
	ProductCategories []string `json:"product_categories"`
	LifestyleActions  string   `json:"lifestyle_actions"`
}

// AnalysisResult is the immutable value object produced by one analysis.
// Every numeric field is clamped to its documented range at creation time
// and never re-derived afterward.
type AnalysisResult struct {
	Timestamp           time.Time        `json:"timestamp"`
	ImageFeatures       ImageFeatures    `json:"image_features"`
	LifestyleFactors    LifestyleFactors `json:"lifestyle_factors"`
	DetectedSkinType    string           `json:"detected_skin_type"`
	CurrentScore        int              `json:"current_score"`
	Projection7         int              `json:"future_score_proj_7"`
	Projection30        int              `json:"future_score_proj_30"`
	Projection90        int              `json:"future_score_proj_90"`
	Explanation         string           `json:"explanation"`
	HydrationScore      int              `json:"hydration_score"`
	AcneRiskPct         int              `json:"acne_risk_pct"`
	PigmentationRiskPct int              `json:"pigmentation_risk_pct"`
	PoreVisibility      string           `json:"pore_visibility_estimate"`
	SleepImpactPct      int              `json:"sleep_impact_pct"`
	StressImpactPct     int              `json:"stress_impact_pct"`
	Recommendations     Recommendations  `json:"recommendations"`
	RoutineMorning      []string         `json:"routine_morning"`
	RoutineEvening      []string         `json:"routine_evening"`
}
