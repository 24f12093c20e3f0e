package analysis

import "github.com/mkazarin/skinaid/internal/models"

// The base routine is fixed: three morning steps and three evening steps.
var (
	baseMorningRoutine = []string{
		"Cleanse: Gentle Hydrating Cleanser",
		"Treat: Vitamin C Serum",
		"Protect: SPF 30+ Sunscreen",
	}
	baseEveningRoutine = []string{
		"Cleanse: Double Cleanse (Oil + Foam)",
		"Treat: Niacinamide Serum",
		"Moisturize: Barrier Repair Cream",
	}
)

const (
	bhaStep      = "Treat: Salicylic Acid (BHA) Serum"
	retinoidStep = "Treat: Retinoid Cream (3x/week)"
)

var productCategories = []string{
	"Hyaluronic Acid Serums",
	"Ceramide Moisturizers",
	"Broad Spectrum Sunscreens",
}

const lifestyleActions = "Focus on stress reduction (daily 10 min meditation). " +
	"Increase water intake to 3L/day. Target 8 hours of sleep."

// Recommend derives the ordered routine step lists and the recommendation
// categories from the self-reported concerns and the computed acne risk.
// Overrides, in precedence order: an acne concern or acne risk above 50
// replaces the evening treat step with a BHA step; a wrinkles concern
// appends a retinoid step to the evening routine.
func Recommend(profile Profile, acneRiskPct int) (morning, evening []string, recs models.Recommendations) {
	morning = append([]string(nil), baseMorningRoutine...)
	evening = append([]string(nil), baseEveningRoutine...)

	if profile.hasConcern(models.ConcernAcne) || acneRiskPct > 50 {
		evening[1] = bhaStep
	}
	if profile.hasConcern(models.ConcernWrinkles) {
		evening = append(evening, retinoidStep)
	}

	recs = models.Recommendations{
		ProductCategories: append([]string(nil), productCategories...),
		LifestyleActions:  lifestyleActions,
	}
	return morning, evening, recs
}
