// Package catalog holds the static product marketplace and the explainable
// kit notes that tie saved products back to analysis results.
package catalog

import (
	"fmt"

	"github.com/mkazarin/skinaid/internal/models"
)

// Product is one marketplace entry. The catalog is static and ordered.
type Product struct {
	ID          int
	Name        string
	Price       float64
	Concerns    []string
	Ingredients []string
	Description string
	Link        string
}

// Products is the fixed marketplace catalog.
var Products = []Product{
	{
		ID: 1, Name: "Hydrating Gentle Cleanser", Price: 19.99,
		Concerns:    []string{models.ConcernDryness, models.ConcernSensitivity},
		Ingredients: []string{"Ceramides", "Hyaluronic Acid"},
		Description: "A non-foaming, gentle cleanser that respects the skin barrier.",
		Link:        "https://affiliate.link/cleanser",
	},
	{
		ID: 2, Name: "2% Salicylic Acid Serum", Price: 24.50,
		Concerns:    []string{models.ConcernAcne, models.ConcernOily},
		Ingredients: []string{"Salicylic Acid", "Niacinamide"},
		Description: "Targets blackheads and breakouts, exfoliating deep inside the pores.",
		Link:        "https://affiliate.link/salicylic",
	},
	{
		ID: 3, Name: "Vitamin C Brightening Serum", Price: 45.00,
		Concerns:    []string{models.ConcernPigmentation, models.ConcernWrinkles},
		Ingredients: []string{"Ascorbic Acid", "Vitamin E"},
		Description: "Potent antioxidant that brightens skin and protects against environmental damage.",
		Link:        "https://affiliate.link/vitaminc",
	},
	{
		ID: 4, Name: "Mineral SPF 50 Sunscreen", Price: 29.00,
		Concerns:    []string{"All"},
		Ingredients: []string{"Zinc Oxide", "Titanium Dioxide"},
		Description: "Broad-spectrum mineral filter, no white cast on most skin tones.",
		Link:        "https://affiliate.link/spf",
	},
	{
		ID: 5, Name: "Retinol 0.5% Night Cream", Price: 39.99,
		Concerns:    []string{models.ConcernWrinkles},
		Ingredients: []string{"Retinol", "Peptides"},
		Description: "Powerful night cream to reduce signs of aging.",
		Link:        "https://affiliate.link/retinol",
	},
}

// Find returns the product with the given id, or false when it is not in the
// catalog.
func Find(id int) (Product, bool) {
	for _, p := range Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// FilterByConcern returns the catalog entries tagged with any of the given
// concerns. An empty filter returns the whole catalog.
func FilterByConcern(concerns []string) []Product {
	if len(concerns) == 0 {
		return append([]Product(nil), Products...)
	}
	var out []Product
	for _, p := range Products {
		if anyOverlap(p.Concerns, concerns) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByIngredient returns the products containing any of the given key
// ingredients. An empty filter returns all products.
func FilterByIngredient(products []Product, ingredients []string) []Product {
	if len(ingredients) == 0 {
		return products
	}
	var out []Product
	for _, p := range products {
		if anyOverlap(p.Ingredients, ingredients) {
			out = append(out, p)
		}
	}
	return out
}

func anyOverlap(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// KitNotes explains why the saved kit is (or is not) relevant against the
// most recent analysis: acne coverage matters above 50% risk, dryness
// coverage below a 70 hydration score, and wrinkle coverage when the 90-day
// projection sits below the current score. With no covered concerns at all a
// single gap warning is returned instead.
func KitNotes(kit []models.KitItem, last *models.AnalysisResult) []string {
	if last == nil {
		return nil
	}

	covered := map[string]bool{}
	for _, item := range kit {
		for _, c := range item.Concerns {
			covered[c] = true
		}
	}
	if len(covered) == 0 {
		return []string{"Your kit doesn't seem to cover the main issues identified in your analysis. Consider checking the Marketplace!"}
	}

	var notes []string
	if covered[models.ConcernAcne] && last.AcneRiskPct > 50 {
		notes = append(notes, "Acne: your kit includes acne-targeting products, which is essential given your high acne risk in the last analysis.")
	}
	if covered[models.ConcernDryness] && last.HydrationScore < 70 {
		notes = append(notes, fmt.Sprintf("Dryness/Hydration: products for dryness help address your low hydration score of %d%% found in the analysis.", last.HydrationScore))
	}
	if covered[models.ConcernWrinkles] && last.Projection90 < last.CurrentScore {
		notes = append(notes, "Anti-Aging/Wrinkles: products targeting wrinkles support your long-term skin health, especially when lifestyle factors are negatively impacting your projection.")
	}
	return notes
}
