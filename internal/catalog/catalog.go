// Package catalog holds the built-in quick-add food templates and
// activity reference data.
package catalog

import (
	"strings"

	"github.com/Artemoon13/health-os/internal/model"
)

type FoodTemplate struct {
	Name     string
	Kcal     float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

var Foods = []FoodTemplate{
	{Name: "Chicken Breast 100g", Kcal: 165, ProteinG: 31, CarbsG: 0, FatG: 3.6},
	{Name: "White Rice 100g", Kcal: 130, ProteinG: 2.7, CarbsG: 28, FatG: 0.3},
	{Name: "Egg (1 large)", Kcal: 72, ProteinG: 6, CarbsG: 0.4, FatG: 5},
	{Name: "Oats 100g", Kcal: 389, ProteinG: 17, CarbsG: 66, FatG: 7},
	{Name: "Banana (1 medium)", Kcal: 89, ProteinG: 1.1, CarbsG: 23, FatG: 0.3},
	{Name: "Greek Yogurt 150g", Kcal: 89, ProteinG: 15, CarbsG: 6, FatG: 0.7},
	{Name: "Whey Protein 30g", Kcal: 120, ProteinG: 24, CarbsG: 3, FatG: 1.5},
	{Name: "Salmon 100g", Kcal: 208, ProteinG: 20, CarbsG: 0, FatG: 13},
	{Name: "Avocado (half)", Kcal: 120, ProteinG: 1.5, CarbsG: 6, FatG: 11},
	{Name: "Whole Grain Bread slice", Kcal: 79, ProteinG: 3, CarbsG: 15, FatG: 1},
	{Name: "Cottage Cheese 150g", Kcal: 142, ProteinG: 17, CarbsG: 6, FatG: 5},
	{Name: "Sweet Potato 150g", Kcal: 129, ProteinG: 2.9, CarbsG: 30, FatG: 0.1},
	{Name: "Almonds 30g", Kcal: 174, ProteinG: 6, CarbsG: 6, FatG: 15},
	{Name: "Tuna in water 85g", Kcal: 109, ProteinG: 24, CarbsG: 0, FatG: 2.5},
	{Name: "Broccoli 100g", Kcal: 34, ProteinG: 2.8, CarbsG: 7, FatG: 0.4},
	{Name: "Olive Oil 1 tbsp", Kcal: 119, ProteinG: 0, CarbsG: 0, FatG: 14},
	{Name: "Milk 200ml", Kcal: 99, ProteinG: 6.6, CarbsG: 9.5, FatG: 4},
	{Name: "Pasta 100g (dry)", Kcal: 357, ProteinG: 13, CarbsG: 71, FatG: 1.5},
	{Name: "Black Beans 100g", Kcal: 132, ProteinG: 8.9, CarbsG: 24, FatG: 0.5},
	{Name: "Protein Bar (generic)", Kcal: 200, ProteinG: 20, CarbsG: 22, FatG: 7},
}

var ActivityTypes = []string{
	"Strength Training",
	"Running",
	"Cycling",
	"HIIT",
	"Swimming",
	"Walking",
	"Yoga",
	"Boxing",
}

// kcal burned per minute at each intensity.
var intensityMultiplier = map[model.Intensity]float64{
	model.IntensityLight:    4,
	model.IntensityModerate: 7,
	model.IntensityHigh:     10,
}

// KcalBurned estimates calories for an activity from its duration and
// intensity. Unknown intensities count as zero.
func KcalBurned(durationMin int, intensity model.Intensity) float64 {
	return float64(durationMin) * intensityMultiplier[intensity]
}

// FindFood returns the first template whose name contains the query,
// case-insensitively.
func FindFood(query string) (FoodTemplate, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return FoodTemplate{}, false
	}
	for _, f := range Foods {
		if strings.Contains(strings.ToLower(f.Name), q) {
			return f, true
		}
	}
	return FoodTemplate{}, false
}
