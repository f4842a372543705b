package server

import (
	"regexp"
	"strconv"
)

var (
	kcalRe    = regexp.MustCompile(`(?i)Calories:\s*(\d+)`)
	proteinRe = regexp.MustCompile(`(?i)Protein:\s*([\d.]+)`)
	carbsRe   = regexp.MustCompile(`(?i)Carbs:\s*([\d.]+)`)
	fatRe     = regexp.MustCompile(`(?i)Fat:\s*([\d.]+)`)
)

type parsedNutrition struct {
	Kcal     float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

// parseDescription extracts numbers from FatSecret description strings
// like "Per 100g - Calories: 22kcal | Fat: 0.34g | Carbs: 3.28g |
// Protein: 3.09g". Missing fields parse as zero.
func parseDescription(desc string) parsedNutrition {
	var p parsedNutrition
	if m := kcalRe.FindStringSubmatch(desc); m != nil {
		v, _ := strconv.Atoi(m[1])
		p.Kcal = float64(v)
	}
	if m := proteinRe.FindStringSubmatch(desc); m != nil {
		p.ProteinG, _ = strconv.ParseFloat(m[1], 64)
	}
	if m := carbsRe.FindStringSubmatch(desc); m != nil {
		p.CarbsG, _ = strconv.ParseFloat(m[1], 64)
	}
	if m := fatRe.FindStringSubmatch(desc); m != nil {
		p.FatG, _ = strconv.ParseFloat(m[1], 64)
	}
	return p
}
