package sizing

import "github.com/vastra/commerce-core/internal/domain"

// Per-category size tables. Order inside each chart is significant:
// neighbouring height ranges share their boundary (a 165cm customer fits
// both S and M for tshirts) and the first matching entry wins.
func defaultCharts() []domain.SizeChart {
	return []domain.SizeChart{
		{
			Category: "tshirt",
			Sizes: []domain.SizeRange{
				{Label: "S", HeightMin: 150, HeightMax: 165, Measure: "chest", MeasureValue: "36-38"},
				{Label: "M", HeightMin: 165, HeightMax: 175, Measure: "chest", MeasureValue: "38-40"},
				{Label: "L", HeightMin: 175, HeightMax: 185, Measure: "chest", MeasureValue: "40-42"},
				{Label: "XL", HeightMin: 185, HeightMax: 195, Measure: "chest", MeasureValue: "42-44"},
			},
		},
		{
			Category: "hoodie",
			Sizes: []domain.SizeRange{
				{Label: "S", HeightMin: 150, HeightMax: 165, Measure: "chest", MeasureValue: "36-38"},
				{Label: "M", HeightMin: 165, HeightMax: 175, Measure: "chest", MeasureValue: "38-40"},
				{Label: "L", HeightMin: 175, HeightMax: 185, Measure: "chest", MeasureValue: "40-42"},
				{Label: "XL", HeightMin: 185, HeightMax: 195, Measure: "chest", MeasureValue: "42-44"},
			},
		},
		{
			Category: "jeans",
			Sizes: []domain.SizeRange{
				{Label: "28", HeightMin: 150, HeightMax: 160, Measure: "waist", MeasureValue: "28"},
				{Label: "30", HeightMin: 160, HeightMax: 170, Measure: "waist", MeasureValue: "30"},
				{Label: "32", HeightMin: 170, HeightMax: 180, Measure: "waist", MeasureValue: "32"},
				{Label: "34", HeightMin: 180, HeightMax: 190, Measure: "waist", MeasureValue: "34"},
				{Label: "36", HeightMin: 190, HeightMax: 200, Measure: "waist", MeasureValue: "36"},
			},
		},
		{
			Category: "shoes",
			Sizes: []domain.SizeRange{
				{Label: "7", HeightMin: 150, HeightMax: 165, Measure: "foot_length", MeasureValue: "24-25cm"},
				{Label: "8", HeightMin: 160, HeightMax: 170, Measure: "foot_length", MeasureValue: "25-26cm"},
				{Label: "9", HeightMin: 170, HeightMax: 180, Measure: "foot_length", MeasureValue: "26-27cm"},
				{Label: "10", HeightMin: 180, HeightMax: 190, Measure: "foot_length", MeasureValue: "27-28cm"},
				{Label: "11", HeightMin: 190, HeightMax: 200, Measure: "foot_length", MeasureValue: "28-29cm"},
			},
		},
		{
			Category: "winter",
			Sizes: []domain.SizeRange{
				{Label: "S", HeightMin: 150, HeightMax: 165, Measure: "chest", MeasureValue: "36-38"},
				{Label: "M", HeightMin: 165, HeightMax: 175, Measure: "chest", MeasureValue: "38-40"},
				{Label: "L", HeightMin: 175, HeightMax: 185, Measure: "chest", MeasureValue: "40-42"},
				{Label: "XL", HeightMin: 185, HeightMax: 195, Measure: "chest", MeasureValue: "42-44"},
			},
		},
	}
}
