package domain

// SizeRange maps one size label to an inclusive height interval plus the
// category-specific measurement (chest, waist or foot length).
type SizeRange struct {
	Label        string `json:"size"`
	HeightMin    int    `json:"height_min"`
	HeightMax    int    `json:"height_max"`
	Measure      string `json:"measure"`
	MeasureValue string `json:"measure_value"`
}

// SizeChart is the ordered size table for a category. The order of Sizes is
// significant: overlapping height ranges are resolved first-match-wins.
type SizeChart struct {
	Category string      `json:"category"`
	Sizes    []SizeRange `json:"sizes"`
}

// SizeRecommendation is the advisor's answer for a (category, height) pair.
// Note is empty when the height fell inside a defined range.
type SizeRecommendation struct {
	Size         string `json:"recommended_size"`
	Category     string `json:"category"`
	HeightRange  string `json:"height_range,omitempty"`
	Measure      string `json:"measure,omitempty"`
	MeasureValue string `json:"measure_value,omitempty"`
	Note         string `json:"note,omitempty"`
}
