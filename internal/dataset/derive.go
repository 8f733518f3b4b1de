package dataset

import "csv-refine/internal/frame"

const (
	// Scores at or above this count as a happy review.
	happyScoreFloor = 4
	// Cut off point for light vs heavy packages (cc per kg).
	volumetricCutoff = 5000
)

// Labels produced by the derivation rules.
const (
	SatisfactionHappy   = "happy"
	SatisfactionUnhappy = "not happy"
	HeavinessHeavy      = "Heavy"
	HeavinessLight      = "Light"
	HeavinessUnknown    = "Unknown"
)

func totalValue(r frame.Row) any {
	price, ok := r.Float("price")
	if !ok {
		return nil
	}
	freight, ok := r.Float("freight_value")
	if !ok {
		return nil
	}
	return price + freight
}

func satisfaction(r frame.Row) any {
	score, ok := r.Int("review_score")
	if !ok {
		return nil
	}
	if score >= happyScoreFloor {
		return SatisfactionHappy
	}
	return SatisfactionUnhappy
}

func productVolume(r frame.Row) any {
	length, ok := r.Float("product_length_cm")
	if !ok {
		return nil
	}
	height, ok := r.Float("product_height_cm")
	if !ok {
		return nil
	}
	width, ok := r.Float("product_width_cm")
	if !ok {
		return nil
	}
	return length * height * width
}

// heaviness classifies a product by volumetric density. Zero or missing
// weight cannot be classified and maps to the unknown label; a missing
// volume never exceeds the cutoff and stays light.
func heaviness(r frame.Row) any {
	weight, ok := r.Float("product_weight_g")
	if !ok || weight == 0 {
		return HeavinessUnknown
	}
	volume, ok := r.Float("product_volume_cc")
	if !ok {
		return HeavinessLight
	}
	if volume/(weight/1000) > volumetricCutoff {
		return HeavinessHeavy
	}
	return HeavinessLight
}
