package dataset

import "github.com/samber/lo"

func isZipPrefix(v any) bool {
	s, ok := v.(string)
	if !ok || len(s) != 5 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isBrazilState(v any) bool {
	s, ok := v.(string)
	return ok && lo.Contains(BrazilStates, s)
}

func isReviewScore(v any) bool {
	n, ok := v.(int64)
	return ok && n >= 1 && n <= 5
}

func isNonNegativeInt(v any) bool {
	n, ok := v.(int64)
	return ok && n >= 0
}

func isNonNegativeFloat(v any) bool {
	f, ok := v.(float64)
	return ok && f >= 0
}
