package utils

import "errors"

var ErrInvalidHeight = errors.New("height must be greater than zero")

// CalculateBMI expects height in meters and weight in kilograms. A
// non-positive height is rejected here so division by zero never turns into
// an Inf/NaN that leaks into stored records.
func CalculateBMI(weightKg, heightM float64) (float64, error) {
	if heightM <= 0 {
		return 0, ErrInvalidHeight
	}
	return weightKg / (heightM * heightM), nil
}

// TierForBMI maps a BMI value onto the fixed recommendation tiers. Both the
// 18.5 and 24.9 boundaries belong to the Normal tier.
func TierForBMI(bmi float64) uint {
	switch {
	case bmi < 18.5:
		return 1 // Underweight
	case bmi <= 24.9:
		return 2 // Normal
	default:
		return 3 // Overweight
	}
}
