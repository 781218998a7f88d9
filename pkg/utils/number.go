package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatAmount formata um valor monetário com duas casas decimais (ex: 30 -> "30.00")
func FormatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
