package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatCurrency formata o valor em reais, ex.: R$ 12.345,67
func FormatCurrency(f float64) string {
	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	cents := int64(math.Round(f * 100))
	integer := strconv.FormatInt(cents/100, 10)

	var grouped strings.Builder
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped.String(), cents%100)
}
