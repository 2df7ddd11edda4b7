package utils

import "strconv"

// SiUnits formats number with a metric suffix, for example hash rates: SiUnits(1234567, 2) + "H/s" is "1.23 MH/s"
func SiUnits(number float64, decimals int) string {
	if number >= 1000000000000 {
		return strconv.FormatFloat(number/1000000000000, 'f', decimals, 64) + " T"
	} else if number >= 1000000000 {
		return strconv.FormatFloat(number/1000000000, 'f', decimals, 64) + " G"
	} else if number >= 1000000 {
		return strconv.FormatFloat(number/1000000, 'f', decimals, 64) + " M"
	} else if number >= 1000 {
		return strconv.FormatFloat(number/1000, 'f', decimals, 64) + " K"
	}

	return strconv.FormatFloat(number, 'f', decimals, 64) + " "
}
