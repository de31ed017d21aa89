package units

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Conversion factors between imperial and metric body measurements
const (
	KgPerPound    = 0.453592
	CmPerInch     = 2.54
	InchesPerFoot = 12
)

var (
	feetInchesPattern  = regexp.MustCompile(`(?i)^(\d+)(?:'|ft)(\d+)?(?:"|in)?$`)
	decimalFeetPattern = regexp.MustCompile(`^(\d+)\.(\d+)$`)
	inchesPattern      = regexp.MustCompile(`(?i)^(\d+)(?:"|in)?$`)
)

// ParseHeightToInches converts a free-form height into whole inches.
// Accepted forms: 5'10", 5ft 10in, 5.5 (decimal feet) and 70 / 70" / 70in.
// Whitespace is ignored. ok is false when the input matches none of them.
func ParseHeightToInches(s string) (inches int, ok bool) {
	compact := strings.Join(strings.Fields(s), "")
	if compact == "" {
		return 0, false
	}

	if m := feetInchesPattern.FindStringSubmatch(compact); m != nil {
		feet, _ := strconv.Atoi(m[1])
		rest := 0
		if m[2] != "" {
			rest, _ = strconv.Atoi(m[2])
		}
		return feet*InchesPerFoot + rest, true
	}

	if m := decimalFeetPattern.FindStringSubmatch(compact); m != nil {
		feet, _ := strconv.Atoi(m[1])
		fraction, err := strconv.ParseFloat("0."+m[2], 64)
		if err != nil {
			return 0, false
		}
		return feet*InchesPerFoot + int(math.Round(fraction*InchesPerFoot)), true
	}

	if m := inchesPattern.FindStringSubmatch(compact); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		return n, true
	}

	return 0, false
}

// FormatHeight renders whole inches in the feet'inches" display form
func FormatHeight(inches int) string {
	return fmt.Sprintf("%d'%d\"", inches/InchesPerFoot, inches%InchesPerFoot)
}

// PoundsToKg converts pounds to kilograms
func PoundsToKg(lbs float64) float64 {
	return lbs * KgPerPound
}

// InchesToCm converts inches to centimeters
func InchesToCm(inches float64) float64 {
	return inches * CmPerInch
}
