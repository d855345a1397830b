package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"leftpad/internal/pad"

	"github.com/pkg/errors"
)

var decimalPattern = regexp.MustCompile(`^[+-]?[0-9]*(\.[0-9]*)?$`)

// PadNumber formats num with its integer part zero-padded to width, preserving original digits
func PadNumber(num string, width int) (string, error) {
	str := strings.TrimSpace(num)

	f, err := strconv.ParseFloat(str, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return "", errors.Wrapf(err, "invalid number %q", num)
	}
	if math.IsNaN(f) || (err == nil && math.IsInf(f, 0)) {
		return "", errors.Errorf("number must be finite: %q", num)
	}

	// exponent and hex forms are rendered as plain decimals first
	if !decimalPattern.MatchString(str) {
		if err != nil {
			return "", errors.Wrapf(err, "invalid number %q", num)
		}
		str = strconv.FormatFloat(f, 'f', -1, 64)
	}

	// Keep the sign out of the padded digits
	sign := ""
	if str[0] == '-' || str[0] == '+' {
		sign, str = str[:1], str[1:]
	}

	intPart, decimals, hasDecimals := strings.Cut(str, ".")
	intPart = pad.Left(intPart, width, '0')

	// Reconstruct number with original decimal part if it exists
	if hasDecimals {
		return sign + intPart + "." + decimals, nil
	}
	return sign + intPart, nil
}
