// Package currency provides parsing of Brazilian-formatted monetary values.
// This is part of the platform layer and contains no business logic.
package currency

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBRL converts a Brazilian-formatted currency string into a float64.
// Accepted inputs: "1.234,56", "R$ 1.234,56", "1234,56", "1234.56", "1234".
// Thousands separators are dots, the decimal separator is a comma; a plain
// decimal point is also accepted because some upstream APIs already return
// machine-formatted numbers.
func ParseBRL(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("empty currency value")
	}

	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = strings.TrimSpace(strings.TrimPrefix(s, "-"))
	}

	if strings.Contains(s, ",") {
		// Brazilian format: dots are thousands separators.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	} else if dots := strings.Count(s, "."); dots > 1 {
		// Multiple dots without a comma: "1.234.567" means 1234567.
		s = strings.ReplaceAll(s, ".", "")
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse currency %q: %w", raw, err)
	}

	if negative {
		value = -value
	}

	return value, nil
}

// ParseBRLOrZero parses like ParseBRL but returns 0 on any failure.
// Aggregations treat unparseable values as zero rather than fatal errors.
func ParseBRLOrZero(raw string) float64 {
	value, err := ParseBRL(raw)
	if err != nil {
		return 0
	}
	return value
}
