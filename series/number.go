package series

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numericPrefix matches the leading decimal number of a normalized value.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber converts a locale formatted number ("1.234,56") to a float.
// Grouping dots are dropped and the first decimal comma becomes a point. Empty
// or unparseable values yield zero, a trailing suffix ("12,5%") is ignored.
func ParseNumber(value string) float64 {
	if value == "" {
		return 0
	}

	normalized := strings.ReplaceAll(value, ".", "")
	normalized = strings.Replace(normalized, ",", ".", 1)
	normalized = strings.TrimSpace(normalized)

	parsed, err := strconv.ParseFloat(normalized, 64)
	if err == nil {
		if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0
		}
		return parsed
	}

	prefix := numericPrefix.FindString(normalized)
	if prefix == "" {
		return 0
	}

	parsed, err = strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}

	return parsed
}
