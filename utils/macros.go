package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseMacro normalizes a macro quantity that may arrive as a plain number or
// as a number with a trailing gram suffix ("12g", "12.4 g"). The suffix is
// stripped and never stored; values round to the nearest integer.
func ParseMacro(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimRight(s, "gG"))
	if s == "" {
		return 0, fmt.Errorf("empty macro value %q", raw)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid macro value %q", raw)
	}
	return int(math.Round(f)), nil
}
