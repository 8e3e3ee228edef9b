package capdata

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDollars converts publisher currency text like "$12,345,678" into a
// whole-dollar amount. A leading minus sign is accepted on either side of
// the currency symbol.
func ParseDollars(text string) (int64, error) {
	s := strings.TrimSpace(text)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing dollar amount %q: %w", text, err)
	}
	if neg {
		v = -v
	}
	return v, nil
}
