package formatting

import (
	"fmt"
	"strconv"
)

// FormatPrice renders a PHP amount with thousands separators,
// e.g. 11500 -> "₱ 11,500".
func FormatPrice(price int) string {
	s := strconv.Itoa(price)
	if price < 0 {
		s = s[1:]
	}

	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	if price < 0 {
		return fmt.Sprintf("₱ -%s", out)
	}
	return fmt.Sprintf("₱ %s", out)
}
