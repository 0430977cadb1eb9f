package analytics

import (
	"strconv"
	"strings"
)

// ParseQuantity turns a raw quantity value from the order document into
// a positive float. The document store hands back numbers, dot-decimal
// strings, or comma-decimal strings depending on how the order was
// typed in. Unparseable or non-positive values report ok=false and the
// caller skips the contribution; nothing ever goes negative and nothing
// throws.
func ParseQuantity(raw interface{}) (float64, bool) {
	var value float64
	switch v := raw.(type) {
	case float64:
		value = v
	case float32:
		value = float64(v)
	case int:
		value = float64(v)
	case int64:
		value = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(v, ",", ".")), 64)
		if err != nil {
			return 0, false
		}
		value = parsed
	default:
		return 0, false
	}
	if value <= 0 {
		return 0, false
	}
	return value, true
}
