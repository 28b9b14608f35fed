package shipment

import (
	"fmt"
	"regexp"
	"strconv"
)

// NumberPattern matches generated shipment numbers.
var NumberPattern = regexp.MustCompile(`^SH\d+$`)

// NextNumber returns the shipment number following last, where last is
// the lexicographically greatest stored number matching SH\d+. An empty
// last starts the sequence at SH00000001.
func NextNumber(last string) string {
	if last == "" || !NumberPattern.MatchString(last) {
		return "SH00000001"
	}
	n, err := strconv.Atoi(last[2:])
	if err != nil {
		return "SH00000001"
	}
	return fmt.Sprintf("SH%08d", n+1)
}
