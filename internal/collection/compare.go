package collection

import (
	"strconv"
	"strings"
)

// NaturalCompare compares two strings numerically when both are integers and
// lexically otherwise, so "9" sorts before "10".
func NaturalCompare(a, b string) int {
	x, errA := strconv.ParseInt(a, 10, 64)
	y, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	return strings.Compare(a, b)
}
