package plot

import (
	"strconv"
	"strings"

	"github.com/smallyu/go-ecplot/pkg/ecc"
)

// ValidateLoopCount checks that n is a usable enumeration bound.
func ValidateLoopCount(n int) error {
	if n < 1 || n > ecc.MaxLoops {
		return ecc.NewError("loops", ecc.InvalidLoopCount, "%d not in [1, %d]", n, ecc.MaxLoops)
	}
	return nil
}

// ParseLoopCount parses and validates a user supplied loop count.
func ParseLoopCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ecc.NewError("loops", ecc.InvalidLoopCount, "%q is not an integer", s)
	}
	if err := ValidateLoopCount(n); err != nil {
		return 0, err
	}
	return n, nil
}
