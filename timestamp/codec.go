// Package timestamp recovers setlist entries from the free-form text of
// video descriptions and comments. Text is scanned line by line for
// timestamp-shaped substrings; each hit yields a (time, song title, artist
// name) record after noise filtering and delimiter splitting.
package timestamp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat indicates a time string that is not two or three
// colon-separated integer components.
var ErrInvalidFormat = errors.New("invalid time format")

// ParseDuration converts a time string ("H:MM:SS", "HH:MM:SS", "M:SS" or
// "MM:SS") to total seconds. The conversion is purely positional; minute and
// second components are not range-checked here, that is a schema concern.
func ParseDuration(s string) (int, error) {
	parts := strings.Split(s, ":")
	nums := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		nums = append(nums, n)
	}

	switch len(nums) {
	case 3:
		return nums[0]*3600 + nums[1]*60 + nums[2], nil
	case 2:
		return nums[0]*60 + nums[1], nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}
