package youtube

import (
	"errors"
	"regexp"
	"strconv"
)

// iso8601DurationPattern matches the ISO-8601 durations returned by the Data API,
// e.g., "PT2M5S", "PT59S", "PT1H2M3S".
//
//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
var iso8601DurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ErrInvalidDuration indicates that a duration string is not valid ISO-8601.
var ErrInvalidDuration = errors.New("invalid ISO-8601 duration")

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
)

// ParseISO8601Duration converts an ISO-8601 duration string into seconds.
func ParseISO8601Duration(duration string) (int64, error) {
	match := iso8601DurationPattern.FindStringSubmatch(duration)
	if match == nil {
		return 0, ErrInvalidDuration
	}

	var totalSeconds int64

	if match[1] != "" {
		hours, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			return 0, ErrInvalidDuration
		}

		totalSeconds += hours * secondsPerHour
	}

	if match[2] != "" {
		minutes, err := strconv.ParseInt(match[2], 10, 64)
		if err != nil {
			return 0, ErrInvalidDuration
		}

		totalSeconds += minutes * secondsPerMinute
	}

	if match[3] != "" {
		seconds, err := strconv.ParseInt(match[3], 10, 64)
		if err != nil {
			return 0, ErrInvalidDuration
		}

		totalSeconds += seconds
	}

	return totalSeconds, nil
}
