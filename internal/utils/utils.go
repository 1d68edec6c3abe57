package utils

import (
	"fmt"
	"math"
	"mime"
	"regexp"
	"strings"
)

// secondsPerMinute is the divisor for track duration formatting.
const secondsPerMinute = 60

var (
	// invalidCharsPattern includes ASCII control characters (0-31) and Windows-restricted characters: < > : " / \ | ? *.
	//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
	invalidCharsPattern = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

	// textContentTypePatterns is a slice of regular expressions that match content types
	// considered to be text-based. This includes "text/*" and "application/json".
	//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
	textContentTypePatterns = []*regexp.Regexp{
		regexp.MustCompile("^text/.+"),
		regexp.MustCompile("^application/json$"),
	}

	// windowsReservedNames is a map of filenames that are reserved on Windows systems.
	// These names are case-insensitive and cannot be used as filenames.
	//nolint:gochecknoglobals // This is an immutable map used as a constant for validation purposes.
	windowsReservedNames = map[string]struct{}{
		"CON":  {},
		"PRN":  {},
		"AUX":  {},
		"NUL":  {},
		"COM1": {},
		"COM2": {},
		"COM3": {},
		"COM4": {},
		"COM5": {},
		"COM6": {},
		"COM7": {},
		"COM8": {},
		"COM9": {},
		"LPT1": {},
		"LPT2": {},
		"LPT3": {},
		"LPT4": {},
		"LPT5": {},
		"LPT6": {},
		"LPT7": {},
		"LPT8": {},
		"LPT9": {},
	}
)

// SafeUint64ToInt64 converts a uint64 value to an int64 safely,
// ensuring that the value does not exceed the maximum limit of int64.
func SafeUint64ToInt64(val uint64) int64 {
	if val > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(val)
}

// FormatTrackDuration renders a duration in seconds as "m:ss",
// e.g., 125 -> "2:05", 59 -> "0:59", 0 -> "0:00".
// Negative durations are treated as zero.
func FormatTrackDuration(totalSeconds int64) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}

	minutes := totalSeconds / secondsPerMinute
	seconds := totalSeconds % secondsPerMinute

	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// SanitizeFilename sanitizes a filename to be valid on both Windows and Unix-like systems.
// It removes or replaces invalid characters, handles Windows reserved names, and ensures the filename is not empty.
func SanitizeFilename(name string) string {
	if name == "" {
		return ""
	}

	result := invalidCharsPattern.ReplaceAllString(name, "_")

	// Extract base filename (without extension) for comparison.
	baseName := result
	if dotIndex := strings.LastIndex(result, "."); dotIndex != -1 {
		baseName = result[:dotIndex]
	}

	// If base name is a Windows reserved name, prepend an underscore.
	if _, ok := windowsReservedNames[strings.ToUpper(baseName)]; ok {
		result = "_" + result
	}

	// Remove trailing dots from the filename.
	result = strings.TrimRight(result, ".")

	// Ensure the filename is not empty.
	if result == "" {
		result = "_"
	}

	return result
}

// IsTextContentType checks if the given content type represents a text-based format.
// It supports common text content types like "text/*" and "application/json".
// It also checks that the charset, if present, is either "utf-8" or "us-ascii".
func IsTextContentType(contentType string) bool {
	parsedType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, pattern := range textContentTypePatterns {
		if !pattern.MatchString(parsedType) {
			continue
		}

		charset := strings.ToLower(params["charset"])

		return charset == "" || charset == "utf-8" || charset == "us-ascii"
	}

	return false
}

// Map applies a transformation function to each element of a slice and returns a new slice with the results.
func Map[E, S any](v []E, transformFunc func(E) S) []S {
	result := make([]S, len(v))
	for i := range v {
		result[i] = transformFunc(v[i])
	}

	return result
}
