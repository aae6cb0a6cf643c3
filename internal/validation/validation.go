package validation

import (
	"fmt"
	"strconv"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// ParseLimit parses the ?limit= query value, applying the default when the
// value is empty and clamping it to a sane ceiling.
func ParseLimit(value string) (int, error) {
	if value == "" {
		return defaultListLimit, nil
	}

	limit, err := strconv.Atoi(value)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("limit must be a positive integer")
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	return limit, nil
}

// ParseID parses a numeric path identifier.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id must be a positive integer")
	}
	return id, nil
}
