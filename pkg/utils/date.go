package utils

import "time"

// ParseDate parses an optional yyyy-mm-dd query parameter. Empty input
// returns nil, meaning "no filter".
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
