package parse

import (
	"fmt"
	"strings"
	"time"

	"hostel-management-backend/internal/model"
)

// Date parses a calendar day. Both "2024-01-31" and full RFC3339
// timestamps are accepted; the UTC day of a timestamp is used.
func Date(raw string) (model.Date, error) {
	s := strings.TrimSpace(raw)
	if t, err := time.Parse(model.DateLayout, s); err == nil {
		return model.NewDate(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return model.NewDate(t), nil
	}
	return model.Date{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", raw)
}

// OptionalDate parses raw when it is non-nil and non-blank.
func OptionalDate(raw *string) (*model.Date, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	d, err := Date(*raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
