package validation

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ValidateTitle validates the page title field
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return errors.New("title is required")
	}

	if len(trimmed) > 200 {
		return errors.New("title is too long (max 200 characters)")
	}

	return nil
}

// ValidateDescription validates the meta description field
func ValidateDescription(description string) error {
	trimmed := strings.TrimSpace(description)

	if trimmed == "" {
		return errors.New("description is required")
	}

	if len(trimmed) > 500 {
		return errors.New("description is too long (max 500 characters)")
	}

	return nil
}

// ValidateCanonical validates a canonical link: it must be an absolute
// http or https URL with a host.
func ValidateCanonical(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errors.New("canonical URL is empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("canonical URL is not parseable: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("canonical URL must use http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return errors.New("canonical URL has no host")
	}

	return nil
}

// ValidateNavWeight validates the sidebar sort weight
func ValidateNavWeight(weight int) error {
	if weight < 0 {
		return errors.New("nav_weight must not be negative")
	}
	return nil
}

// dateLayouts are the publish date formats accepted in front-matter.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ParseDate parses a front-matter date value. YAML hands over a time.Time
// for unquoted timestamps and a string otherwise.
func ParseDate(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		for _, layout := range dateLayouts {
			t, err := time.Parse(layout, v)
			if err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("date %q is not a recognized format", v)
	default:
		return time.Time{}, fmt.Errorf("date has unexpected type %T", value)
	}
}
