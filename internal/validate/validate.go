package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Requires a TLD; "foo@bar" is rejected.
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	rePhone = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)
	reID    = regexp.MustCompile(`^[0-9]{1,18}$`)
	reCat   = regexp.MustCompile(`^(grain|beans|livestock|services)$`)
	reStat  = regexp.MustCompile(`^(new|in-progress|completed)$`)
	reSort  = regexp.MustCompile(`^(date-desc|date-asc|title-asc|title-desc)$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 30 {
		return "", false
	}
	return s, rePhone.MatchString(s)
}

// Required trims and enforces a max rune length for a mandatory free-text field.
func Required(s string, max int) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len([]rune(s)) > max {
		return s, false
	}
	return s, true
}

// ID parses a numeric record identifier from a path segment.
func ID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if !reID.MatchString(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return n, err == nil
}

// Category validates the fixed product category set.
func Category(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reCat.MatchString(s)
}

// Status validates the inquiry status enum.
func Status(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reStat.MatchString(s)
}

// Sort validates a list sort key, defaulting to newest-first.
func Sort(s string) string {
	s = strings.TrimSpace(s)
	if !reSort.MatchString(s) {
		return "date-desc"
	}
	return s
}

// Show parses the visible-count cursor for "load more" paging.
func Show(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	if n > 500 {
		return 500
	}
	return n
}
