// Package validator implements the pure input predicates consumed by the
// incident and credential services. The rules mirror the public API
// contract exactly, including the asymmetric latitude bound.
package validator

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{3,}$`)
	emailPattern    = regexp.MustCompile(`^.+@\w+\.\w+`)
	statusPattern   = regexp.MustCompile(`(?i)^(resolved|unresolved|under investigation)$`)
)

// ValidUsername reports whether username starts with a letter, is at least
// 4 characters long and contains only alphanumerics and underscores.
func ValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// ValidEmail reports whether email looks like an address.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPassword reports whether password is at least 5 characters long.
func ValidPassword(password string) bool {
	return len(password) >= 5
}

// ValidComment trims comment and returns it with true when non-empty.
func ValidComment(comment string) (string, bool) {
	comment = strings.TrimSpace(comment)
	return comment, comment != ""
}

// ValidStatus matches status case-insensitively against the allowed set
// and returns the normalized (lowercase) value.
func ValidStatus(status string) (string, bool) {
	if !statusPattern.MatchString(status) {
		return "", false
	}
	return strings.ToLower(status), true
}

// ValidLocation reports whether location is a "lat,long" string made of
// exactly two float tokens with -90 < lat <= 90 and -180 <= long <= 180.
func ValidLocation(location string) bool {
	coordinates := strings.Split(location, ",")
	if len(coordinates) != 2 {
		return false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(coordinates[0]), 64)
	if err != nil {
		return false
	}
	long, err := strconv.ParseFloat(strings.TrimSpace(coordinates[1]), 64)
	if err != nil {
		return false
	}
	return lat > -90 && lat <= 90 && long >= -180 && long <= 180
}
