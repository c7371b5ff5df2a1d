package utils

import "regexp"

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// ValidPhone reports whether p is a 10-digit phone number.
func ValidPhone(p string) bool {
	return phonePattern.MatchString(p)
}
