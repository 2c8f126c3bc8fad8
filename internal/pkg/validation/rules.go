package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Campus uid pattern: role prefix followed by digits (stu1001, fac2001, adm3001)
	UIDPattern = `^(stu|fac|adm)\d{3,8}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	UID   *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	UID:   regexp.MustCompile(UIDPattern),
}

// IsValidEmail reports whether the address matches the email pattern
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidUID reports whether the uid matches the campus uid pattern
func IsValidUID(uid string) bool {
	return CompiledPatterns.UID.MatchString(uid)
}

// RolePrefix returns the three-letter role prefix of a campus uid, or ""
// when the uid does not match the pattern.
func RolePrefix(uid string) string {
	if !IsValidUID(uid) {
		return ""
	}
	return uid[:3]
}
