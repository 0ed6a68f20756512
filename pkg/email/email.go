// Package email derives a presentable client name from an email address.
// The reminder workflow uses it as a salutation fallback for records
// imported without a subject name.
package email

import (
	"strings"
	"unicode"
)

// DeriveNameFromEmail splits the address's local part on common separators
// and returns (first, last), each capitalized. "sarah.johnson@email.com"
// yields ("Sarah", "Johnson"); an address with no usable local part yields
// ("User", "User") so a salutation never renders empty.
func DeriveNameFromEmail(email string) (string, string) {
	localPart := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		localPart = email[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})

	if len(parts) == 0 {
		return "User", "User"
	}

	first := capitalize(parts[0])
	last := "User"
	if len(parts) > 1 {
		last = capitalize(parts[len(parts)-1])
	}

	return first, last
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
