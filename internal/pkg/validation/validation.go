package validation

import "strings"

// NormalizeEmail lower-cases and trims an email so it can be used as a
// matching key across datasets.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailDomain returns the part after the first "@". The second return is
// false when no "@" is present, i.e. the value cannot participate in
// domain matching.
func EmailDomain(email string) (string, bool) {
	i := strings.IndexByte(email, '@')
	if i < 0 || i+1 >= len(email) {
		return "", false
	}
	return email[i+1:], true
}
