package utils

import "strings"

// NormalizeEmail lowercases and trims an email address before lookup or
// storage, mirroring the lowercase/trim schema options on the user model.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
