package crypto

import "strings"

// maskedPlaceholder is returned for secrets too short to safely reveal a tail.
const maskedPlaceholder = "****"

// MaskSecret renders a secret for API responses and logs: the last four
// characters preceded by asterisks, or a fixed placeholder for short values.
// The full plaintext is shown exactly once, at creation time.
func MaskSecret(secret string) string {
	if len(secret) <= 8 {
		return maskedPlaceholder
	}
	return strings.Repeat("*", 4) + secret[len(secret)-4:]
}

// MaskStored renders a stored (encrypted) credential field for API responses
// without decrypting it: set fields show the placeholder, unset fields show
// empty.
func MaskStored(ciphertext []byte) string {
	if len(ciphertext) == 0 {
		return ""
	}
	return maskedPlaceholder
}
