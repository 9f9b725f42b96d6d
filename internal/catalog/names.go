package catalog

import (
	"fmt"
	"strings"
	"unicode"
)

const maxKeyLen = 64

func normalizeKey(raw string) (string, error) {
	key := strings.TrimSpace(raw)
	if key == "" {
		return "", fmt.Errorf("%w: key is required", ErrInvalid)
	}
	if len(key) > maxKeyLen {
		return "", fmt.Errorf("%w: key %q is too long (max %d characters)", ErrInvalid, key, maxKeyLen)
	}
	for _, r := range key {
		if isAllowedKeyRune(r) {
			continue
		}
		return "", fmt.Errorf("%w: key %q contains invalid character %q (allowed: letters, digits, '.', '-', '_')", ErrInvalid, key, r)
	}
	return key, nil
}

func isAllowedKeyRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '-', '_', '.':
		return true
	default:
		return false
	}
}
