package staff

import (
	"regexp"
	"strings"
	"unicode"
)

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// normalizeEmail は local@domain.tld 形式を検証し、小文字化したアドレスを返します。
func normalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if !emailPattern.MatchString(trimmed) {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(trimmed), nil
}

// ValidatePassword はパスワードが 8 文字以上で、大文字・数字・記号をそれぞれ含むか検証します。
func ValidatePassword(raw string) error {
	if len([]rune(raw)) < minPasswordLength {
		return ErrWeakPassword
	}

	var upper, digit, symbol bool
	for _, r := range raw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	if !upper || !digit || !symbol {
		return ErrWeakPassword
	}
	return nil
}
