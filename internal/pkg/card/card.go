// Package card validates presented card numbers and expiry dates. It is
// pure: it gates the link-card mutation but never performs it.
package card

import (
	"regexp"
	"strings"
	"time"

	"fastpay-network/internal/core/domain"
)

var (
	digitsOnly     = regexp.MustCompile(`^\d+$`)
	visaPrefix     = regexp.MustCompile(`^4`)
	mastercard5x   = regexp.MustCompile(`^5[1-5]`)
	mastercard2srs = regexp.MustCompile(`^(222[1-9]|22[3-9]\d|2[3-6]\d{2}|27[01]\d|2720)`)
)

// Validate runs the Luhn checksum over a presented card number and
// classifies its brand. Whitespace is stripped; non-digit input or fewer
// than 13 digits is rejected regardless of checksum.
func Validate(number string) (bool, domain.CardBrand) {
	sanitized := strings.ReplaceAll(number, " ", "")
	if !digitsOnly.MatchString(sanitized) || len(sanitized) < 13 {
		return false, domain.BrandUnknown
	}

	sum := 0
	double := false
	for i := len(sanitized) - 1; i >= 0; i-- {
		digit := int(sanitized[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0, Brand(sanitized)
}

// Brand classifies a sanitized card number by prefix
func Brand(sanitized string) domain.CardBrand {
	switch {
	case visaPrefix.MatchString(sanitized):
		return domain.BrandVisa
	case mastercard5x.MatchString(sanitized) || mastercard2srs.MatchString(sanitized):
		return domain.BrandMastercard
	default:
		return domain.BrandUnknown
	}
}

// ValidExpiry parses an MM/YY expiry and rejects out-of-range months and
// any date strictly before the current month.
func ValidExpiry(expiry string) bool {
	return validExpiryAt(expiry, time.Now())
}

func validExpiryAt(expiry string, now time.Time) bool {
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 {
		return false
	}
	month, year := atoi(parts[0]), atoi(parts[1])
	if month < 1 || month > 12 || year < 0 {
		return false
	}
	currentYear := now.Year() % 100
	currentMonth := int(now.Month())
	if year < currentYear {
		return false
	}
	if year == currentYear && month < currentMonth {
		return false
	}
	return true
}

// atoi parses a small non-negative integer, returning -1 on bad input
func atoi(s string) int {
	s = strings.TrimSpace(s)
	if s == "" || !digitsOnly.MatchString(s) {
		return -1
	}
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
