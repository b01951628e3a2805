package validify

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

var (
	// Phone number regex - international format with optional country code
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	// Credit card digits after stripping separators
	digitsRegex = regexp.MustCompile(`^\d+$`)
)

// Email checks that the value is a valid email address per the RFC 5322
// mailbox grammar, tightened for typical web use: a single local@domain pair
// with a dotted, non-empty domain.
func Email() Rule[string] {
	return newRule(KindEmail, func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return false
		}

		addr, err := mail.ParseAddress(value)
		if err != nil {
			return false
		}

		parts := strings.Split(addr.Address, "@")
		if len(parts) != 2 {
			return false
		}

		localPart := parts[0]
		domain := parts[1]

		if localPart == "" {
			return false
		}

		// Domain must contain at least one dot and cannot start/end with dot
		if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
			return false
		}

		for _, part := range strings.Split(domain, ".") {
			if part == "" {
				return false
			}
		}

		return true
	})
}

// URL checks that the value parses as an absolute URL with a scheme and host.
func URL() Rule[string] {
	return newRule(KindURL, func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return false
		}

		u, err := url.ParseRequestURI(value)
		if err != nil {
			return false
		}

		return u.Scheme != "" && u.Host != ""
	})
}

// Phone checks that the value is a valid international phone number.
// Accepts formats like +1234567890, +123456789012345 (E.164 format).
func Phone() Rule[string] {
	return newRule(KindPhone, func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return false
		}
		// Remove spaces and dashes for validation
		cleaned := strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", "")

		// Must be at least 7 digits (minimum valid phone number)
		if len(cleaned) < 7 {
			return false
		}

		return phoneRegex.MatchString(cleaned)
	})
}

// NonControlChar checks that the value contains no Unicode control
// characters.
func NonControlChar() Rule[string] {
	return newRule(KindNonControlChar, func(value string) bool {
		return !strings.ContainsFunc(value, unicode.IsControl)
	})
}

// CreditCard checks that the value is a plausible card number: digits only
// after stripping spaces and dashes, 13-19 digits long, passing the Luhn
// checksum.
func CreditCard() Rule[string] {
	return newRule(KindCreditCard, func(value string) bool {
		cleaned := strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", "")

		if !digitsRegex.MatchString(cleaned) {
			return false
		}

		if len(cleaned) < 13 || len(cleaned) > 19 {
			return false
		}

		// Luhn algorithm, right to left
		sum := 0
		isEven := false
		for i := len(cleaned) - 1; i >= 0; i-- {
			digit := int(cleaned[i] - '0')

			if isEven {
				digit *= 2
				if digit > 9 {
					digit = digit/10 + digit%10
				}
			}

			sum += digit
			isEven = !isEven
		}

		return sum%10 == 0
	})
}

// IP checks that the value parses as an IP address of either family.
func IP() Rule[string] {
	return newRule(KindIP, func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return false
		}
		return net.ParseIP(value) != nil
	})
}

// IPv4 checks that the value parses as an IPv4 address.
func IPv4() Rule[string] {
	return newRule(KindIP, func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return false
		}
		ip := net.ParseIP(value)
		return ip != nil && ip.To4() != nil
	})
}

// IPv6 checks that the value parses as an IPv6 address.
func IPv6() Rule[string] {
	return newRule(KindIP, func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return false
		}
		ip := net.ParseIP(value)
		if ip == nil {
			return false
		}
		// IPv6 addresses can include IPv4-mapped addresses
		return ip.To4() == nil || strings.Contains(value, ":")
	})
}

// UUID checks standard UUID format with pre-validation to avoid expensive
// parsing.
func UUID() Rule[string] {
	return newRule(KindUUID, func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return false
		}

		// Fast rejection: check length and hyphen positions before parsing
		if len(value) != 36 {
			return false
		}

		if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
			return false
		}

		_, err := uuid.Parse(value)
		return err == nil
	})
}
