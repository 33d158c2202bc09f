// Package validation provides input format checks used by the repository
// layer to reject malformed values before any query is built. Every check
// is a pure predicate; none of them touches the database.
//
// Sanitization here is defense-in-depth only. The actual injection defense
// is that repositories pass user values exclusively as bound parameters.
package validation

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,50}$`)
	sanitizeRegex = regexp.MustCompile(`[';"\\]`)

	// Address grammars per supported currency.
	addressRegex = map[string]*regexp.Regexp{
		"BTC":  regexp.MustCompile(`^(bc1|[13])[a-zA-HJ-NP-Z0-9]{25,39}$`),
		"ETH":  regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`),
		"LTC":  regexp.MustCompile(`^[LM3][a-km-zA-HJ-NP-Z1-9]{26,33}$`),
		"DOGE": regexp.MustCompile(`^D[5-9A-HJ-NP-U][1-9A-HJ-NP-Za-km-z]{32}$`),
		"XRP":  regexp.MustCompile(`^r[0-9a-zA-Z]{24,34}$`),
	}

	likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
)

// ValidateUUID reports whether value is a canonical UUID string
// (36 characters, hyphenated, hex).
func ValidateUUID(value string) bool {
	if len(value) != 36 {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}

// ValidateEmail reports whether email looks like local@domain.tld with a
// TLD of at least two letters.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateUsername reports whether username is 3-50 characters of
// alphanumerics, dot, underscore or hyphen.
func ValidateUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

// ValidateCryptoAddress reports whether address matches the given
// currency's address grammar. When currency is empty or unknown the
// address is accepted if it matches any supported grammar; withdrawal
// destinations are checked before the owning wallet's currency is known,
// so the permissive mode is intentional.
func ValidateCryptoAddress(address, currency string) bool {
	if re, ok := addressRegex[currency]; ok {
		return re.MatchString(address)
	}
	for _, re := range addressRegex {
		if re.MatchString(address) {
			return true
		}
	}
	return false
}

// IsSupportedCurrency reports whether a currency has a known address
// grammar. Wallet creation requires a supported currency.
func IsSupportedCurrency(currency string) bool {
	_, ok := addressRegex[currency]
	return ok
}

// SanitizeString strips quote, backslash and semicolon characters from
// free-text input. Defense-in-depth only, never a substitute for bound
// parameters.
func SanitizeString(value string) string {
	return sanitizeRegex.ReplaceAllString(value, "")
}

// EscapeLike escapes LIKE wildcards so a search term matches literally
// when embedded in a pattern.
func EscapeLike(value string) string {
	return likeEscaper.Replace(value)
}
