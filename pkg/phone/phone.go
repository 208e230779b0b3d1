package phone

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ttacon/libphonenumber"
)

// CountryPrefix is prefixed to bare 10-digit inputs before dialing out.
const CountryPrefix = "+91"

var reBare10 = regexp.MustCompile(`^\d{10}$`)

// Normalize turns a bare 10-digit mobile into an E.164 string by prefixing
// the fixed country code; inputs already carrying the prefix pass through.
// The result is validated with libphonenumber so provider calls never see a
// number the provider would reject for shape alone.
func Normalize(mobile string) (string, error) {
	m := strings.TrimSpace(mobile)
	if !strings.HasPrefix(m, CountryPrefix) {
		if !reBare10.MatchString(m) {
			return "", fmt.Errorf("mobile must be 10 digits")
		}
		m = CountryPrefix + m
	}
	p, err := libphonenumber.Parse(m, "IN")
	if err != nil {
		return "", err
	}
	if !libphonenumber.IsValidNumber(p) {
		return "", fmt.Errorf("phone number is not valid")
	}
	return libphonenumber.Format(p, libphonenumber.E164), nil
}
