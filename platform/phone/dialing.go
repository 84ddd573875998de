// Package phone provides phone numbering utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DialingCode returns the international dialing prefix for an ISO 3166-1
// alpha-2 region, e.g. "ZA" -> "+27". Unknown regions yield "".
func DialingCode(region string) string {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		return ""
	}

	code := phonenumbers.GetCountryCodeForRegion(region)
	if code == 0 {
		return ""
	}

	return "+" + strconv.Itoa(code)
}
