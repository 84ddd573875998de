package identity

import (
	"regexp"
	"strconv"
)

// Country is the display name of a country whose national ID format is
// recognised. The display name doubles as the lookup key for country
// metadata and the leader table.
type Country string

const (
	Unknown      Country = "Unknown"
	SouthAfrica  Country = "South Africa"
	UnitedStates Country = "United States"
	India        Country = "India"
	China        Country = "China"
)

// String returns the display name.
func (c Country) String() string { return string(c) }

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// format describes one structural ID pattern.
type format struct {
	country   Country
	isoCode   string
	pattern   *regexp.Regexp
	centroid  Coordinates
	birthYear func(id string) (int, bool)
}

// formats is evaluated in order; the first match wins. The patterns are
// disjoint by length and separator shape.
var formats = []format{
	{
		country:   SouthAfrica,
		isoCode:   "ZA",
		pattern:   regexp.MustCompile(`^\d{13}$`),
		centroid:  Coordinates{Lat: -30, Lon: 25},
		birthYear: southAfricanBirthYear,
	},
	{
		country:  UnitedStates,
		isoCode:  "US",
		pattern:  regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`),
		centroid: Coordinates{Lat: 37.0902, Lon: -95.7129},
	},
	{
		country:  India,
		isoCode:  "IN",
		pattern:  regexp.MustCompile(`^\d{12}$`),
		centroid: Coordinates{Lat: 20.5937, Lon: 78.9629},
	},
	{
		country:   China,
		isoCode:   "CN",
		pattern:   regexp.MustCompile(`^\d{18}$`),
		centroid:  Coordinates{Lat: 35.8617, Lon: 104.1954},
		birthYear: chineseBirthYear,
	},
}

// centuryPivot splits two-digit years: yy > pivot is 19yy, otherwise 20yy.
const centuryPivot = 30

func southAfricanBirthYear(id string) (int, bool) {
	yy, err := strconv.Atoi(id[:2])
	if err != nil {
		return 0, false
	}
	if yy > centuryPivot {
		return 1900 + yy, true
	}
	return 2000 + yy, true
}

func chineseBirthYear(id string) (int, bool) {
	year, err := strconv.Atoi(id[6:10])
	if err != nil {
		return 0, false
	}
	return year, true
}

// SupportedCountries lists the countries with a recognised ID format, in
// matching order.
func SupportedCountries() []Country {
	out := make([]Country, 0, len(formats))
	for _, f := range formats {
		out = append(out, f.country)
	}
	return out
}

// ISOCode returns the ISO 3166-1 alpha-2 code for a supported country, or ""
// for Unknown and anything unrecognised.
func ISOCode(c Country) string {
	for _, f := range formats {
		if f.country == c {
			return f.isoCode
		}
	}
	return ""
}
