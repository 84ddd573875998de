// Package identity classifies raw national ID strings by structural shape.
// Check digits are not verified.
package identity

import (
	"strconv"
	"strings"
	"time"
)

// AgeUnknown is reported when the matched format encodes no birth year.
const AgeUnknown = "Unknown"

// Record is the immutable result of classifying a raw ID.
// Invariant: !Valid <=> Country == Unknown <=> Lat == 0 && Lon == 0.
type Record struct {
	RawID     string  `json:"rawId"`
	Country   Country `json:"country"`
	ISOCode   string  `json:"isoCode,omitempty"`
	BirthYear *int    `json:"birthYear,omitempty"`
	Valid     bool    `json:"valid"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
}

// Classify maps a raw ID to a Record. It is deterministic, total and
// side-effect free. Surrounding whitespace is ignored.
func Classify(rawID string) Record {
	id := strings.TrimSpace(rawID)

	for _, f := range formats {
		if !f.pattern.MatchString(id) {
			continue
		}

		rec := Record{
			RawID:   id,
			Country: f.country,
			ISOCode: f.isoCode,
			Valid:   true,
			Lat:     f.centroid.Lat,
			Lon:     f.centroid.Lon,
		}
		if f.birthYear != nil {
			if year, ok := f.birthYear(id); ok {
				rec.BirthYear = &year
			}
		}
		return rec
	}

	return Record{RawID: id, Country: Unknown}
}

// Coordinates returns the record's centroid.
func (r Record) Coordinates() Coordinates {
	return Coordinates{Lat: r.Lat, Lon: r.Lon}
}

// HasBirthYear reports whether the matched format encoded a birth year.
func (r Record) HasBirthYear() bool {
	return r.BirthYear != nil
}

// Age returns currentYear - birthYear. ok is false when no birth year is
// known.
func (r Record) Age(now time.Time) (age int, ok bool) {
	if r.BirthYear == nil {
		return 0, false
	}
	return now.Year() - *r.BirthYear, true
}

// AgeLabel renders Age for display, falling back to AgeUnknown.
func (r Record) AgeLabel(now time.Time) string {
	age, ok := r.Age(now)
	if !ok {
		return AgeUnknown
	}
	return strconv.Itoa(age)
}
