package identity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyKnownFormats(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		country   Country
		iso       string
		birthYear *int
		lat, lon  float64
	}{
		{"south africa", "8001015009087", SouthAfrica, "ZA", intPtr(1980), -30, 25},
		{"united states", "123-45-6789", UnitedStates, "US", nil, 37.0902, -95.7129},
		{"india", "123456789012", India, "IN", nil, 20.5937, 78.9629},
		{"china", "110101199003077758", China, "CN", intPtr(1990), 35.8617, 104.1954},
		{"surrounding whitespace", "  8001015009087\n", SouthAfrica, "ZA", intPtr(1980), -30, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Classify(tt.raw)

			assert.True(t, rec.Valid)
			assert.Equal(t, strings.TrimSpace(tt.raw), rec.RawID)
			assert.Equal(t, tt.country, rec.Country)
			assert.Equal(t, tt.iso, rec.ISOCode)
			assert.Equal(t, tt.lat, rec.Lat)
			assert.Equal(t, tt.lon, rec.Lon)
			if tt.birthYear == nil {
				assert.Nil(t, rec.BirthYear)
			} else {
				require.NotNil(t, rec.BirthYear)
				assert.Equal(t, *tt.birthYear, *rec.BirthYear)
			}
		})
	}
}

func TestClassifySouthAfricanCenturyWindow(t *testing.T) {
	tests := []struct {
		prefix string
		want   int
	}{
		{"00", 2000},
		{"29", 2029},
		{"30", 2030}, // threshold is strictly greater-than
		{"31", 1931},
		{"99", 1999},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			rec := Classify(tt.prefix + "01015009087")
			require.Equal(t, SouthAfrica, rec.Country)
			require.NotNil(t, rec.BirthYear)
			assert.Equal(t, tt.want, *rec.BirthYear)
		})
	}
}

func TestClassifyChinaUsesFourDigitYearWithoutWindowing(t *testing.T) {
	rec := Classify("440524188001010014")
	require.Equal(t, China, rec.Country)
	require.NotNil(t, rec.BirthYear)
	assert.Equal(t, 1880, *rec.BirthYear)
}

func TestClassifyRejectsEverythingElse(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"1",
		"12345678901",          // 11 digits
		"12345678901234",       // 14 digits
		"1234567890123456789",  // 19 digits
		"12345678901234567",    // 17 digits
		"123456789",            // SSN digits without separators
		"123-456-789",          // wrong SSN grouping
		"123 45 6789",          // wrong SSN separator
		"12-345-6789",
		"800101500908A",        // 13 chars, one non-digit
		"11010119900307775X",   // Chinese checksum letter is not structural here
		"８００１０１５００９０８７", // full-width digits
		"abc-de-fghi",
	}

	for _, raw := range inputs {
		rec := Classify(raw)
		assert.False(t, rec.Valid, "input %q", raw)
		assert.Equal(t, Unknown, rec.Country, "input %q", raw)
		assert.Nil(t, rec.BirthYear, "input %q", raw)
		assert.Zero(t, rec.Lat, "input %q", raw)
		assert.Zero(t, rec.Lon, "input %q", raw)
		assert.Empty(t, rec.ISOCode, "input %q", raw)
	}
}

func TestClassifyInvariants(t *testing.T) {
	inputs := []string{"8001015009087", "123-45-6789", "123456789012", "110101199003077758", "nope", "42"}
	for _, raw := range inputs {
		rec := Classify(raw)
		assert.Equal(t, !rec.Valid, rec.Country == Unknown, "input %q", raw)
		assert.Equal(t, !rec.Valid, rec.Lat == 0 && rec.Lon == 0, "input %q", raw)
		hasYear := rec.Country == SouthAfrica || rec.Country == China
		assert.Equal(t, hasYear, rec.HasBirthYear(), "input %q", raw)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	assert.Equal(t, Classify("8001015009087"), Classify("8001015009087"))
}

func TestAge(t *testing.T) {
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	age, ok := Classify("8001015009087").Age(now)
	require.True(t, ok)
	assert.Equal(t, 46, age)
	assert.Equal(t, "46", Classify("8001015009087").AgeLabel(now))

	_, ok = Classify("123-45-6789").Age(now)
	assert.False(t, ok)
	assert.Equal(t, AgeUnknown, Classify("123-45-6789").AgeLabel(now))
}

func TestISOCode(t *testing.T) {
	assert.Equal(t, "ZA", ISOCode(SouthAfrica))
	assert.Equal(t, "CN", ISOCode(China))
	assert.Empty(t, ISOCode(Unknown))
	assert.Equal(t, []Country{SouthAfrica, UnitedStates, India, China}, SupportedCountries())
}

func intPtr(v int) *int { return &v }
