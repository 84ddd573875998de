// Package service turns raw country-data entries into country profiles,
// with caching in front of the network client.
package service

import (
	"context"
	"strings"
	"time"

	"idscope_backend/internal/countryinfo/client"
	"idscope_backend/platform/apperr"
	"idscope_backend/platform/logger"
	"idscope_backend/platform/phone"
)

// NotAvailable fills text fields the service did not provide.
const NotAvailable = "N/A"

// Profile is the country metadata appended to a classified record.
type Profile struct {
	Country     string    `json:"country"`
	Currency    string    `json:"currency"`
	Timezone    string    `json:"timezone"`
	Languages   string    `json:"languages"`
	FlagURL     string    `json:"flagUrl"`
	CallingCode string    `json:"callingCode,omitempty"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Fetcher is the network side of a lookup.
type Fetcher interface {
	FetchByName(ctx context.Context, name string) ([]client.Country, error)
}

// Service resolves country profiles, caching successes only.
type Service struct {
	client Fetcher
	cache  Cache
	ttl    time.Duration
	log    *logger.Logger
	now    func() time.Time
}

// New creates a country profile service. A nil cache disables caching.
func New(fetcher Fetcher, cache Cache, ttl time.Duration, log *logger.Logger) *Service {
	return &Service{
		client: fetcher,
		cache:  cache,
		ttl:    ttl,
		log:    log,
		now:    time.Now,
	}
}

// GetProfile fetches the profile for an exact country name. Network and
// status failures come back as apperr LookupFailure.
func (s *Service) GetProfile(ctx context.Context, country string) (*Profile, error) {
	key := normalizeName(country)
	if key == "" {
		return nil, apperr.Validation("country name is required")
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			s.log.Debug("country profile cache hit", "country", country)
			return cached, nil
		}
	}

	entries, err := s.client.FetchByName(ctx, strings.TrimSpace(country))
	if err != nil {
		return nil, err
	}

	profile := BuildProfile(strings.TrimSpace(country), entries)
	profile.FetchedAt = s.now().UTC()

	if s.cache != nil {
		s.cache.Set(ctx, key, profile, s.ttl)
	}
	return profile, nil
}

// BuildProfile selects profile fields from the first entry. Missing or
// empty collections fall back to NotAvailable; the flag prefers PNG over SVG
// and is empty when neither is present.
func BuildProfile(country string, entries []client.Country) *Profile {
	profile := &Profile{
		Country:   country,
		Currency:  NotAvailable,
		Timezone:  NotAvailable,
		Languages: NotAvailable,
	}
	if len(entries) == 0 {
		return profile
	}

	first := entries[0]

	if len(first.Currencies) > 0 && first.Currencies[0].Name != "" {
		profile.Currency = first.Currencies[0].Name
	}
	if len(first.Timezones) > 0 && first.Timezones[0] != "" {
		profile.Timezone = first.Timezones[0]
	}
	if names := first.Languages.Names(); len(names) > 0 {
		profile.Languages = strings.Join(names, ", ")
	}
	profile.FlagURL = pickFlag(first.Flags)
	profile.CallingCode = phone.DialingCode(first.CCA2)

	return profile
}

func pickFlag(flags *client.Flags) string {
	if flags == nil {
		return ""
	}
	if flags.PNG != "" {
		return flags.PNG
	}
	return flags.SVG
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
