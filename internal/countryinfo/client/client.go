// Package client provides the HTTP client for country metadata lookups.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"idscope_backend/platform/apperr"
	"idscope_backend/platform/config"
	"idscope_backend/platform/logger"
)

// namePlaceholder marks where the escaped country name goes when the service
// addresses countries by path (restcountries v3.1) rather than by query.
const namePlaceholder = "{name}"

// Client handles country-data requests.
type Client struct {
	httpClient *http.Client
	endpoint   string
	log        *logger.Logger
}

// New creates a new country-data client.
func New(cfg config.CountryDataConfig, log *logger.Logger) *Client {
	return NewWithHTTPClient(cfg.GetCountryDataURL(), &http.Client{Timeout: cfg.GetCountryDataTimeout()}, log)
}

// NewWithHTTPClient creates a client against endpoint using httpClient.
func NewWithHTTPClient(endpoint string, httpClient *http.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		log:        log,
	}
}

// Country mirrors the parts of a country-data entry the profile needs.
type Country struct {
	Name       Name       `json:"name"`
	CCA2       string     `json:"cca2"`
	Currencies Currencies `json:"currencies"`
	Timezones  []string   `json:"timezones"`
	Languages  Languages  `json:"languages"`
	Flags      *Flags     `json:"flags"`
}

// Name holds the country's names.
type Name struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

// Currency is one entry of the currencies object.
type Currency struct {
	Code   string `json:"-"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Language is one entry of the languages object.
type Language struct {
	Code string
	Name string
}

// Flags holds flag image URLs.
type Flags struct {
	PNG string `json:"png"`
	SVG string `json:"svg"`
	Alt string `json:"alt"`
}

// FetchByName performs an exact-name lookup. Any transport failure, non-2xx
// status or undecodable body is returned as an apperr LookupFailure.
func (c *Client) FetchByName(ctx context.Context, name string) ([]Country, error) {
	reqURL, err := c.buildURL(name)
	if err != nil {
		return nil, apperr.LookupFailure("invalid country data endpoint", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperr.LookupFailure("country lookup request could not be built", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("country data request failed", "country", name, "error", err)
		return nil, apperr.LookupFailure("country lookup request failed", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("country data upstream error", "country", name, "status", resp.StatusCode)
		return nil, apperr.LookupFailure(fmt.Sprintf("country lookup status %d", resp.StatusCode), nil)
	}

	var payload []Country
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Error("failed to decode country data payload", "country", name, "error", err)
		return nil, apperr.LookupFailure("country lookup returned an unreadable body", err)
	}

	return payload, nil
}

func (c *Client) buildURL(name string) (string, error) {
	params := url.Values{}
	params.Set("fullText", "true")

	if strings.Contains(c.endpoint, namePlaceholder) {
		base := strings.ReplaceAll(c.endpoint, namePlaceholder, url.PathEscape(name))
		return joinQuery(base, params)
	}

	params.Set("name", name)
	return joinQuery(c.endpoint, params)
}

func joinQuery(base string, params url.Values) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
