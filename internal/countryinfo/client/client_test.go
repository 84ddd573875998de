package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"idscope_backend/platform/apperr"
	"idscope_backend/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const southAfricaPayload = `[{
	"name": {"common": "South Africa", "official": "Republic of South Africa"},
	"cca2": "ZA",
	"currencies": {"ZAR": {"name": "South African rand", "symbol": "R"}},
	"timezones": ["UTC+02:00"],
	"languages": {"afr": "Afrikaans", "eng": "English", "nbl": "Southern Ndebele"},
	"flags": {"png": "https://flagcdn.com/w320/za.png", "svg": "https://flagcdn.com/za.svg"}
}]`

func newTestClient(t *testing.T, endpoint string) *Client {
	t.Helper()
	return NewWithHTTPClient(endpoint, &http.Client{Timeout: 2 * time.Second}, logger.Nop())
}

func TestFetchByNameUsesPathPlaceholder(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(southAfricaPayload))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL+"/v3.1/name/{name}")
	entries, err := c.FetchByName(context.Background(), "South Africa")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "/v3.1/name/South Africa", gotPath)
	assert.Equal(t, "fullText=true", gotQuery)
}

func TestFetchByNameUsesQueryParameter(t *testing.T) {
	var gotName, gotFullText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotName = r.URL.Query().Get("name")
		gotFullText = r.URL.Query().Get("fullText")
		_, _ = w.Write([]byte(southAfricaPayload))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL+"/countries")
	_, err := c.FetchByName(context.Background(), "United States")
	require.NoError(t, err)

	assert.Equal(t, "United States", gotName)
	assert.Equal(t, "true", gotFullText)
}

func TestFetchByNameDecodesOrderedObjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(southAfricaPayload))
	}))
	defer srv.Close()

	entries, err := newTestClient(t, srv.URL).FetchByName(context.Background(), "South Africa")
	require.NoError(t, err)
	entry := entries[0]

	assert.Equal(t, "ZA", entry.CCA2)
	require.Len(t, entry.Currencies, 1)
	assert.Equal(t, "ZAR", entry.Currencies[0].Code)
	assert.Equal(t, "South African rand", entry.Currencies[0].Name)
	assert.Equal(t, []string{"Afrikaans", "English", "Southern Ndebele"}, entry.Languages.Names())
	require.NotNil(t, entry.Flags)
	assert.Equal(t, "https://flagcdn.com/w320/za.png", entry.Flags.PNG)
}

func TestFetchByNameNonSuccessStatusIsLookupFailure(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusMovedPermanently} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
			// A well-formed body must not rescue a non-2xx status.
			_, _ = w.Write([]byte(southAfricaPayload))
		}))

		c := NewWithHTTPClient(srv.URL, &http.Client{
			Timeout: 2 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}, logger.Nop())
		_, err := c.FetchByName(context.Background(), "South Africa")
		srv.Close()

		require.Error(t, err, "status %d", status)
		assert.True(t, apperr.Is(err, apperr.KindLookupFailure), "status %d", status)
	}
}

func TestFetchByNameTransportFailureIsLookupFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	_, err := newTestClient(t, endpoint).FetchByName(context.Background(), "India")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindLookupFailure))
}

func TestFetchByNameBadBodyIsLookupFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": 404}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).FetchByName(context.Background(), "China")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindLookupFailure))
}

func TestOrderedObjectsAcceptNull(t *testing.T) {
	var entry Country
	require.NoError(t, json.Unmarshal([]byte(`{"currencies": null, "languages": null}`), &entry))
	assert.Empty(t, entry.Currencies)
	assert.Empty(t, entry.Languages)
}

func TestOrderedObjectsRejectArrays(t *testing.T) {
	var entry Country
	require.Error(t, json.Unmarshal([]byte(`{"languages": ["English"]}`), &entry))
}
