package leaders

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"idscope_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTable(t *testing.T) {
	table, err := Embedded(validator.New())
	require.NoError(t, err)

	assert.Equal(t, Profile{
		Name:     "Cyril Ramaphosa",
		ImageURL: "https://th.bing.com/th/id/OIP.PhHp9jsJBk5-NJitb1ngSQHaFT?w=2048&h=1467&rs=1&pid=ImgDetMain",
	}, table.Lookup("South Africa"))
	assert.Equal(t, "Donald J Trump", table.Lookup("United States").Name)
	assert.Equal(t, "Narendra Modi", table.Lookup("India").Name)
	assert.Equal(t, "Xi Jinping", table.Lookup("China").Name)
	assert.Equal(t, []string{"China", "India", "South Africa", "United States"}, table.Countries())
}

func TestLookupFallsBackForUnmappedCountries(t *testing.T) {
	table, err := Embedded(validator.New())
	require.NoError(t, err)

	want := Profile{Name: "Unknown", ImageURL: "https://via.placeholder.com/150"}
	for _, country := range []string{"Unknown", "France", "", "south africa"} {
		assert.Equal(t, want, table.Lookup(country), "country %q", country)
		assert.False(t, table.Has(country))
	}
}

func TestParseRejectsInvalidTables(t *testing.T) {
	val := validator.New()
	cases := map[string]string{
		"missing image": `
fallback: {name: Unknown, image: "https://via.placeholder.com/150"}
leaders:
  - {country: France, name: Someone}
`,
		"blank name": `
fallback: {name: Unknown, image: "https://via.placeholder.com/150"}
leaders:
  - {country: France, name: "  ", image: "https://example.com/a.png"}
`,
		"duplicate country": `
fallback: {name: Unknown, image: "https://via.placeholder.com/150"}
leaders:
  - {country: France, name: A, image: "https://example.com/a.png"}
  - {country: France, name: B, image: "https://example.com/b.png"}
`,
		"no fallback": `
leaders:
  - {country: France, name: A, image: "https://example.com/a.png"}
`,
		"not yaml": "leaders: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc), val)
			assert.Error(t, err)
		})
	}
}

func TestLoadOverrideSanitizesNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaders.yaml")
	doc := `
fallback: {name: Unknown, image: "https://via.placeholder.com/150"}
leaders:
  - {country: France, name: "<i>Emmanuel</i>   Macron", image: "https://example.com/m.png"}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	table, err := Load(path, validator.New())
	require.NoError(t, err)
	assert.Equal(t, "Emmanuel Macron", table.Lookup("France").Name)
	assert.Equal(t, "Unknown", table.Lookup("South Africa").Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), validator.New())
	assert.Error(t, err)
}

func TestHandlerGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	table, err := Embedded(validator.New())
	require.NoError(t, err)

	h := NewHandler(table)
	r := gin.New()
	r.GET("/leaders/:country", h.Get)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaders/India", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"country": "India",
		"known": true,
		"name": "Narendra Modi",
		"imageUrl": "https://english.cdn.zeenews.com/sites/default/files/2022/01/21/1007390-34.jpg"
	}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaders/Atlantis", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"country": "Atlantis",
		"known": false,
		"name": "Unknown",
		"imageUrl": "https://via.placeholder.com/150"
	}`, w.Body.String())
}
