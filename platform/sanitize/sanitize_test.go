package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "Cyril Ramaphosa", want: "Cyril Ramaphosa"},
		{in: "  Xi   Jinping \n", want: "Xi Jinping"},
		{in: "<b>Narendra</b> Modi", want: "Narendra Modi"},
		{in: "&lt;script&gt;alert(1)&lt;/script&gt;Bob", want: "alert(1)Bob"},
		{in: "Detected\x00 Country\x07", want: "Detected Country"},
		{in: "", want: ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Text(tc.in), "input %q", tc.in)
	}
}

func TestStripHTMLDecodesPlainEntities(t *testing.T) {
	assert.Equal(t, "Tom & Jerry", StripHTML("Tom &amp; Jerry"))
}
