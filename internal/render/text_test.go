package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhite7112/woodpantry-recipefetch/internal/clients"
	"github.com/mwhite7112/woodpantry-recipefetch/internal/listing"
)

func ptr(s string) *string { return &s }

var sample = []clients.Recipe{
	{Cuisine: "Malaysian", Name: "Apam Balik", UUID: "1", PhotoURLSmall: ptr("https://example.com/small.jpg")},
	{Cuisine: "British", Name: "Apple & Blackberry Crumble", UUID: "2"},
}

func TestText(t *testing.T) {
	cases := map[string]struct {
		vs       listing.ViewState
		contains []string
		absent   []string
	}{
		"loading": {
			vs:       listing.ViewState{Status: listing.StatusLoading},
			contains: []string{"Loading recipes..."},
			absent:   []string{"CUISINE"},
		},
		"loading keeps rows": {
			vs:       listing.ViewState{Status: listing.StatusLoading, Recipes: sample},
			contains: []string{"Apam Balik"},
			absent:   []string{"Loading recipes..."},
		},
		"empty": {
			vs:       listing.ViewState{Status: listing.StatusEmpty},
			contains: []string{EmptyMessage},
			absent:   []string{"CUISINE"},
		},
		"loaded": {
			vs:       listing.ViewState{Status: listing.StatusLoaded, Recipes: sample},
			contains: []string{"CUISINE", "1  Malaysian", "Apam Balik", "https://example.com/small.jpg", "Apple & Blackberry Crumble"},
		},
		"failed without data": {
			vs:       listing.ViewState{Status: listing.StatusFailed, Err: clients.ErrDecoding},
			contains: []string{"Error: " + clients.DataMalformedMessage},
			absent:   []string{"CUISINE"},
		},
		"failed with stale data": {
			vs:       listing.ViewState{Status: listing.StatusFailed, Recipes: sample, Err: &clients.ServerError{StatusCode: 500}},
			contains: []string{"status code 500", "Apam Balik"},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Text(&buf, c.vs))
			out := buf.String()
			for _, s := range c.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range c.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestText_MissingThumbnail(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, listing.ViewState{Status: listing.StatusLoaded, Recipes: sample[1:]}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[1], "-"))
}
