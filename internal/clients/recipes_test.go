package clients_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhite7112/woodpantry-recipefetch/internal/clients"
	"github.com/mwhite7112/woodpantry-recipefetch/internal/clients/clientstest"
)

func TestRecipe_DecodeOptionalFields(t *testing.T) {
	var r clients.Recipe
	err := json.Unmarshal([]byte(`{"cuisine": "Thai", "name": "Pad See Ew", "uuid": "abc", "source_url": "https://example.com/pad"}`), &r)
	require.NoError(t, err)

	assert.Equal(t, "Thai", r.Cuisine)
	assert.Equal(t, "Pad See Ew", r.Name)
	assert.Equal(t, "abc", r.UUID)
	require.NotNil(t, r.SourceURL)
	assert.Equal(t, "https://example.com/pad", *r.SourceURL)
	assert.Nil(t, r.PhotoURLLarge)
	assert.Nil(t, r.PhotoURLSmall)
	assert.Nil(t, r.YouTubeURL)
	assert.Equal(t, "", r.Thumbnail())
}

func TestRecipe_EmptyStringIsPresent(t *testing.T) {
	var r clients.Recipe
	require.NoError(t, json.Unmarshal([]byte(`{"cuisine": "", "name": "", "uuid": ""}`), &r))
	assert.Equal(t, clients.Recipe{}, r)
}

func TestRecipe_RequiredFields(t *testing.T) {
	fields := map[string]string{"cuisine": `"Thai"`, "name": `"Pad Thai"`, "uuid": `"abc"`}
	for missing := range fields {
		t.Run("missing "+missing, func(t *testing.T) {
			body := "{"
			sep := ""
			for k, v := range fields {
				if k == missing {
					continue
				}
				body += fmt.Sprintf(`%s"%s": %s`, sep, k, v)
				sep = ", "
			}
			body += "}"

			var r clients.Recipe
			require.Error(t, json.Unmarshal([]byte(body), &r))
		})
	}
}

func TestRecipeCollection_AtomicDecode(t *testing.T) {
	var c clients.RecipeCollection
	err := json.Unmarshal([]byte(clientstest.MissingNameJSON), &c)
	require.Error(t, err)
	assert.Nil(t, c.Recipes)
}

func TestRecipeCollection_PreservesSourceOrder(t *testing.T) {
	var c clients.RecipeCollection
	require.NoError(t, json.Unmarshal([]byte(clientstest.TwoRecipesJSON), &c))
	require.Len(t, c.Recipes, 2)
	assert.Equal(t, "0c6ca6e7-e32a-4053-b824-1dbf749910d8", c.Recipes[0].UUID)
	assert.Equal(t, "599344f4-3c5c-4cca-b914-2210e3b3312f", c.Recipes[1].UUID)
	assert.Equal(t, "https://d3jbb8n5wk0qxi.cloudfront.net/photos/b9ab0071-b281-4bee-b361-ec340d405320/small.jpg", c.Recipes[0].Thumbnail())
}

func TestRecipeCollection_RoundTrip(t *testing.T) {
	var first clients.RecipeCollection
	require.NoError(t, json.Unmarshal([]byte(clientstest.TwoRecipesJSON), &first))

	encoded, err := json.Marshal(first)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"photo_url_large"`)

	var second clients.RecipeCollection
	require.NoError(t, json.Unmarshal(encoded, &second))
	assert.Equal(t, first, second)
}

func TestRecipe_RoundTripOmitsAbsentOptionals(t *testing.T) {
	in := clients.Recipe{Cuisine: "Greek", Name: "Moussaka", UUID: "m-1"}
	encoded, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"cuisine": "Greek", "name": "Moussaka", "uuid": "m-1"}`, string(encoded))

	var out clients.Recipe
	require.NoError(t, json.Unmarshal(encoded, &out))
	assert.Equal(t, in, out)
}

func TestRecipe_ParsedUUID(t *testing.T) {
	r := clients.Recipe{UUID: "0C6CA6E7-E32A-4053-B824-1DBF749910D8"}
	id, err := r.ParsedUUID()
	require.NoError(t, err)
	assert.Equal(t, "0c6ca6e7-e32a-4053-b824-1dbf749910d8", id.String())

	_, err = clients.Recipe{UUID: "not-a-uuid"}.ParsedUUID()
	assert.Error(t, err)
}

func TestUserMessage(t *testing.T) {
	cases := map[string]struct {
		err  error
		want string
	}{
		"nil":          {nil, ""},
		"invalid url":  {clients.ErrInvalidURL, "The URL is invalid."},
		"wrapped url":  {fmt.Errorf("%w: bad", clients.ErrInvalidURL), "The URL is invalid."},
		"decoding":     {clients.ErrDecoding, clients.DataMalformedMessage},
		"server":       {&clients.ServerError{StatusCode: 503}, "Server returned an error with status code 503."},
		"custom":       {&clients.CustomError{Message: "No data or response"}, "No data or response"},
		"other errors": {errors.New("boom"), "boom"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.want, clients.UserMessage(c.err))
		})
	}
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "ok", clients.ErrorKind(nil))
	assert.Equal(t, "invalid_url", clients.ErrorKind(clients.ErrInvalidURL))
	assert.Equal(t, "decoding_error", clients.ErrorKind(clients.ErrDecoding))
	assert.Equal(t, "server_error", clients.ErrorKind(&clients.ServerError{StatusCode: 500}))
	assert.Equal(t, "transport_error", clients.ErrorKind(&clients.CustomError{Message: "x"}))
	assert.Equal(t, "unknown", clients.ErrorKind(errors.New("x")))
}

func TestEndpointByName(t *testing.T) {
	for name, want := range map[string]string{
		"all":       clients.EndpointAllRecipes,
		"Malformed": clients.EndpointMalformedRecipes,
		" empty ":   clients.EndpointEmptyRecipes,
	} {
		got, err := clients.EndpointByName(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := clients.EndpointByName("everything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all, malformed, empty")
}
