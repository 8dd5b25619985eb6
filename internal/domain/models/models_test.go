package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreSetJSON(t *testing.T) {
	var set GenreSet
	require.NoError(t, json.Unmarshal([]byte(`[{"id":3},{"id":1},{"id":3,"name":"Cartoon"}]`), &set))
	assert.Equal(t, []int64{1, 3}, set.IDs())

	data, err := json.Marshal(set)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1},{"id":3,"name":"Cartoon"}]`, string(data))
}

func TestGenreSetEmpty(t *testing.T) {
	var set GenreSet
	require.NoError(t, json.Unmarshal([]byte(`null`), &set))
	assert.NotNil(t, set)
	assert.Empty(t, set)

	data, err := json.Marshal(GenreSet(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFilmGenresField(t *testing.T) {
	var film Film
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","genres":[{"id":2},{"id":2}]}`), &film))
	assert.Len(t, film.Genres, 1)

	data, err := json.Marshal(Film{Name: "y"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"genres":[]`)
	assert.Contains(t, string(data), `"releaseDate":null`)
}
