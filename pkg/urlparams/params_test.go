package urlparams_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/urlkit/pkg/urlparams"
)

func TestParams(t *testing.T) {
	t.Parallel()

	t.Run("keeps first position on overwrite", func(t *testing.T) {
		t.Parallel()
		p := urlparams.NewParams()
		p.Set("b", "1")
		p.Set("a", "2")
		p.Set("b", "3")

		assert.Equal(t, []string{"b", "a"}, p.Keys())
		assert.Equal(t, 2, p.Len())
		v, ok := p.Get("b")
		assert.True(t, ok)
		assert.Equal(t, "3", v)
		assert.Equal(t, map[string]string{"a": "2", "b": "3"}, p.Map())
	})

	t.Run("empty value is present", func(t *testing.T) {
		t.Parallel()
		p := urlparams.NewParams()
		p.Set("k", "")
		assert.True(t, p.Has("k"))
		assert.False(t, p.Has("missing"))
	})

	t.Run("nil is an empty mapping", func(t *testing.T) {
		t.Parallel()
		var p *urlparams.Params
		_, ok := p.Get("x")
		assert.False(t, ok)
		assert.Zero(t, p.Len())
		assert.Nil(t, p.Keys())
		assert.Nil(t, p.Map())
		p.Each(func(string, string) bool {
			t.Fatal("unexpected call")
			return true
		})
	})

	t.Run("zero value is usable", func(t *testing.T) {
		t.Parallel()
		var p urlparams.Params
		p.Set("a", "1")
		assert.Equal(t, 1, p.Len())
	})

	t.Run("each stops early", func(t *testing.T) {
		t.Parallel()
		p := urlparams.NewParams()
		p.Set("a", "1")
		p.Set("b", "2")
		p.Set("c", "3")

		var seen []string
		p.Each(func(k, _ string) bool {
			seen = append(seen, k)
			return k != "b"
		})
		assert.Equal(t, []string{"a", "b"}, seen)
	})
}

func TestParamsMarshalJSON(t *testing.T) {
	t.Parallel()

	p := urlparams.NewParams()
	p.Set("z", "last \"quoted\"")
	p.Set("a", "first")

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `{"z":"last \"quoted\"","a":"first"}`, string(data))

	data, err = json.Marshal(urlparams.NewParams())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	var nilParams *urlparams.Params
	data, err = json.Marshal(struct {
		Params *urlparams.Params `json:"params"`
	}{Params: nilParams})
	require.NoError(t, err)
	assert.Equal(t, `{"params":null}`, string(data))

	// Markup survives when the caller's encoder does not escape HTML.
	markup := urlparams.NewParams()
	markup.Set("q", "<b>&")
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	require.NoError(t, enc.Encode(markup))
	assert.Equal(t, `{"q":"<b>&"}`+"\n", buf.String())
}
