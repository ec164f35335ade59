package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolvedFixture(t *testing.T) *Resolver {
	t.Helper()
	r := memResolver(t, map[string]string{
		"theme.json": `{
			"tokenColors": [
				{"scope": ["string", "constant.character"], "settings": {"foreground": "#ff0000"}},
				{"scope": "comment", "settings": {"foreground": "#888888"}},
				{"scope": "keyword", "settings": {"foreground": "#00ff00"}},
				{"scope": "markup.bold", "settings": {"foreground": "#ff0000", "fontStyle": "bold"}},
				{"scope": "markup.italic", "settings": {"fontStyle": "italic"}},
				{"scope": ["source", "meta.block"], "settings": {}}
			]
		}`,
	})
	require.NoError(t, r.Include("theme.json", testOpts))
	return r
}

func TestBuildColorMapsOrdering(t *testing.T) {
	cm := BuildColorMaps(resolvedFixture(t))

	// Chromatic colors by hue (red 0 before green 120), grayscale last.
	require.Len(t, cm.Colors, 3)
	assert.Equal(t, "#ff0000", cm.Colors[0].Color)
	assert.Equal(t, "#00ff00", cm.Colors[1].Color)
	assert.Equal(t, "#888888", cm.Colors[2].Color)

	// Scopes within a group are alphabetical.
	assert.Equal(t, []string{"constant.character", "string"}, cm.Colors[0].Scopes)
}

func TestBuildColorMapsStyleGroups(t *testing.T) {
	cm := BuildColorMaps(resolvedFixture(t))

	require.Len(t, cm.Styles, 2)
	assert.Equal(t, "bold", cm.Styles[0].Style)
	assert.Equal(t, "italic", cm.Styles[1].Style)

	require.Len(t, cm.Styles[0].Colors, 1)
	assert.Equal(t, "#ff0000", cm.Styles[0].Colors[0].Color)
	assert.Equal(t, []string{"markup.bold"}, cm.Styles[0].Colors[0].Scopes)

	// Style entries without a color sort after any colored ones.
	require.Len(t, cm.Styles[1].Colors, 1)
	assert.Equal(t, "", cm.Styles[1].Colors[0].Color)
}

func TestBuildColorMapsColorlessSortsLastWithinStyle(t *testing.T) {
	r := memResolver(t, map[string]string{
		"theme.json": `{
			"tokenColors": [
				{"scope": "a", "settings": {"fontStyle": "bold"}},
				{"scope": "b", "settings": {"foreground": "#0000ff", "fontStyle": "bold"}}
			]
		}`,
	})
	require.NoError(t, r.Include("theme.json", testOpts))

	cm := BuildColorMaps(r)
	require.Len(t, cm.Styles, 1)
	require.Len(t, cm.Styles[0].Colors, 2)
	assert.Equal(t, "#0000ff", cm.Styles[0].Colors[0].Color)
	assert.Equal(t, "", cm.Styles[0].Colors[1].Color)
}

func TestBuildColorMapsNormalSorted(t *testing.T) {
	cm := BuildColorMaps(resolvedFixture(t))
	assert.Equal(t, []string{"meta.block", "source"}, cm.Normal)
}

func TestBuildColorMapsDeterministic(t *testing.T) {
	r := resolvedFixture(t)
	first := BuildColorMaps(r)
	second := BuildColorMaps(r)
	assert.Equal(t, first, second)
}

func TestBuildColorMapsStableAcrossRebuilds(t *testing.T) {
	r := memResolver(t, map[string]string{
		"theme.json": `{
			"tokenColors": [
				{"scope": "x", "settings": {"foreground": "#888888"}},
				{"scope": "y", "settings": {"foreground": "#778899"}}
			]
		}`,
	})
	require.NoError(t, r.Include("theme.json", testOpts))

	first := BuildColorMaps(r)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildColorMaps(r))
	}
}
