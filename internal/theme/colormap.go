package theme

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/rjordan/vscolors/internal/color"
)

// ColorGroup lists the scopes sharing one resolved color, alphabetically.
// Color is empty for styled entries that carry no foreground.
type ColorGroup struct {
	Color  string
	Scopes []string
}

// StyleGroup groups colors under one font-style token.
type StyleGroup struct {
	Style  string
	Colors []ColorGroup
}

// ColorMaps is the display-ready view of a resolved theme: colors in
// perceptual sort order, style groups alphabetical by token, and the scopes
// with no special rendering. Always built from scratch; callers own the
// result.
type ColorMaps struct {
	Colors []ColorGroup
	Styles []StyleGroup
	Normal []string
}

// BuildColorMaps groups the resolver's scope table by color and style. It
// only reads resolver state.
func BuildColorMaps(r *Resolver) ColorMaps {
	colorScopes := make(map[string][]string)
	styleScopes := make(map[string]map[string][]string)
	var normal []string

	for scope, entry := range r.scopes {
		switch entry.Kind {
		case KindColor:
			colorScopes[entry.Color] = append(colorScopes[entry.Color], scope)
		case KindStyled:
			byColor := styleScopes[entry.Style]
			if byColor == nil {
				byColor = make(map[string][]string)
				styleScopes[entry.Style] = byColor
			}
			byColor[entry.Color] = append(byColor[entry.Color], scope)
		case KindNormal:
			normal = append(normal, scope)
		}
	}

	cm := ColorMaps{
		Colors: sortedColorGroups(colorScopes),
		Normal: normal,
	}
	sort.Strings(cm.Normal)

	styleNames := maps.Keys(styleScopes)
	sort.Strings(styleNames)
	for _, style := range styleNames {
		cm.Styles = append(cm.Styles, StyleGroup{
			Style:  style,
			Colors: sortedColorGroups(styleScopes[style]),
		})
	}
	return cm
}

// sortedColorGroups orders colors by perceptual sort key, breaking ties by
// the color string, and sorts each group's scopes alphabetically.
func sortedColorGroups(byColor map[string][]string) []ColorGroup {
	colors := maps.Keys(byColor)
	sort.Slice(colors, func(i, j int) bool {
		ki, kj := groupSortKey(colors[i]), groupSortKey(colors[j])
		if ki != kj {
			return ki < kj
		}
		return colors[i] < colors[j]
	})

	groups := make([]ColorGroup, 0, len(colors))
	for _, c := range colors {
		scopes := byColor[c]
		sort.Strings(scopes)
		groups = append(groups, ColorGroup{Color: c, Scopes: scopes})
	}
	return groups
}

func groupSortKey(hex string) float64 {
	if hex == "" {
		return color.SortKeyNone()
	}
	return color.SortKey(hex)
}
