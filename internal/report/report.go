// Package report renders resolved color maps for the terminal: swatches,
// scope listings, style listings, and the two-theme comparison view.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rjordan/vscolors/internal/color"
	"github.com/rjordan/vscolors/internal/theme"
)

// Renderer builds report fragments. The zero value is unusable; use New.
type Renderer struct {
	swatchWidth int
	header      lipgloss.Style
	dim         lipgloss.Style
}

// New returns a renderer whose swatches are swatchWidth cells wide.
func New(swatchWidth int) Renderer {
	if swatchWidth < 7 {
		swatchWidth = 7 // "#rrggbb" must fit
	}
	return Renderer{
		swatchWidth: swatchWidth,
		header:      lipgloss.NewStyle().Bold(true),
		dim:         lipgloss.NewStyle().Faint(true),
	}
}

// Header renders a section banner like "---- COLORS ----".
func (r Renderer) Header(title string) string {
	return r.header.Render(fmt.Sprintf("---- %s ----", strings.ToUpper(title)))
}

// Swatch renders the hex string on its own color, with ink picked for
// contrast.
func (r Renderer) Swatch(hex string) string {
	rgb, err := color.HexToRGB(hex)
	if err != nil {
		return r.dim.Width(r.swatchWidth).Align(lipgloss.Center).Render(hex)
	}

	ink := lipgloss.Color("#000000")
	bold := false
	if color.ContrastIsWhite(rgb) {
		ink = lipgloss.Color("#ffffff")
		bold = true
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(ink).
		Bold(bold).
		Width(r.swatchWidth).
		Align(lipgloss.Center).
		Render(hex)
}

// swatchOrNone stands in for styled entries that carry no color.
func (r Renderer) swatchOrNone(hex string) string {
	if hex == "" {
		return r.dim.Width(r.swatchWidth).Align(lipgloss.Center).Render("none")
	}
	return r.Swatch(hex)
}

// ScopeLine renders a scope name in its own color. Very dark colors get a
// white backdrop so they stay readable on dark terminals.
func (r Renderer) ScopeLine(hex, scope string) string {
	rgb, err := color.HexToRGB(hex)
	if err != nil {
		return scope
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	if color.Luminance(rgb) < 0.1 {
		style = style.Background(lipgloss.Color("#ffffff"))
	}
	return style.Render(scope)
}

// ColorList renders the numbered color overview with scope counts.
func (r Renderer) ColorList(cm theme.ColorMaps) string {
	var b strings.Builder
	for i, group := range cm.Colors {
		fmt.Fprintf(&b, "%2d) %s  [%2d]\n", i+1, r.Swatch(group.Color), len(group.Scopes))
	}
	return b.String()
}

// ScopeListing renders the scopes of the selected color groups, each under
// its numbered swatch header.
func (r Renderer) ScopeListing(cm theme.ColorMaps, colors []string) string {
	index := make(map[string]int, len(cm.Colors))
	groups := make(map[string]theme.ColorGroup, len(cm.Colors))
	for i, group := range cm.Colors {
		index[group.Color] = i
		groups[group.Color] = group
	}

	var b strings.Builder
	for _, hex := range colors {
		group, ok := groups[hex]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "[%2d) %s]\n", index[hex]+1, r.Swatch(hex))
		for _, scope := range group.Scopes {
			b.WriteString(r.ScopeLine(hex, scope))
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// StyleListing renders every style group with its colors and scopes.
func (r Renderer) StyleListing(cm theme.ColorMaps) string {
	var b strings.Builder
	for _, sg := range cm.Styles {
		fmt.Fprintf(&b, "%s\n", r.header.Render(sg.Style))
		for _, group := range sg.Colors {
			fmt.Fprintf(&b, "  %s\n", r.swatchOrNone(group.Color))
			for _, scope := range group.Scopes {
				line := scope
				if group.Color != "" {
					line = r.ScopeLine(group.Color, scope)
				}
				fmt.Fprintf(&b, "  %s\n", line)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// NormalListing renders the scopes with no color and no style.
func (r Renderer) NormalListing(cm theme.ColorMaps) string {
	var b strings.Builder
	for _, scope := range cm.Normal {
		b.WriteString(scope)
		b.WriteByte('\n')
	}
	return b.String()
}

// Compare renders two color maps side by side, row-aligned, with each side's
// scope count next to its swatch.
func (r Renderer) Compare(left, right theme.ColorMaps) string {
	blank := strings.Repeat(" ", r.swatchWidth+6)

	rows := len(left.Colors)
	if len(right.Colors) > rows {
		rows = len(right.Colors)
	}

	var b strings.Builder
	for i := 0; i < rows; i++ {
		l, rr := blank, blank
		if i < len(left.Colors) {
			group := left.Colors[i]
			l = fmt.Sprintf("[%2d]  %s", len(group.Scopes), r.Swatch(group.Color))
		}
		if i < len(right.Colors) {
			group := right.Colors[i]
			rr = fmt.Sprintf("%s  [%2d]", r.Swatch(group.Color), len(group.Scopes))
		}
		fmt.Fprintf(&b, "%2d) %s  :  %s\n", i+1, l, rr)
	}
	return b.String()
}
