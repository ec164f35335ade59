// Package theme resolves VS Code color-theme files, following their include
// chains, and turns the result into sorted color-to-scope mappings.
package theme

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/rjordan/vscolors/internal/color"
	"github.com/rjordan/vscolors/internal/jsonc"
	"github.com/rjordan/vscolors/internal/log"
)

// Kind classifies a scope's winning token-color entry.
type Kind int

const (
	KindColor  Kind = iota // foreground color only
	KindStyled             // fontStyle token, with or without a color
	KindNormal             // neither: explicitly no special rendering
)

// ScopeEntry is the resolved rendering for one scope. A scope holds exactly
// one entry at a time; a later definition replaces the previous one even when
// the kind changes, so membership and category can never disagree.
type ScopeEntry struct {
	Kind  Kind
	Color string // normalized "#rrggbb", empty when absent
	Style string // font-style token, set only for KindStyled
}

// FileReader abstracts where theme bytes come from: the OS filesystem, an
// in-memory afero fs in tests, or a git revision (internal/vcs).
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

type aferoReader struct {
	fs afero.Fs
}

func (r aferoReader) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(r.fs, path)
}

// AferoReader adapts an afero filesystem to FileReader.
func AferoReader(fs afero.Fs) FileReader {
	return aferoReader{fs: fs}
}

// Options control how Include traverses a theme.
type Options struct {
	FollowIncludes bool
	Silent         bool
}

// Resolver accumulates scope definitions from a theme file and its include
// chain. Not safe for concurrent use; create one per resolution.
type Resolver struct {
	reader FileReader
	scopes map[string]ScopeEntry
	active map[string]bool // paths on the current include path, for cycle detection
}

// NewResolver returns a resolver reading from the OS filesystem.
func NewResolver() *Resolver {
	return NewResolverWithReader(AferoReader(afero.NewOsFs()))
}

// NewResolverWithReader returns a resolver reading through fr.
func NewResolverWithReader(fr FileReader) *Resolver {
	return &Resolver{
		reader: fr,
		scopes: make(map[string]ScopeEntry),
		active: make(map[string]bool),
	}
}

// Entry returns the resolved entry for a scope, if one exists.
func (r *Resolver) Entry(scope string) (ScopeEntry, bool) {
	e, ok := r.scopes[scope]
	return e, ok
}

// document is the subset of a theme file this tool reads. Scope and include
// values vary between string and list in the wild, so they decode as any and
// get type-switched at the point of use.
type document struct {
	Include     any          `json:"include"`
	TokenColors []tokenColor `json:"tokenColors"`
}

type tokenColor struct {
	Scope    any           `json:"scope"`
	Settings tokenSettings `json:"settings"`
}

type tokenSettings struct {
	Foreground *string `json:"foreground"`
	FontStyle  *string `json:"fontStyle"`
}

func (r *Resolver) loadFile(path string) (*document, error) {
	data, err := r.reader.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	cleaned := jsonc.Clean(string(data))
	var doc document
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &doc, nil
}

// Include resolves the theme at path into the resolver. Included files are
// processed depth-first before the including file's own tokenColors, so outer
// definitions always win over included ones for the same scope.
func (r *Resolver) Include(path string, opts Options) error {
	return r.include(path, "", opts)
}

func (r *Resolver) include(path, includePath string, opts Options) error {
	key := filepath.Clean(path)
	if r.active[key] {
		return &FormatError{Path: path, Msg: "include cycle detected"}
	}
	r.active[key] = true
	defer delete(r.active, key)

	doc, err := r.loadFile(path)
	if err != nil {
		return err
	}

	if !opts.Silent {
		if includePath == "" {
			log.Infof("loading:    ./%s", filepath.Base(path))
		} else {
			log.Infof("including:  %s", includePath)
		}
	}

	if opts.FollowIncludes {
		baseDir := filepath.Dir(path)
		switch inc := doc.Include.(type) {
		case nil:
		case string:
			if err := r.include(filepath.Join(baseDir, inc), inc, opts); err != nil {
				return err
			}
		case []any:
			for _, item := range inc {
				s, ok := item.(string)
				if !ok {
					return &FormatError{Path: path, Msg: fmt.Sprintf("unknown include type %T", item)}
				}
				if err := r.include(filepath.Join(baseDir, s), s, opts); err != nil {
					return err
				}
			}
		default:
			return &FormatError{Path: path, Msg: fmt.Sprintf("unknown include type %T", inc)}
		}
	}

	for _, tc := range doc.TokenColors {
		if err := r.addTokenColor(path, tc); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) addTokenColor(path string, tc tokenColor) error {
	entry := ScopeEntry{Kind: KindNormal}

	if tc.Settings.Foreground != nil {
		fg, err := color.NormalizeHex(*tc.Settings.Foreground)
		if err != nil {
			return &FormatError{Path: path, Msg: "bad foreground color", Err: err}
		}
		entry.Color = fg
		entry.Kind = KindColor
	}
	if tc.Settings.FontStyle != nil {
		entry.Style = *tc.Settings.FontStyle
		entry.Kind = KindStyled
	}

	switch scope := tc.Scope.(type) {
	case string:
		r.scopes[scope] = entry
	case []any:
		for _, item := range scope {
			s, ok := item.(string)
			if !ok {
				return &FormatError{Path: path, Msg: fmt.Sprintf("unknown scope type %T", item)}
			}
			r.scopes[s] = entry
		}
	default:
		return &FormatError{Path: path, Msg: fmt.Sprintf("unknown scope type %T", scope)}
	}
	return nil
}
