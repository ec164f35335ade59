package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rjordan/vscolors/internal/color"
	"github.com/rjordan/vscolors/internal/config"
	"github.com/rjordan/vscolors/internal/log"
	"github.com/rjordan/vscolors/internal/report"
	"github.com/rjordan/vscolors/internal/theme"
	"github.com/rjordan/vscolors/internal/vcs"
)

func resolveOptions(cfg config.Config) theme.Options {
	opts := theme.Options{
		FollowIncludes: cfg.FollowIncludes,
		Silent:         cfg.Quiet,
	}
	if flagNoIncludes {
		opts.FollowIncludes = false
	}
	if flagQuiet {
		opts.Silent = true
	}
	return opts
}

func loadMaps(path string, reader theme.FileReader, opts theme.Options) (theme.ColorMaps, error) {
	var r *theme.Resolver
	if reader != nil {
		r = theme.NewResolverWithReader(reader)
	} else {
		r = theme.NewResolver()
	}
	if err := r.Include(path, opts); err != nil {
		return theme.ColorMaps{}, err
	}
	return theme.BuildColorMaps(r), nil
}

func runReport(cmd *cobra.Command, args []string) error {
	log.SetVerbose(flagVerbose)

	if flagCompare != "" && flagRef != "" {
		return fmt.Errorf("--compare and --ref are mutually exclusive")
	}

	cfg := config.Load()
	opts := resolveOptions(cfg)
	rend := report.New(cfg.SwatchWidth)
	path := args[0]

	maps, err := loadMaps(path, nil, opts)
	if err != nil {
		return err
	}

	if flagCompare != "" || flagRef != "" {
		return printCompare(rend, maps, path, opts)
	}

	requested := flagAllScopes || len(flagScopes) > 0 || flagStyles || flagNormal
	if flagList || !requested || !opts.Silent {
		if !opts.Silent {
			fmt.Println(rend.Header("colors"))
			fmt.Println()
		}
		fmt.Print(rend.ColorList(maps))
		fmt.Println()
	}

	var selected []string
	if flagAllScopes {
		for _, group := range maps.Colors {
			selected = append(selected, group.Color)
		}
	} else if len(flagScopes) > 0 {
		selected, err = selectColors(maps, flagScopes)
		if err != nil {
			return err
		}
	}
	if selected != nil {
		if !opts.Silent {
			fmt.Println(rend.Header("scopes"))
			fmt.Println()
		}
		fmt.Print(rend.ScopeListing(maps, selected))
	}

	if flagStyles {
		if !opts.Silent {
			fmt.Println(rend.Header("styles"))
			fmt.Println()
		}
		fmt.Print(rend.StyleListing(maps))
	}

	if flagNormal {
		if !opts.Silent {
			fmt.Println(rend.Header("normal"))
			fmt.Println()
		}
		fmt.Print(rend.NormalListing(maps))
	}
	return nil
}

// printCompare renders the current theme next to either another file or the
// same file at a git revision.
func printCompare(rend report.Renderer, maps theme.ColorMaps, path string, opts theme.Options) error {
	var other theme.ColorMaps
	var err error

	if flagCompare != "" {
		other, err = loadMaps(flagCompare, nil, opts)
	} else {
		var rev *vcs.RevisionReader
		rev, err = vcs.Open(filepath.Dir(path), flagRef)
		if err != nil {
			return err
		}
		other, err = loadMaps(path, rev, opts)
	}
	if err != nil {
		return err
	}

	if !opts.Silent {
		fmt.Println(rend.Header("compare"))
		fmt.Println()
	}
	fmt.Print(rend.Compare(maps, other))
	return nil
}

// selectColors maps -s arguments (hex strings or 1-based indexes into the
// color list) onto normalized colors.
func selectColors(cm theme.ColorMaps, args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if strings.HasPrefix(arg, "#") {
			hex, err := color.NormalizeHex(arg)
			if err != nil {
				return nil, err
			}
			out = append(out, hex)
			continue
		}
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > len(cm.Colors) {
			return nil, fmt.Errorf("no color %q: expected a hex color or an index between 1 and %d", arg, len(cm.Colors))
		}
		out = append(out, cm.Colors[n-1].Color)
	}
	return out, nil
}
