package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	flagCompare    string
	flagRef        string
	flagScopes     []string
	flagAllScopes  bool
	flagList       bool
	flagStyles     bool
	flagNormal     bool
	flagQuiet      bool
	flagNoIncludes bool
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:          "vscolors <theme.json>",
	Short:        "Read VS Code theme colors and print them in the terminal",
	Long:         "Resolve a VS Code color theme (including its include chain), group its scopes by color, and print perceptually sorted swatches, scope listings, and comparisons.",
	Version:      version,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runReport,
}

func init() {
	rootCmd.Flags().StringVarP(&flagCompare, "compare", "c", "", "compare colors with another theme file")
	rootCmd.Flags().StringVar(&flagRef, "ref", "", "compare against the same file at a git revision")
	rootCmd.Flags().StringSliceVarP(&flagScopes, "scopes", "s", nil, "list the scopes using a color (hex or 1-based index)")
	rootCmd.Flags().BoolVarP(&flagAllScopes, "all-scopes", "S", false, "list all scopes for every color")
	rootCmd.Flags().BoolVarP(&flagList, "list", "l", false, "list all colors (default behavior)")
	rootCmd.Flags().BoolVarP(&flagStyles, "styles", "t", false, "list font-style groups (bold, italic, ...)")
	rootCmd.Flags().BoolVarP(&flagNormal, "normal", "n", false, "list scopes with no color and no style")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "reduce console output to only requested info")
	rootCmd.PersistentFlags().BoolVarP(&flagNoIncludes, "no-includes", "I", false, "don't follow include directives")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(browseCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
