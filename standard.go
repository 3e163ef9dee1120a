package main

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/vulfilip/rassforge/forge"
	"github.com/vulfilip/rassforge/util"
	"github.com/vulfilip/rassforge/wordlist"
)

type standardOptions struct {
	Wordlist string
	Years    string
	Symbols  string
	Leet     bool
	Reverse  bool
}

func standardCmd(settings *Settings) *cobra.Command {
	var opts standardOptions

	c := &cobra.Command{
		Use:   "standard",
		Short: "Combine keywords, years and symbols into a password list",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := showBanner(*settings); err != nil {
				return err
			}

			iter, err := buildStandard(opts)
			if err != nil {
				return err
			}

			pterm.Info.Println("Standard mode selected")
			pterm.Info.Printf("File containing keywords: %s. Years: %s. Symbols: %s\n", opts.Wordlist, opts.Years, symbolsLabel(iter.Symbols))

			return forgeWordlist(*settings, iter)
		},
	}

	c.Flags().StringVarP(&opts.Wordlist, "wordlist", "w", "", "File containing keywords (company, names, pets, clubs...), one keyword per line")
	c.Flags().StringVarP(&opts.Years, "years", "y", "", "Years or year ranges, e.g. \"2020-2023,1984\"")
	c.Flags().StringVarP(&opts.Symbols, "symbols", "s", util.NoSymbols, "Special characters to mix in, e.g. \"!@#\"")
	c.Flags().BoolVar(&opts.Leet, "leet", false, "Also add a leet speak variant of every keyword (seasons and months are not converted)")
	c.Flags().BoolVarP(&opts.Reverse, "reverse", "r", false, "Run the YearKeywordSymbol and SymbolKeywordYear passes again after the season pass")

	_ = c.MarkFlagRequired("wordlist")
	_ = c.MarkFlagRequired("years")
	return c
}

func buildStandard(opts standardOptions) (*forge.StandardIter, error) {
	years, err := util.ParseYears(opts.Years)
	if err != nil {
		return nil, err
	}

	keywords, err := wordlist.Load(opts.Wordlist)
	if err != nil {
		return nil, err
	}
	if opts.Leet {
		keywords = forge.WithLeet(keywords)
	}

	return &forge.StandardIter{
		Keywords: keywords,
		Years:    years,
		Symbols:  util.ParseSymbols(opts.Symbols),
		Reverse:  opts.Reverse,
	}, nil
}

func symbolsLabel(symbols []string) string {
	if len(symbols) == 0 {
		return util.NoSymbols
	}

	return strings.Join(symbols, "")
}
