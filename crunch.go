package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/vulfilip/rassforge/forge"
	"github.com/vulfilip/rassforge/util"
)

type crunchOptions struct {
	MinSize    string
	MaxSize    string
	Characters string
}

func crunchCmd(settings *Settings) *cobra.Command {
	var opts crunchOptions

	c := &cobra.Command{
		Use:   "crunch",
		Short: "Enumerate every string over a character set within a length range",
		Long:  "Enumerates every string over the character set with a length between --min and --max. Output grows as sum(n^L), so keep ranges small.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := showBanner(*settings); err != nil {
				return err
			}

			iter, err := buildCrunch(opts)
			if err != nil {
				return err
			}

			pterm.Info.Println("Crunch mode selected")
			pterm.Info.Printf("Character set: %s. Minimum size: %d. Maximum size: %d\n", opts.Characters, iter.Min, iter.Max)

			return forgeWordlist(*settings, iter)
		},
	}

	c.Flags().StringVar(&opts.MinSize, "min", "", "Minimum candidate length")
	c.Flags().StringVar(&opts.MaxSize, "max", "", "Maximum candidate length")
	c.Flags().StringVarP(&opts.Characters, "characters", "c", "", "Character set, order and duplicates are kept")

	_ = c.MarkFlagRequired("min")
	_ = c.MarkFlagRequired("max")
	_ = c.MarkFlagRequired("characters")
	return c
}

func buildCrunch(opts crunchOptions) (*forge.CrunchIter, error) {
	min, max, err := util.ParseSize(opts.MinSize, opts.MaxSize)
	if err != nil {
		return nil, err
	}

	return forge.NewCrunchIter(opts.Characters, min, max)
}
