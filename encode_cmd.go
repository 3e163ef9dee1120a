package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/vulfilip/rassforge/encode"
	"github.com/vulfilip/rassforge/sink"
)

type encodeOptions struct {
	Encoding string
	File     string
}

func encodeCmd(settings *Settings) *cobra.Command {
	var opts encodeOptions

	c := &cobra.Command{
		Use:   "encode",
		Short: "Hash or encode every line of an existing wordlist",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := showBanner(*settings); err != nil {
				return err
			}

			// Fail on a bad tag before touching any file
			if _, err := encode.Lookup(opts.Encoding); err != nil {
				return err
			}

			pterm.Info.Println("Encode mode selected")
			pterm.Info.Printf("Encoding type: %s, File input: %s, File output: %s\n", opts.Encoding, opts.File, settings.Output)
			pterm.Info.Println("Forging started...")

			started := time.Now()
			out := sink.New(settings.Output)
			if _, err := encode.File(opts.File, opts.Encoding, out); err != nil {
				return fmt.Errorf("encode %s: %w", opts.File, err)
			}

			return finish(out, started)
		},
	}

	c.Flags().StringVarP(&opts.Encoding, "encoding", "e", "", fmt.Sprintf("Encoding applied to each line [%s]", strings.Join(encode.Tags(), ", ")))
	c.Flags().StringVarP(&opts.File, "file", "f", "", "File whose lines should be encoded")

	_ = c.RegisterFlagCompletionFunc("encoding", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return encode.Tags(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = c.MarkFlagRequired("encoding")
	_ = c.MarkFlagRequired("file")
	return c
}
