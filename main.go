package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "embed"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

//go:embed VERSION
var rassforgeVersion string

func main() {
	// PTerm ANSI formatting (mainly from the progress bar) can persist after ctrl+c, hook os.Interrupt and flush
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

		<-signalChan
		stopProgress()
		fmt.Print("\033[0m")
		os.Exit(130)
	}()

	settings, err := loadSettings()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	if err := newRootCmd(&settings).Execute(); err != nil {
		stopProgress()
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func newRootCmd(settings *Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rassforge",
		Short:         "Rassforge - password list forge",
		Long:          "Builds candidate password lists for authorized security testing from keywords, years and symbols (standard), or by exhaustive enumeration over a character set (crunch).",
		Version:       strings.TrimSpace(rassforgeVersion),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&settings.Output, "output", "o", settings.Output, "File to append results to")
	flags.StringVar(&settings.Head, "head", settings.Head, "Value placed at the beginning of every generated word")
	flags.StringVar(&settings.Tail, "tail", settings.Tail, "Value placed at the end of every generated word")
	flags.BoolVar(&settings.NoBanner, "no-banner", settings.NoBanner, "Don't print the banner")
	flags.BoolVar(&settings.NoProgress, "no-progress", settings.NoProgress, "Don't show a progress bar while forging")

	cmd.AddCommand(standardCmd(settings), crunchCmd(settings), encodeCmd(settings))
	return cmd
}
