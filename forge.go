package main

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/vulfilip/rassforge/forge"
	"github.com/vulfilip/rassforge/sink"
	"github.com/vulfilip/rassforge/util"
)

var (
	// PTerm progress bar, shared with the interrupt handler
	progressBar   *pterm.ProgressbarPrinter
	progressMutex sync.Mutex
)

func showBanner(settings Settings) error {
	if settings.NoBanner {
		return nil
	}

	if err := pterm.DefaultBigText.WithLetters(putils.LettersFromString("Rassforge")).Render(); err != nil {
		return fmt.Errorf("render banner: %w", err)
	}
	pterm.DefaultBasicText.Printf("Password Forge v%s | Made by Vulfilip\n\n", strings.TrimSpace(rassforgeVersion))
	return nil
}

// forgeWordlist writes every batch of provider, decorated with the configured
// head and tail, to the output file and prints the run summary.
func forgeWordlist(settings Settings, provider forge.IterProvider) error {
	started := time.Now()
	pterm.Info.Println("Forging started...")

	out := sink.New(settings.Output)
	if !settings.NoProgress {
		startProgress(provider, out)
	}

	affix := forge.Affix{Head: settings.Head, Tail: settings.Tail}
	for _, batch := range provider.Batches() {
		if _, err := out.Append(forge.Decorate(batch.Seq, affix)); err != nil {
			return fmt.Errorf("write %s batch: %w", batch.Name, err)
		}
	}
	stopProgress()

	return finish(out, started)
}

func finish(out *sink.Sink, started time.Time) error {
	size, err := out.Size()
	if err != nil {
		return err
	}

	pterm.Success.Println("Forging finished! Wordlist generated.")
	pterm.Info.Printf("File size: %s\n", util.FormatFileSize(size))
	pterm.Info.Printf("Forged in: %s.\n", util.FormatElapsed(time.Since(started)))
	return nil
}

func startProgress(provider forge.IterProvider, out *sink.Sink) {
	pwCount, err := provider.GetPasswordCount()
	if err != nil || pwCount > math.MaxInt {
		pterm.Warning.Println("Candidate count is too large to track, progress bar disabled")
		return
	} else if pwCount == 0 {
		return
	}

	bar, err := pterm.DefaultProgressbar.WithTotal(int(pwCount)).WithTitle("Forging").WithShowCount(true).WithShowElapsedTime(true).WithShowPercentage(true).Start()
	if err != nil {
		return
	}

	progressMutex.Lock()
	progressBar = bar
	progressMutex.Unlock()

	out.Progress = func(n int) {
		bar.Add(n)
	}
}

func stopProgress() {
	progressMutex.Lock()
	defer progressMutex.Unlock()

	if progressBar != nil {
		_, err := progressBar.Stop()
		_ = err
		progressBar = nil
	}
}
