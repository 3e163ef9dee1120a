package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings shared by every mode. Environment values are defaults, command-line
// flags override them.
type Settings struct {
	Output     string `env:"RASSFORGE_OUTPUT" envDefault:"rassforge_passlist.txt"`
	Head       string `env:"RASSFORGE_HEAD"`
	Tail       string `env:"RASSFORGE_TAIL"`
	NoBanner   bool   `env:"RASSFORGE_NO_BANNER"`
	NoProgress bool   `env:"RASSFORGE_NO_PROGRESS"`
}

func loadSettings() (Settings, error) {
	var settings Settings
	if err := env.Parse(&settings); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return settings, nil
}
