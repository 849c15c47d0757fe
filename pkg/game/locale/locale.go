// Package locale holds the narration catalogue. Every line the game prints
// is looked up here by key, so the text can be replaced with another .po
// file without touching game logic.
package locale

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/leonelquinteros/gotext"
)

//go:embed en.po
var defaultPo []byte

// poGet looks keys up at runtime. We use a function variable to avoid go
// vet's printf wrapper check, since keys are not format strings.
var poGet = (*gotext.Po).Get

// Catalogue is a parsed translation file
type Catalogue struct {
	po *gotext.Po
}

// Parse builds a catalogue from .po file contents
func Parse(data []byte) *Catalogue {
	po := gotext.NewPo()
	po.Parse(data)
	return &Catalogue{po: po}
}

// Default returns the built-in English catalogue
func Default() *Catalogue {
	return Parse(defaultPo)
}

// Load reads a .po file from disk
func Load(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locale %s: %w", path, err)
	}
	return Parse(data), nil
}

// Get returns the translation of key formatted with args. Unknown keys are
// returned as-is so a missing entry is visible rather than silent.
func (c *Catalogue) Get(key string, args ...any) string {
	if c == nil || c.po == nil {
		return key
	}
	return poGet(c.po, key, args...)
}

// current is the catalogue used by Get. It is set once at startup.
var current = Default()

// Use makes c the active catalogue. A nil catalogue restores the default.
func Use(c *Catalogue) {
	if c == nil {
		c = Default()
	}
	current = c
}

// Get looks key up in the active catalogue
func Get(key string, args ...any) string {
	return current.Get(key, args...)
}
