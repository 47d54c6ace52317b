// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"
)

// config is the demo configuration. It is read from an optional TOML
// file and then overridden by the flags set on the command line.
type config struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	// Font is the path of a TrueType or OpenType file, or go:<name>
	// for one of the embedded Go fonts. The empty path selects Go
	// Regular.
	Font      string `toml:"font"`
	FontIndex int    `toml:"font_index"`
	Size      int    `toml:"size"`
	Atlas     int    `toml:"atlas"`
	Lines     []line `toml:"lines"`
	// Background is the clear color, RGBA in [0, 1].
	Background [4]float32 `toml:"background"`
	DebugGL    bool       `toml:"debug_gl"`
}

// line is a string drawn with its baseline at (X, Y) pixels from the
// top-left corner of the window.
type line struct {
	Text  string     `toml:"text"`
	X     float32    `toml:"x"`
	Y     float32    `toml:"y"`
	Color [4]float32 `toml:"color"`
}

func defaultConfig() config {
	return config{
		Title:  "shim demo",
		Width:  800,
		Height: 600,
		Size:   36,
		Atlas:  512,
		Lines: []line{
			{Text: "Hello, World!", X: 100, Y: 100, Color: [4]float32{1, 1, 1, 1}},
			{Text: "Red Text", X: 100, Y: 200, Color: [4]float32{1, 0, 0, 1}},
			{Text: "Green Text", X: 100, Y: 280, Color: [4]float32{0, 1, 0, 1}},
			{Text: "Blue Text", X: 100, Y: 360, Color: [4]float32{0, 0, 1, 1}},
			{Text: "The quick brown fox jumps over the lazy dog", X: 100, Y: 450, Color: [4]float32{.8, .8, .8, 1}},
		},
		Background: [4]float32{.1, .1, .12, 1},
	}
}

// loadConfig decodes the TOML file at path over cfg. Keys missing from
// the file keep their value in cfg, except that lines in the file
// replace all of cfg.Lines. Lines without a color are white.
func loadConfig(path string, cfg *config) error {
	lines := cfg.Lines
	cfg.Lines = nil
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return fmt.Errorf("config %s: unknown key %q", path, undec[0].String())
	}
	if !md.IsDefined("lines") {
		cfg.Lines = lines
	}
	for i := range cfg.Lines {
		if cfg.Lines[i].Color == ([4]float32{}) {
			cfg.Lines[i].Color = [4]float32{1, 1, 1, 1}
		}
	}
	return nil
}

// applyFlags overrides cfg with the flags explicitly set in ctx.
func applyFlags(ctx *cli.Context, cfg *config) {
	if ctx.IsSet(titleFlag.Name) {
		cfg.Title = ctx.String(titleFlag.Name)
	}
	if ctx.IsSet(widthFlag.Name) {
		cfg.Width = ctx.Int(widthFlag.Name)
	}
	if ctx.IsSet(heightFlag.Name) {
		cfg.Height = ctx.Int(heightFlag.Name)
	}
	if ctx.IsSet(fontFlag.Name) {
		cfg.Font = ctx.String(fontFlag.Name)
	}
	if ctx.IsSet(fontIndexFlag.Name) {
		cfg.FontIndex = ctx.Int(fontIndexFlag.Name)
	}
	if ctx.IsSet(sizeFlag.Name) {
		cfg.Size = ctx.Int(sizeFlag.Name)
	}
	if ctx.IsSet(atlasFlag.Name) {
		cfg.Atlas = ctx.Int(atlasFlag.Name)
	}
	if ctx.IsSet(textFlag.Name) {
		cfg.Lines = []line{{Text: ctx.String(textFlag.Name), X: 50, Y: 100, Color: [4]float32{1, 1, 1, 1}}}
	}
	if ctx.IsSet(debugGLFlag.Name) {
		cfg.DebugGL = ctx.Bool(debugGLFlag.Name)
	}
}

func (c *config) validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	case c.Size <= 0:
		return fmt.Errorf("invalid font size %d", c.Size)
	case c.Atlas < c.Size:
		return fmt.Errorf("atlas size %d is smaller than the font size %d", c.Atlas, c.Size)
	case len(c.Lines) == 0:
		return errors.New("nothing to draw")
	}
	return nil
}

// dumpConfig writes cfg as TOML in the form loadConfig reads.
func dumpConfig(w io.Writer, cfg config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
