// SPDX-License-Identifier: Unlicense OR MIT

// Command shimdemo opens a window and draws lines of text through the
// window, gpu and font packages.
//
// Escape closes the window and the scroll wheel zooms the text.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"gioui.org/shim/font"
	"gioui.org/shim/font/atlas"
	"gioui.org/shim/font/gofont"
	"gioui.org/shim/gpu"
	"gioui.org/shim/window"
	"gioui.org/shim/window/native"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "TOML configuration file",
	}
	titleFlag = &cli.StringFlag{
		Name:  "title",
		Usage: "window title",
	}
	widthFlag = &cli.IntFlag{
		Name:  "width",
		Usage: "window width in screen coordinates",
	}
	heightFlag = &cli.IntFlag{
		Name:  "height",
		Usage: "window height in screen coordinates",
	}
	fontFlag = &cli.StringFlag{
		Name:  "font",
		Usage: "TrueType or OpenType font file, or go:<name> for an embedded Go font (default: go:regular)",
	}
	fontIndexFlag = &cli.IntFlag{
		Name:  "font.index",
		Usage: "face index within a font collection",
	}
	sizeFlag = &cli.IntFlag{
		Name:  "size",
		Usage: "font size in pixels",
	}
	atlasFlag = &cli.IntFlag{
		Name:  "atlas",
		Usage: "glyph atlas texture size in pixels",
	}
	textFlag = &cli.StringFlag{
		Name:  "text",
		Usage: "draw a single line of text instead of the configured lines",
	}
	debugGLFlag = &cli.BoolFlag{
		Name:  "debug.gl",
		Usage: "log shader compilation and texture upload results",
	}
	dumpConfigFlag = &cli.BoolFlag{
		Name:  "dumpconfig",
		Usage: "print the effective configuration as TOML and exit",
	}
)

func main() {
	app := &cli.App{
		Name:  "shimdemo",
		Usage: "draw text in an OpenGL window",
		Flags: []cli.Flag{
			configFlag,
			titleFlag,
			widthFlag,
			heightFlag,
			fontFlag,
			fontIndexFlag,
			sizeFlag,
			atlasFlag,
			textFlag,
			debugGLFlag,
			dumpConfigFlag,
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	cfg := defaultConfig()
	if path := ctx.String(configFlag.Name); path != "" {
		if err := loadConfig(path, &cfg); err != nil {
			return err
		}
	}
	applyFlags(ctx, &cfg)
	if err := cfg.validate(); err != nil {
		return err
	}
	if ctx.Bool(dumpConfigFlag.Name) {
		return dumpConfig(os.Stdout, cfg)
	}
	return loop(cfg)
}

// demo is the window user data.
type demo struct {
	zoom float32
}

func loop(cfg config) error {
	var opts []window.Option
	if cfg.DebugGL {
		opts = append(opts, window.WithDeviceOptions(gpu.WithDebugLog(nil)))
	}
	w, err := window.New(native.New(), window.Config{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, opts...)
	if err != nil {
		return err
	}
	defer w.Destroy()

	lib, err := font.Init()
	if err != nil {
		return err
	}
	defer lib.Done()
	face, err := openFace(lib, cfg)
	if err != nil {
		return err
	}

	dev := w.Device()
	a, err := atlas.New(dev, face, cfg.Size, cfg.Atlas)
	if err != nil {
		return err
	}
	defer a.Release()
	if err := a.CacheASCII(); err != nil && err != atlas.ErrFull {
		return err
	}
	tr, err := newTextRenderer(dev, a)
	if err != nil {
		return err
	}
	defer tr.release()

	w.SetUserData(&demo{zoom: 1})
	w.SetKeyCallback(func(w *window.Window, key window.Key, scancode int, action window.Action, mods window.ModifierKey) {
		if key == window.KeyEscape && action == window.Press {
			w.SetShouldClose(true)
		}
	})
	w.SetScrollCallback(func(w *window.Window, xoff, yoff float64) {
		d := w.UserData().(*demo)
		d.zoom *= 1 + float32(yoff)*0.1
		if d.zoom < 0.25 {
			d.zoom = 0.25
		}
		if d.zoom > 4 {
			d.zoom = 4
		}
	})

	bg := cfg.Background
	for !w.ShouldClose() {
		fbw, fbh := w.FramebufferSize()
		sx, _ := w.ContentScale()
		zoom := w.UserData().(*demo).zoom
		dev.Clear(bg[0], bg[1], bg[2], bg[3])
		tr.begin(fbw, fbh)
		for _, l := range cfg.Lines {
			if err := tr.draw(l.Text, l.X*sx, l.Y*sx, zoom*sx, l.Color); err != nil {
				return err
			}
		}
		w.SwapBuffers()
		w.PollEvents()
	}
	return nil
}

// openFace loads the face selected by cfg.Font.
func openFace(lib *font.Library, cfg config) (*font.Face, error) {
	switch {
	case cfg.Font == "":
		return gofont.Regular(lib)
	case strings.HasPrefix(cfg.Font, "go:"):
		name := strings.TrimPrefix(cfg.Font, "go:")
		f, err := gofont.Load(lib, name)
		if err != nil {
			return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(gofont.Names(), ", "))
		}
		return f, nil
	default:
		return lib.NewFace(cfg.Font, cfg.FontIndex)
	}
}
