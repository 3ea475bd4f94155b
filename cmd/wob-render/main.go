// Command wob-render draws one progress bar into a shared memory image and
// writes the result to an image file.
package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/image/bmp"

	"github.com/srediag/wob-shm/adapter"
	"github.com/srediag/wob-shm/pkg/canvas"
	"github.com/srediag/wob-shm/pkg/config"
)

type CLI struct {
	Config   string `help:"TOML config file. Built-in defaults when empty." type:"path"`
	Value    uint64 `help:"Current value of the bar." default:"50"`
	Max      uint64 `help:"Maximum value; overrides the config's max when set."`
	Output   string `help:"Output file; the extension picks the format." default:"wob.png" short:"o"`
	Debug    bool   `help:"Dump a text rendering of every fill to stderr."`
	LogLevel int    `help:"Internal log level, 0 (trace) to 5 (silent)." default:"3"`
	Metrics  bool   `help:"Log the render counters when done."`

	cfg *config.Config
}

func (c *CLI) Validate(kctx *kong.Context) error {
	var err error
	if c.Config != "" {
		c.cfg, err = config.Load(c.Config)
	} else {
		c.cfg = config.DefaultConfig()
		err = config.VerifyConfig(c.cfg)
	}
	if err != nil {
		return err
	}
	if c.Max != 0 {
		c.cfg.Maximum = c.Max
	}
	switch strings.ToLower(filepath.Ext(c.Output)) {
	case ".png", ".bmp":
	default:
		return fmt.Errorf("unsupported output format %q, want .png or .bmp", c.Output)
	}
	return nil
}

func (c *CLI) Run() error {
	canvas.SetLogLevel(c.LogLevel)

	dims, err := c.cfg.Dimensions()
	if err != nil {
		return err
	}
	colors, err := c.cfg.Colors()
	if err != nil {
		return err
	}
	opts := append(c.cfg.Options(), adapter.OTel{}.Options()...)
	if c.Debug {
		opts = append(opts, canvas.WithDebug(os.Stderr))
	}

	bar, err := canvas.NewBar(dims, colors, opts...)
	if err != nil {
		return fmt.Errorf("could not allocate bar image: %w", err)
	}
	defer func() {
		if err := bar.Close(); err != nil {
			slog.Error("could not release bar image", "error", err)
		}
	}()

	if err := bar.Render(c.Value, c.cfg.Maximum); err != nil {
		return err
	}
	slog.Info("rendered", "fd", bar.Fd(), "width", dims.Width, "height", dims.Height,
		"value", c.Value, "max", c.cfg.Maximum, "orientation", dims.Orientation)

	if err := writeImage(c.Output, bar.Image()); err != nil {
		return err
	}
	if c.Metrics {
		logMetrics()
	}
	return nil
}

func writeImage(path string, img *canvas.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create output file %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close output file %q: %w", path, closeErr)
		}
	}()

	rgba := img.RGBA()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		err = bmp.Encode(f, rgba)
	default:
		err = png.Encode(f, rgba)
	}
	if err != nil {
		return fmt.Errorf("could not encode %q: %w", path, err)
	}
	slog.Info("written", "file", path)
	return nil
}

func logMetrics() {
	reg := prometheus.NewRegistry()
	reg.MustRegister(canvas.Collectors()...)
	families, err := reg.Gather()
	if err != nil {
		slog.Error("could not gather metrics", "error", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{"name", mf.GetName(), "value", m.GetCounter().GetValue()}
			for _, l := range m.GetLabel() {
				attrs = append(attrs, l.GetName(), l.GetValue())
			}
			slog.Info("metric", attrs...)
		}
	}
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("wob-render"),
		kong.Description("Render a wob progress bar into shared memory and save it as an image."),
		kong.UsageOnError(),
	)
	if err := kctx.Run(); err != nil {
		slog.Error("render failed", "error", err)
		os.Exit(1)
	}
}
