package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/foliolab/bookmosaic/internal/cli"
	"github.com/foliolab/bookmosaic/internal/config"
	"github.com/foliolab/bookmosaic/internal/renderer"
	"github.com/foliolab/bookmosaic/internal/text"
	"github.com/foliolab/bookmosaic/internal/ui"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

var CLI struct {
	Input      string `arg:"" name:"input" help:"Text file to paint" optional:""`
	Metric     string `short:"m" help:"Metric to visualize" default:"${default_metric}"`
	Color      string `short:"c" help:"Colour scheme" default:"${default_scheme}"`
	Output     string `short:"o" help:"Output PNG path (default: <input>-<metric>.png)"`
	Scale      int    `help:"Pixels per word cell" default:"1"`
	Caption    bool   `help:"Add a caption strip naming the text and metric"`
	Background string `help:"Canvas colour for unused cells" default:"${default_background}"`
	List       bool   `help:"List available metrics and colour schemes"`
	NoProgress bool   `help:"Disable the progress display"`
	Version    bool   `help:"Show version information"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("bookmosaic"),
		kong.Description("Paint any book into a PNG mosaic, one pixel per word."),
		kong.Vars{
			"version":            version,
			"default_metric":     config.DefaultMetric,
			"default_scheme":     config.DefaultScheme,
			"default_background": config.DefaultBackground,
		},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if CLI.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	// Handle registry listing
	if CLI.List {
		printAvailable()
		os.Exit(0)
	}

	// Validate required arguments when not listing
	if CLI.Input == "" {
		cli.PrintError("<input> is required")
		os.Exit(1)
	}

	// Validate input file exists
	if _, err := os.Stat(CLI.Input); os.IsNotExist(err) {
		cli.PrintError(fmt.Sprintf("input file does not exist: %s", CLI.Input))
		os.Exit(1)
	}

	// Validate metric and colour scheme against the registries
	metric, ok := text.MetricByName(CLI.Metric)
	if !ok {
		cli.PrintError(fmt.Sprintf("unknown metric: %s (see --list)", CLI.Metric))
		os.Exit(1)
	}

	scheme, ok := renderer.SchemeByName(CLI.Color)
	if !ok {
		cli.PrintError(fmt.Sprintf("unknown colour scheme: %s (see --list)", CLI.Color))
		os.Exit(1)
	}

	// Validate scale
	if CLI.Scale < config.MinScale || CLI.Scale > config.MaxScale {
		cli.PrintError(fmt.Sprintf("invalid scale: %d (must be %d to %d)",
			CLI.Scale, config.MinScale, config.MaxScale))
		os.Exit(1)
	}

	// Validate background colour
	r, g, b, err := config.ParseHexColor(CLI.Background)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	output := CLI.Output
	if output == "" {
		output = defaultOutputPath(CLI.Input, metric.Name)
	}

	opts := renderer.Options{
		Scheme:     scheme,
		Scale:      CLI.Scale,
		Background: color.RGBA{R: r, G: g, B: b, A: 255},
	}
	if CLI.Caption {
		opts.Caption = captionText(CLI.Input, metric.Name, scheme.Name)
	}

	if CLI.NoProgress {
		paintPlain(metric, opts, output)
		return
	}
	paintWithProgress(metric, opts, output)
}

// paintPlain runs the pipeline with plain styled log lines.
func paintPlain(metric text.Metric, opts renderer.Options, output string) {
	cli.PrintBanner()
	start := time.Now()

	words, err := loadWords(CLI.Input)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
	cli.PrintInfo("Loaded", fmt.Sprintf("%s words from %s", cli.FormatCount(len(words)), CLI.Input))

	values := metric.Eval(words)

	img, err := renderer.Render(values, opts)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	if err := renderer.Save(img, output); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	side := renderer.GridSide(len(values))
	cli.PrintSuccess(fmt.Sprintf("Saved: %s (%dx%d pixels, %d values)",
		output, side, side, len(values)))

	var size int64
	if info, err := os.Stat(output); err == nil {
		size = info.Size()
	}

	cli.PrintRenderSummary(
		cli.FormatCount(len(words)),
		cli.FormatCount(len(text.CountWords(words))),
		fmt.Sprintf("%dx%d px", side, side),
		output,
		cli.FormatBytes(size),
		cli.FormatDuration(time.Since(start)),
	)
}

// paintWithProgress runs the pipeline in a goroutine and drives the
// Bubbletea progress UI with its messages.
func paintWithProgress(metric text.Metric, opts renderer.Options, output string) {
	model := ui.NewModel(CLI.Input)
	p := tea.NewProgram(model)

	var pipelineErr error

	go func() {
		start := time.Now()

		words, err := loadWords(CLI.Input)
		if err != nil {
			pipelineErr = err
			p.Quit()
			return
		}

		values := metric.Eval(words)
		distinct := len(text.CountWords(words))
		side := renderer.GridSide(len(values))

		p.Send(ui.TokenizeDone{
			Words:    len(words),
			Distinct: distinct,
			Side:     side,
		})

		opts.Progress = func(frac float64) {
			p.Send(ui.RenderProgress{Frac: frac})
		}

		img, err := renderer.Render(values, opts)
		if err != nil {
			pipelineErr = err
			p.Quit()
			return
		}

		if err := renderer.Save(img, output); err != nil {
			pipelineErr = err
			p.Quit()
			return
		}

		var size int64
		if info, err := os.Stat(output); err == nil {
			size = info.Size()
		}

		// Send completion message
		p.Send(ui.RenderComplete{
			Output:   output,
			Words:    len(words),
			Distinct: distinct,
			Side:     side,
			Values:   len(values),
			FileSize: size,
			Elapsed:  time.Since(start),
		})
	}()

	// Run the Bubbletea UI
	if _, err := p.Run(); err != nil {
		cli.PrintError(fmt.Sprintf("running UI: %v", err))
		os.Exit(1)
	}

	// Check for pipeline errors
	if pipelineErr != nil {
		cli.PrintError(pipelineErr.Error())
		os.Exit(1)
	}
}

// loadWords reads and tokenizes the input text.
func loadWords(path string) ([]string, error) {
	raw, err := text.Load(path)
	if err != nil {
		return nil, err
	}
	return text.Tokenize(raw)
}

// defaultOutputPath derives <stem>-<metric>.png in the current
// directory from the input filename.
func defaultOutputPath(input, metric string) string {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return stem + "-" + metric + config.OutputExtension
}

// captionText labels the mosaic with the text's name and how it was
// painted.
func captionText(input, metric, scheme string) string {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return fmt.Sprintf("%s · %s · %s", stem, metric, scheme)
}

// printAvailable lists both registries with their descriptions.
func printAvailable() {
	cli.PrintSection("Available metrics:")
	for _, m := range text.Metrics {
		cli.PrintItem(m.Name, m.Description)
	}

	cli.PrintSection("Available colour schemes:")
	for _, s := range renderer.Schemes {
		cli.PrintItem(s.Name, s.Description)
	}
}
