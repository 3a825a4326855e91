package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/setgame/analysis"
	"github.com/lox/setgame/internal/config"
	"github.com/lox/setgame/internal/fileutil"
)

type CLI struct {
	Config  string `short:"c" help:"HCL settings file" default:"set-odds.hcl" type:"path"`
	Variant string `help:"Card universe: classic or projective"`
	Trials  *int   `short:"n" help:"Number of shuffled decks to try"`
	Workers *int   `short:"w" help:"Number of worker goroutines"`
	Buffer  *int   `help:"Result channel capacity"`
	Seed    *int64 `help:"Random seed for reproducible results (0 picks one)"`
	Verbose bool   `short:"v" help:"Log debug output"`
	NoColor bool   `help:"Disable colour output"`
	Output  string `short:"o" help:"Also write the report as JSON to this file" type:"path"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Description("Estimate how many cards can be dealt before a set is forced."))

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := settings(cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	logger, err := newLogger(cfg, cli.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	report, err := run(cfg, logger)
	if err != nil {
		logger.Error("Analysis failed", "error", err)
		ctx.Exit(1)
	}

	displayReport(os.Stdout, report, !cli.NoColor)

	if cli.Output != "" {
		if err := fileutil.WriteJSON(cli.Output, report); err != nil {
			logger.Error("Failed to write report", "file", cli.Output, "error", err)
			ctx.Exit(1)
		}
		logger.Info("Report written", "file", cli.Output)
	}
}

// settings loads the config file and applies flag overrides on top.
func settings(cli CLI) (*config.Config, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}

	a := cfg.Analysis
	if cli.Variant != "" {
		a.Variant = cli.Variant
	}
	if cli.Trials != nil {
		a.Trials = *cli.Trials
	}
	if cli.Workers != nil {
		a.Workers = *cli.Workers
	}
	if cli.Buffer != nil {
		a.Buffer = *cli.Buffer
	}
	if cli.Seed != nil {
		a.Seed = *cli.Seed
	}
	if cli.Verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, verbose bool) (*log.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: verbose,
		TimeFormat:      "15:04:05",
		Prefix:          "set-odds",
	}), nil
}

func run(cfg *config.Config, logger *log.Logger) (*analysis.Report, error) {
	interval, err := cfg.Interval()
	if err != nil {
		return nil, err
	}
	a := cfg.Analysis
	opts := analysis.Config{
		Trials:           a.Trials,
		Workers:          a.Workers,
		Buffer:           a.Buffer,
		Seed:             a.Seed,
		ProgressInterval: interval,
		Logger:           logger,
	}

	switch a.Variant {
	case "projective":
		return analysis.Run(analysis.Projective(), opts)
	default:
		return analysis.Run(analysis.Classic(), opts)
	}
}

func displayReport(out io.Writer, report *analysis.Report, colour bool) {
	h := report.Histogram

	barOpts := []progress.Option{progress.WithWidth(30), progress.WithoutPercentage()}
	if colour {
		barOpts = append(barOpts, progress.WithDefaultGradient())
	} else {
		barOpts = append(barOpts, progress.WithColorProfile(termenv.Ascii), progress.WithFillCharacters('#', ' '))
	}
	bar := progress.New(barOpts...)

	// Bars are scaled to the most common result.
	peak := 0
	for _, n := range h {
		peak = max(peak, n)
	}

	fmt.Fprintf(out, "%s\n\n", headerStyle.Render(fmt.Sprintf("%s: cards before a set is forced", report.Variant)))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t\n",
		headerStyle.Render("cards"),
		headerStyle.Render("count"),
		headerStyle.Render("share"))
	for _, v := range h.Keys() {
		fill := 0.0
		if peak > 0 {
			fill = float64(h[v]) / float64(peak)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			valueStyle.Render(fmt.Sprintf("%d", v)),
			h[v],
			percentStyle.Render(fmt.Sprintf("%.3f%%", h.Percent(v))),
			bar.ViewAs(fill))
	}
	w.Flush()

	low, high := h.ConfidenceInterval95()
	summary := []string{
		fmt.Sprintf("mean %.3f ± %.3f (95%% CI %.3f to %.3f)", h.Mean(), high-h.Mean(), low, high),
		fmt.Sprintf("stddev %.3f, min %d, max %d", h.StdDev(), h.Min(), h.Max()),
		fmt.Sprintf("%d trials on %d workers in %v (seed %d)",
			h.Total(), report.Workers, report.Elapsed.Truncate(time.Millisecond), report.Seed),
	}
	fmt.Fprintf(out, "\n%s\n", summaryStyle.Render(strings.Join(summary, "\n")))
}
