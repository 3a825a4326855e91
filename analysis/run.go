package analysis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/setgame/internal/randutil"
)

// DefaultBuffer is the result channel capacity used when Config.Buffer is 0.
const DefaultBuffer = 100

// ErrInvalidConfig is returned by Run for unusable settings.
var ErrInvalidConfig = errors.New("analysis: invalid config")

// Config controls a harness run.
type Config struct {
	Trials  int
	Workers int // defaults to runtime.NumCPU()
	Buffer  int // result channel capacity, defaults to DefaultBuffer
	// Seed derives every worker's RNG. Zero picks a random seed, which is
	// reported back in Report.Seed.
	Seed int64
	// ProgressInterval is how often progress is logged at info level. Zero
	// disables progress logging.
	ProgressInterval time.Duration

	Logger *log.Logger
	Clock  quartz.Clock
}

func (c Config) withDefaults() Config {
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Buffer == 0 {
		c.Buffer = DefaultBuffer
	}
	if c.Seed == 0 {
		c.Seed = randutil.NewSeed()
	}
	if c.Logger == nil {
		c.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if c.Clock == nil {
		c.Clock = quartz.NewReal()
	}
	return c
}

// Validate checks the settings that have no usable default.
func (c Config) Validate() error {
	switch {
	case c.Trials <= 0:
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidConfig, c.Trials)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	case c.Buffer < 0:
		return fmt.Errorf("%w: buffer must not be negative, got %d", ErrInvalidConfig, c.Buffer)
	case c.ProgressInterval < 0:
		return fmt.Errorf("%w: progress interval must not be negative, got %s", ErrInvalidConfig, c.ProgressInterval)
	}
	return nil
}

// Report is the outcome of a run.
type Report struct {
	Variant   string        `json:"variant"`
	Trials    int           `json:"trials"`
	Workers   int           `json:"workers"`
	Seed      int64         `json:"seed"`
	Histogram Histogram     `json:"histogram"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

// Run executes cfg.Trials trials of v across cfg.Workers goroutines. Each
// worker owns its RNG and sends one result per trial on a channel holding at
// most cfg.Buffer results; a full channel blocks the worker until the
// aggregator catches up. The channel is closed once every worker returns.
func Run[C comparable](v Variant[C], cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if v.Universe == nil || v.ThirdCard == nil || v.Index == nil {
		return nil, fmt.Errorf("%w: variant %q is incomplete", ErrInvalidConfig, v.Name)
	}
	cfg = cfg.withDefaults()
	logger := cfg.Logger.With("variant", v.Name)

	start := cfg.Clock.Now()
	logger.Info("Starting analysis", "trials", cfg.Trials, "workers", cfg.Workers, "seed", cfg.Seed)

	perWorker := cfg.Trials / cfg.Workers
	remainder := cfg.Trials % cfg.Workers
	seeds := randutil.Seeds(randutil.New(cfg.Seed), cfg.Workers)

	g, ctx := errgroup.WithContext(context.Background())
	results := make(chan int, cfg.Buffer)

	for w := 0; w < cfg.Workers; w++ {
		trials := perWorker
		if w < remainder {
			trials++
		}
		seed := seeds[w]

		g.Go(func() error {
			rng := randutil.New(seed)
			for i := 0; i < trials; i++ {
				select {
				case results <- v.Trial(rng):
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	go func() {
		defer close(results)
		_ = g.Wait()
	}()

	var tick <-chan time.Time
	if cfg.ProgressInterval > 0 {
		ticker := cfg.Clock.NewTicker(cfg.ProgressInterval, "analysis", "progress")
		defer ticker.Stop()
		tick = ticker.C
	}

	hist := NewHistogram()
	for done := false; !done; {
		select {
		case n, ok := <-results:
			if !ok {
				done = true
				break
			}
			hist.Add(n)
		case <-tick:
			logger.Info("Progress", "done", hist.Total(), "trials", cfg.Trials,
				"elapsed", cfg.Clock.Since(start).Round(time.Millisecond))
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		Variant:   v.Name,
		Trials:    cfg.Trials,
		Workers:   cfg.Workers,
		Seed:      cfg.Seed,
		Histogram: hist,
		Elapsed:   cfg.Clock.Since(start),
	}
	logger.Info("Analysis complete", "trials", hist.Total(), "mean", fmt.Sprintf("%.3f", hist.Mean()),
		"min", hist.Min(), "max", hist.Max(), "elapsed", report.Elapsed.Round(time.Millisecond))
	return report, nil
}

// RunAnalysis runs trials classic trials on workers goroutines and returns
// the histogram of set-free sizes.
func RunAnalysis(trials, workers int) (Histogram, error) {
	report, err := Run(Classic(), Config{Trials: trials, Workers: workers})
	if err != nil {
		return nil, err
	}
	return report.Histogram, nil
}
