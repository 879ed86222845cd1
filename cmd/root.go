package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/hjops/alarmtop/config"
	"github.com/hjops/alarmtop/server"
	"github.com/hjops/alarmtop/source"
	"github.com/hjops/alarmtop/ui"
	"github.com/hjops/alarmtop/view"
)

// Version is set at build time via ldflags.
var Version = "0.3.0"

// options holds CLI configuration after flag parsing.
type options struct {
	ConfigPath string
	Source     string
	Interval   time.Duration
	PageSize   int
	WatchMode  bool
	WatchCount int
	JSONMode   bool
	ServeMode  bool
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `alarmtop v%s — Alarm history console for SCADA installations

Usage:
  alarmtop [OPTIONS]

Modes:
  (default)         Interactive TUI (bubbletea, fullscreen)
  -watch            CLI output mode — prints the history table with auto-refresh
  -json             Single table-description JSON to stdout, then exit
  -serve            HTTP API mode — serves history/stats JSON for a web frontend
  -version          Print version and exit

Options:
  -source URL|PATH  Alarm source: upstream API base URL (http/https) or a
                    JSONL history export file (default: config source.url,
                    else built-in demo records)
  -interval N       Refresh interval in seconds (default: config, 30)
  -page-size N      Rows per history page (default: config, 20)
  -count N          Number of iterations for -watch mode (0 = infinite)
  -config PATH      Config file (default: ~/.config/alarmtop/config.json)

Examples:
  alarmtop                                   TUI against the configured upstream
  alarmtop -source http://scada.local:13001  TUI against an explicit upstream
  alarmtop -source /var/log/alarms.jsonl     TUI over an exported history file
  alarmtop -watch -count 1                   Print the table once and exit
  alarmtop -json | jq '.columns[].title'
  alarmtop -serve                            Serve the table JSON on the configured port
`, Version)
}

// Run parses flags and starts the application.
func Run() error {
	var (
		opts        options
		intervalSec int
		showVersion bool
	)

	flag.StringVar(&opts.ConfigPath, "config", "", "Config file path")
	flag.StringVar(&opts.Source, "source", "", "Upstream API base URL or JSONL file path")
	flag.IntVar(&intervalSec, "interval", 0, "Refresh interval in seconds")
	flag.IntVar(&opts.PageSize, "page-size", 0, "Rows per history page")
	flag.BoolVar(&opts.WatchMode, "watch", false, "CLI output mode (no TUI)")
	flag.IntVar(&opts.WatchCount, "count", 0, "Iterations for -watch (0=infinite)")
	flag.BoolVar(&opts.JSONMode, "json", false, "Output the table description as JSON and exit")
	flag.BoolVar(&opts.ServeMode, "serve", false, "Serve the history API over HTTP")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		fmt.Printf("alarmtop v%s\n", Version)
		return nil
	}

	cfg := config.Load(opts.ConfigPath)
	if intervalSec > 0 {
		cfg.IntervalSec = intervalSec
	}
	if opts.PageSize > 0 {
		cfg.PageSize = opts.PageSize
	}
	opts.Interval = time.Duration(cfg.IntervalSec) * time.Second

	log := zerolog.New(os.Stderr).With().Timestamp().Str("service", "alarmtop").Logger()
	if !opts.ServeMode {
		// The TUI owns the terminal; keep background noise out of it.
		log = log.Level(zerolog.WarnLevel)
	}

	src := newSource(opts.Source, cfg, log)

	switch {
	case opts.JSONMode:
		return runJSON(src)
	case opts.WatchMode:
		return runWatch(src, opts.Interval, opts.WatchCount, cfg.PageSize)
	case opts.ServeMode:
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return server.New(cfg.Server, src, cfg.PageSize, log).Run(ctx)
	default:
		return ui.Run(ui.NewModel(src, opts.Interval, cfg.PageSize, cfg.Theme))
	}
}

// newSource picks the alarm source: -source flag first, then the configured
// upstream, then the built-in demo records.
func newSource(flagSource string, cfg config.Config, log zerolog.Logger) source.Source {
	timeout := time.Duration(cfg.Source.TimeoutSec) * time.Second

	s := flagSource
	if s == "" {
		s = cfg.Source.URL
	}
	switch {
	case s == "":
		return source.DemoSource{}
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
		return source.NewHTTP(s, timeout, log)
	default:
		return source.NewFile(s, log)
	}
}

// runJSON prints the full history as one table description.
func runJSON(src source.Source) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	alarms, err := src.Fetch(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(view.HistoryTable(alarms))
}
