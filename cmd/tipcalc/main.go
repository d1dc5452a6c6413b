package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tipcalc/internal/bill"
	"tipcalc/internal/logging"
	"tipcalc/internal/tip"
	"tipcalc/internal/trace"
	"tipcalc/internal/ui"
)

// config holds the parsed CLI configuration.
type config struct {
	bill    string
	split   int
	tip     int
	logFile string
	debug   bool
	summary bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("tipcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.bill, "bill", "", "initial bill amount")
	fs.IntVar(&cfg.split, "split", tip.MinSplit, "initial number of people (1-100)")
	fs.IntVar(&cfg.tip, "tip", 0, "initial tip percentage (0-100)")
	fs.StringVar(&cfg.logFile, "log-file", logging.DefaultPath(), "log file path (env "+logging.FileEnv+")")
	fs.BoolVar(&cfg.debug, "debug", false, "log every transition (overrides "+logging.LevelEnv+")")
	fs.BoolVar(&cfg.summary, "summary", true, "print the final breakdown on exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: tipcalc [flags]\n\n")
		fmt.Fprintf(stderr, "tipcalc splits a bill and tip between people.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if cfg.split < tip.MinSplit || cfg.split > tip.MaxSplit {
		return config{}, fmt.Errorf("-split %d out of range [%d, %d]", cfg.split, tip.MinSplit, tip.MaxSplit)
	}
	if cfg.tip < 0 || cfg.tip > 100 {
		return config{}, fmt.Errorf("-tip %d out of range [0, 100]", cfg.tip)
	}
	if cfg.bill != "" {
		if _, err := tip.ParseBill(cfg.bill); err != nil {
			return config{}, fmt.Errorf("-bill: %w", err)
		}
	}
	return cfg, nil
}

// initialState builds the starting state from flags.
func initialState(cfg config) bill.State {
	return bill.State{
		BillText:       cfg.bill,
		SplitCount:     cfg.split,
		SliderPosition: float64(cfg.tip) / 100,
	}
}

func run(ctx context.Context, cfg config, stdout io.Writer) error {
	level := logging.LevelFromEnv()
	if cfg.debug {
		level = slog.LevelDebug
	}
	logFile, err := logging.SetupFile(cfg.logFile, level)
	if err != nil {
		return err
	}
	defer logFile.Close()

	exporter, err := trace.NewOTLPExporter(ctx)
	if err != nil {
		// Tracing is optional; keep going without it.
		slog.Warn("tracing disabled", "err", err)
	}
	exporter.StartSession(ctx)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := exporter.Shutdown(shutdownCtx); err != nil {
			slog.Warn("trace shutdown", "err", err)
		}
	}()

	machine := bill.NewMachineFrom(initialState(cfg))
	app := ui.NewAppModel(machine)
	machine.Observer = bill.NewMultiObserver(
		ui.TransitionLogger(slog.Default()),
		exporter.Observer(),
	)

	slog.Info("starting", "split", cfg.split, "tip_pct", cfg.tip, "prefilled", cfg.bill != "")
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}

	final := machine.State()
	slog.Info("exiting", "split", final.SplitCount, "tip_pct", final.TipPercentage(), "per_person", final.TotalPerPerson)
	if cfg.summary {
		writeSummary(stdout, final)
	}
	return nil
}

// writeSummary prints the final breakdown, or a note when no usable bill
// was entered.
func writeSummary(w io.Writer, s bill.State) {
	amount, ok := s.Amount()
	if !ok {
		fmt.Fprintln(w, "No bill entered.")
		return
	}
	fmt.Fprintf(w, "%-18s %s\n", "Bill:", ui.FormatMoney(amount))
	fmt.Fprintf(w, "%-18s %d\n", "Split:", s.SplitCount)
	fmt.Fprintf(w, "%-18s %s\n", fmt.Sprintf("Tip (%d%%):", s.TipPercentage()), ui.FormatMoney(s.TipAmount))
	fmt.Fprintf(w, "%-18s %s\n", "Total per person:", ui.FormatMoney(s.TotalPerPerson))
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tipcalc: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "tipcalc: %v\n", err)
		os.Exit(1)
	}
}
