// cmd/inspectx/app.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"inspectx/internal/core/domain"
	"inspectx/internal/core/pass"
	"inspectx/internal/core/ports"
	"inspectx/internal/platform/config"
	"inspectx/internal/platform/logx"
	"inspectx/internal/platform/registry"
	"inspectx/internal/platform/ui"
	"inspectx/internal/platform/workerpool"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

const (
	envNoColor  = "NO_COLOR"
	maxLineSize = 1 << 20
)

// run is main without the process: it returns the exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// 1. Load config: defaults -> YAML -> ENV -> flags
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: configuration load failed: %v\n", err)
		fmt.Fprintln(stderr, "Try: inspectx -h for help")
		return exitConfig
	}

	if cfg.PrintHelp {
		config.PrintHelp(stdout)
		return exitOK
	}
	if cfg.PrintVersion {
		config.PrintVersion(stdout, version, commit, date)
		return exitOK
	}

	// 2. Shared logger, never on the trace stream
	logger := logx.NewWithWriter(stderr, logx.ParseLevel(cfg.LogLevel))
	theme := ui.NewTheme(useColor(cfg, stdout))
	reg := registry.Global()

	if cfg.List {
		printCatalog(stdout, theme, reg)
		return exitOK
	}

	// 3. Ignore list against the registered passes
	ignore := cfg.IgnoreSet()
	for _, entry := range reg.UnknownPasses(ignore.Entries(), config.MatchPass) {
		logger.Warn("ignore entry matches no pass", "entry", entry)
	}

	// 4. Values: args, or stdin lines
	values := cfg.Values
	if len(values) == 0 {
		if isTerminal(stdin) {
			fmt.Fprintln(stderr, "Error: no values to inspect")
			fmt.Fprintln(stderr, "Usage: inspectx [options] <value>...")
			return exitConfig
		}
		values, err = readValues(stdin)
		if err != nil {
			logger.Err(err, "phase", "stdin")
			return exitFailed
		}
	}

	logger.Debug("inspectx starting",
		"version", version,
		"values", len(values),
		"workers", cfg.Workers,
		"ignore", len(cfg.Ignore),
		"config", cfg.ConfigPath,
	)

	// 5. One task per value
	tasks := make([]workerpool.Task, 0, len(values))
	failed := 0
	for _, v := range values {
		task, err := newInspectTask(reg, cfg.As, v, theme, ignore)
		if err != nil {
			logger.Err(err, "value", v)
			failed++
			continue
		}
		tasks = append(tasks, task)
	}

	// 6. Run, flushing each trace in input order
	scheduler := workerpool.Scheduler(workerpool.NewFIFOScheduler())
	if cfg.Workers > 1 {
		scheduler = workerpool.NewWeightedScheduler()
	}
	pool := workerpool.NewWorkerPool(workerpool.WorkerPoolConfig{
		Workers:   cfg.Workers,
		Scheduler: scheduler,
		Logger:    logger,
	})

	start := time.Now()
	results := pool.Run(ctx, stdout, tasks)
	for _, r := range results {
		if r.Error != nil && !r.Canceled() {
			logger.Err(r.Error, "task", r.Task.Name())
		}
	}

	ok, taskFailed, canceled := workerpool.Summary(results)
	failed += taskFailed

	logger.Debug("inspectx finished",
		"elapsed_ms", time.Since(start).Milliseconds(),
		"ok", ok,
		"failed", failed,
		"canceled", canceled,
	)

	if canceled > 0 {
		logger.Warn("inspection interrupted", "pending", canceled)
	}
	if failed > 0 || canceled > 0 {
		return exitFailed
	}
	return exitOK
}

// inspectTask adapts one value to a workerpool.Task.
type inspectTask struct {
	value  string
	kind   domain.Kind
	insp   ports.Inspector
	theme  ui.Theme
	ignore pass.Ignorer
}

func newInspectTask(reg *registry.InspectorRegistry, forced domain.Kind, value string, theme ui.Theme, ignore pass.Ignorer) (*inspectTask, error) {
	kind := forced
	if kind == "" {
		kind = domain.Classify(value)
	}

	insp, err := reg.Get(kind)
	if err != nil {
		return nil, err
	}

	return &inspectTask{value: value, kind: kind, insp: insp, theme: theme, ignore: ignore}, nil
}

func (t *inspectTask) Name() string { return t.kind.String() + "(" + t.value + ")" }
func (t *inspectTask) Weight() int  { return len(t.value) }

func (t *inspectTask) Execute(_ context.Context, w io.Writer) error {
	return t.insp.Inspect(ports.Env{Out: w, Theme: t.theme, Ignore: t.ignore}, t.value)
}

// readValues reads one value per non-blank line.
func readValues(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	values := make([]string, 0)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		values = append(values, line)
	}
	if err := sc.Err(); err != nil {
		return values, fmt.Errorf("read stdin: %w", err)
	}
	return values, nil
}

func printCatalog(w io.Writer, theme ui.Theme, reg *registry.InspectorRegistry) {
	for _, kind := range reg.Kinds() {
		insp, err := reg.Get(kind)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%s  %s\n", theme.Kind(kind.String()), insp.Description())
		for _, name := range insp.Passes() {
			fmt.Fprintln(w, pass.FormatLine(0, theme.Pass(name)))
		}
	}
}

// useColor is false when color is switched off or stdout is not a terminal.
func useColor(cfg config.Config, stdout io.Writer) bool {
	if cfg.NoColor || os.Getenv(envNoColor) != "" {
		return false
	}
	return isTerminal(stdout)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
