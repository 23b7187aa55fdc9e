package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/leonelquinteros/gotext"
	"gopkg.in/natefinch/lumberjack.v2"

	"hamstercage/pkg/engine/terminal"
	"hamstercage/pkg/game/config"
	"hamstercage/pkg/game/devtools"
	"hamstercage/pkg/game/events"
	"hamstercage/pkg/game/gameplay"
	"hamstercage/pkg/game/renderer"
	"hamstercage/pkg/game/renderer/tui"
	"hamstercage/pkg/game/state"
	"hamstercage/pkg/game/trace"
)

func main() {
	flag.Parse()

	closeLog := initLogging(*logFileFlag, levelFlag.value)
	defer closeLog()

	if err := run(); err != nil {
		slog.Error("Run failed", "error", err)
		closeLog()
		os.Exit(1)
	}
}

// initLogging installs the default slog handler. Returns a func closing the
// log file, if any.
func initLogging(path string, level slog.Level) func() {
	var out io.Writer = os.Stderr
	closeFn := func() {}
	if path != "" {
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
		}
		out = lj
		closeFn = func() { _ = lj.Close() }
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
	return closeFn
}

func initGettext(dir string) {
	if _, err := os.Stat(dir); err != nil {
		slog.Debug("No translations found, using message keys", "dir", dir)
		return
	}
	gotext.Configure(dir, "en_GB", "default")
}

// runStats counts events and forwards them to an optional recorder
type runStats struct {
	next   events.Recorder
	counts map[events.Kind]int
	total  int
}

func newRunStats(next events.Recorder) *runStats {
	return &runStats{next: next, counts: make(map[events.Kind]int)}
}

func (s *runStats) Record(e events.Event) error {
	s.counts[e.Kind]++
	s.total++
	if s.next != nil {
		return s.next.Record(e)
	}
	return nil
}

func run() (err error) {
	if *ticksFlag < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", *ticksFlag)
	}
	initGettext(*localesFlag)

	cfg := config.Default()
	if *configFlag != "" {
		cfg, err = config.Load(*configFlag)
		if err != nil {
			return err
		}
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	slog.Info("Starting cage", "width", cfg.Cage.Width, "depth", cfg.Cage.Depth, "objects", len(cfg.Scenario), "seed", seed)

	renderer.SetRenderer(tui.New(os.Stdout))
	renderer.Init()

	g, sys, err := gameplay.BuildGame(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	var tw *trace.Writer
	if *traceFlag != "" {
		tw, err = trace.Create(*traceFlag)
		if err != nil {
			return fmt.Errorf("trace: %w", err)
		}
		defer func() {
			if cerr := tw.Close(); cerr != nil {
				err = errors.Join(err, fmt.Errorf("trace: %w", cerr))
			}
		}()
	}
	stats := newRunStats(nil)
	if tw != nil {
		stats.next = tw
	}
	g.Recorder = stats

	started := time.Now()
	if err := gameplay.StartPlay(g, sys); err != nil {
		return err
	}
	for i := 1; i <= *ticksFlag; i++ {
		if err := gameplay.Tick(g, *dtFlag); err != nil {
			return fmt.Errorf("tick %d: %w", i, err)
		}
		if *renderFlag > 0 && i%*renderFlag == 0 {
			drawFrame(g)
		}
	}
	if *renderFlag == 0 {
		drawFrame(g)
	}

	if *dumpFlag != "" {
		path, err := devtools.DumpMapToFile(g, *dumpFlag)
		if err != nil {
			return fmt.Errorf("dump: %w", err)
		}
		slog.Info("Map dumped", "path", path)
	}

	alive := len(g.Hamsters())
	spawned := g.SpawnRegistry().Count()
	if err := gameplay.StopPlay(g, sys); err != nil {
		return err
	}

	fmt.Printf("Simulated %s ticks (%.1fs) in %v\n", humanize.Comma(int64(*ticksFlag)), g.Now(), time.Since(started).Round(time.Millisecond))
	fmt.Printf("Hamsters: %s spawned, %s alive at stop\n", humanize.Comma(int64(spawned)), humanize.Comma(int64(alive)))
	fmt.Printf("Events: %s total, %s interactions, %s tube trips, %s food stored\n",
		humanize.Comma(int64(stats.total)),
		humanize.Comma(int64(stats.counts[events.KindInteractStart])),
		humanize.Comma(int64(stats.counts[events.KindTubeEnter])),
		humanize.Comma(int64(stats.counts[events.KindFoodStored])))
	if tw != nil {
		fmt.Printf("Trace: %s events written to %s\n", humanize.Comma(int64(tw.Count())), *traceFlag)
	}
	return nil
}

func drawFrame(g *state.Game) {
	if terminal.IsInteractive() {
		renderer.Clear()
	}
	renderer.RenderFrame(g)
}
