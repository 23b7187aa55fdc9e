package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"
)

type logLevelFlag struct {
	value slog.Level
}

func (l *logLevelFlag) String() string {
	return l.value.String()
}

func (l *logLevelFlag) Set(value string) error {
	m := map[string]slog.Level{"DEBUG": slog.LevelDebug, "INFO": slog.LevelInfo, "WARN": slog.LevelWarn, "ERROR": slog.LevelError}
	v, ok := m[strings.ToUpper(value)]
	if !ok {
		return fmt.Errorf("unknown log level")
	}
	l.value = v
	return nil
}

// defined flags
var (
	levelFlag   logLevelFlag
	configFlag  = flag.String("config", "", "YAML cage config (built-in defaults when empty)")
	ticksFlag   = flag.Int("ticks", 600, "number of simulation ticks to run")
	dtFlag      = flag.Float64("dt", 0.1, "simulated seconds per tick")
	seedFlag    = flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
	logFileFlag = flag.String("logfile", "", "write logs to a rotating file instead of stderr")
	traceFlag   = flag.String("trace", "", "write a zstd JSONL event trace to this path")
	dumpFlag    = flag.String("dump", "", "write a debug map dump to this path at the end of the run")
	renderFlag  = flag.Int("render", 0, "render the cage every N ticks (0 renders the final frame only)")
	localesFlag = flag.String("locales", "locales", "directory holding message translations")
)

func init() {
	levelFlag.value = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "log level name")
}
