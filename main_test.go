package main

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hamstercage/pkg/game/events"
)

func TestLogLevelFlag(t *testing.T) {
	var f logLevelFlag
	require.NoError(t, f.Set("debug"))
	assert.Equal(t, slog.LevelDebug, f.value)
	require.NoError(t, f.Set("WARN"))
	assert.Equal(t, slog.LevelWarn, f.value)
	assert.Equal(t, "WARN", f.String())
	assert.Error(t, f.Set("verbose"))
	assert.Equal(t, slog.LevelWarn, f.value)
}

type failingRecorder struct{ err error }

func (r failingRecorder) Record(events.Event) error { return r.err }

func TestRunStats(t *testing.T) {
	s := newRunStats(nil)
	require.NoError(t, s.Record(events.Event{Kind: events.KindSpawn}))
	require.NoError(t, s.Record(events.Event{Kind: events.KindSpawn}))
	require.NoError(t, s.Record(events.Event{Kind: events.KindTubeEnter}))
	assert.Equal(t, 3, s.total)
	assert.Equal(t, 2, s.counts[events.KindSpawn])
	assert.Equal(t, 1, s.counts[events.KindTubeEnter])

	boom := errors.New("boom")
	s = newRunStats(failingRecorder{err: boom})
	assert.ErrorIs(t, s.Record(events.Event{Kind: events.KindSpawn}), boom)
	assert.Equal(t, 1, s.total)
}
