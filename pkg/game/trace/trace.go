// Package trace records simulation events as zstd-compressed JSON lines.
package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"

	"hamstercage/pkg/game/events"
)

// Writer appends one JSON line per event
type Writer struct {
	mu    sync.Mutex
	f     io.Closer
	enc   *zstd.Encoder
	w     *bufio.Writer
	count int
}

// Create opens path for writing, creating parent directories
func Create(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w, err := newWriter(f, f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return w, nil
}

// NewWriter writes compressed events to out. Closing the Writer does not
// close out.
func NewWriter(out io.Writer) (*Writer, error) {
	return newWriter(out, nil)
}

func newWriter(out io.Writer, closer io.Closer) (*Writer, error) {
	enc, err := zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, err
	}
	return &Writer{
		f:   closer,
		enc: enc,
		w:   bufio.NewWriterSize(enc, 64*1024),
	}, nil
}

// Record writes an event. It satisfies events.Recorder.
func (w *Writer) Record(e events.Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.w == nil {
		return fmt.Errorf("trace: write after close")
	}
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	w.count++
	return nil
}

// Count returns the number of events written
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close flushes the stream and closes the file
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.w == nil {
		return nil
	}
	err1 := w.w.Flush()
	err2 := w.enc.Close()
	var err3 error
	if w.f != nil {
		err3 = w.f.Close()
	}
	w.w, w.enc, w.f = nil, nil, nil

	for _, err := range []error{err1, err2, err3} {
		if err != nil {
			return err
		}
	}
	return nil
}

// ReadFile decodes every event in a trace file
func ReadFile(path string) ([]events.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read decodes every event in a compressed trace stream
func Read(r io.Reader) ([]events.Event, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var out []events.Event
	line := 0
	for sc.Scan() {
		line++
		var e events.Event
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("trace line %d: %w", line, err)
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ events.Recorder = (*Writer)(nil)
